package reader

import (
	"bytes"
	"io"
	"os"

	"github.com/matzehuels/sbgnconv/pkg/annotations"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/geometry"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
	"github.com/matzehuels/sbgnconv/pkg/styles"
)

// Skipped describes an element the reader could not classify.
type Skipped struct {
	ID    string
	Class string
}

// Stats reports what a read left out.
type Stats struct {
	Skipped []Skipped
}

// Result is a successfully read map.
type Result struct {
	Map     *sbgn.Map
	Version sbgnml.Version
	Stats
}

// ReadFile reads the document at path.
func ReadFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, opts)
}

// Read sniffs the schema generation of r, parses it and builds the map.
func Read(r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
	}
	v, err := sbgnml.Sniff(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "detect SBGN-ML version")
	}
	doc, err := sbgnml.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse SBGN-ML %s", v)
	}
	res, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}
	res.Version = v
	return res, nil
}

// Build turns a parsed document into a map. Only the first map of the
// document is read.
func Build(doc *sbgnml.Sbgn, opts Options) (*Result, error) {
	sm := doc.FirstMap()
	if sm == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no map")
	}
	lang, err := languageOf(sm)
	if err != nil {
		return nil, err
	}

	m := sbgn.New(lang)
	m.ID = sm.ID
	b := newBuilder(m, opts)
	if err := b.index(sm); err != nil {
		return nil, err
	}
	if err := b.buildAll(sm); err != nil {
		return nil, err
	}
	if err := b.fillMapping(); err != nil {
		return nil, err
	}

	setBounds(m.Layout, sm.Bbox, opts.FromTopLeft)
	if sm.Extension != nil && opts.WithAnnotations {
		for _, a := range annotations.FromExtension(sm.Extension.Annotation) {
			m.Model.AddAnnotation(a)
		}
	}
	if sm.Notes != nil && opts.WithNotes {
		m.Notes = sm.Notes.Inner
	}
	if sm.Extension != nil && sm.Extension.RenderInformation != nil && opts.WithRenderInformation {
		isArc := func(id string) bool {
			e, ok := m.Layout.Get(id)
			return ok && e.Kind.IsArc()
		}
		sheet, err := styles.Extract(sm.Extension.RenderInformation, isArc)
		if err != nil {
			b.log.Warn("ignoring invalid render information", "err", err)
		}
		styles.Apply(sheet, m.Layout)
	}

	return &Result{Map: m, Stats: Stats{Skipped: b.skipped}}, nil
}

func languageOf(sm *sbgnml.Map) (sbgn.Language, error) {
	lang := sbgn.Language(sm.Language)
	if uriLang, ok := sbgnml.LanguageOfVersionURI(sm.Version); ok {
		lang = uriLang
	}
	switch lang {
	case sbgn.LanguageProcessDescription, sbgn.LanguageActivityFlow:
		return lang, nil
	case sbgn.LanguageEntityRelationship:
		return "", errors.New(errors.ErrCodeUnsupported, "entity relationship maps are not yet supported")
	}
	return "", errors.New(errors.ErrCodeInvalidLanguage, "unknown language %q", sm.Language)
}

// setBounds sizes the layout from the map bbox, or fits it around its
// elements.
func setBounds(l *sbgn.Layout, box *sbgnml.Bbox, fromTopLeft bool) {
	if box != nil {
		b := geometry.FromTopLeft(box.X, box.Y, box.W, box.H)
		l.Position, l.Width, l.Height = b.Position, b.Width, b.Height
		return
	}
	fit, ok := l.Fit()
	if !ok {
		return
	}
	if fromTopLeft {
		l.Width = fit.Right()
		l.Height = fit.Bottom()
		l.Position = geometry.Pt(l.Width/2, l.Height/2)
		return
	}
	l.Position, l.Width, l.Height = fit.Position, fit.Width, fit.Height
}

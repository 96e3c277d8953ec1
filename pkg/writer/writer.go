package writer

import (
	"io"

	"github.com/matzehuels/sbgnconv/pkg/annotations"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
	"github.com/matzehuels/sbgnconv/pkg/styles"
)

// Skipped describes a layout element the writer had no emitter for.
type Skipped struct {
	ID     string
	Kind   sbgn.Kind
	Reason string
}

// Stats counts what a write produced.
type Stats struct {
	Glyphs  int
	Arcs    int
	Skipped []Skipped
}

// Write serializes m to w.
func Write(w io.Writer, m *sbgn.Map, opts Options) (Stats, error) {
	doc, stats, err := Build(m, opts)
	if err != nil {
		return stats, err
	}
	if err := sbgnml.Render(w, doc, opts.version()); err != nil {
		return stats, errors.Wrap(errors.ErrCodeInternal, err, "render SBGN-ML %s", opts.version())
	}
	return stats, nil
}

// WriteFile serializes m to path.
func WriteFile(path string, m *sbgn.Map, opts Options) (Stats, error) {
	doc, stats, err := Build(m, opts)
	if err != nil {
		return stats, err
	}
	if err := sbgnml.WriteFile(path, doc, opts.version()); err != nil {
		return stats, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return stats, nil
}

// Build turns m into a schema tree without rendering it.
func Build(m *sbgn.Map, opts Options) (*sbgnml.Sbgn, Stats, error) {
	if m == nil || m.Model == nil || m.Layout == nil || m.Mapping == nil {
		return nil, Stats{}, errors.New(errors.ErrCodeInvalidInput, "incomplete map")
	}
	switch m.Language {
	case sbgn.LanguageProcessDescription, sbgn.LanguageActivityFlow:
	case sbgn.LanguageEntityRelationship:
		return nil, Stats{}, errors.New(errors.ErrCodeUnsupported, "entity relationship maps are not yet supported")
	default:
		return nil, Stats{}, errors.New(errors.ErrCodeInvalidLanguage, "unknown language %q", m.Language)
	}
	v := opts.version()
	if v != sbgnml.Version02 && v != sbgnml.Version03 {
		return nil, Stats{}, errors.New(errors.ErrCodeInvalidInput, "unknown SBGN-ML version %d", int(v))
	}

	sm := &sbgnml.Map{Language: string(m.Language)}
	if v == sbgnml.Version03 {
		sm.ID = m.ID
		sm.Version = sbgnml.VersionURIOf(m.Language)
	}
	if l := m.Layout; l.Width > 0 || l.Height > 0 {
		tl := l.Bbox().TopLeft()
		sm.Bbox = &sbgnml.Bbox{X: tl.X, Y: tl.Y, W: l.Width, H: l.Height}
	}

	e := newEmitter(m, opts, sm)
	for _, le := range m.Layout.Roots() {
		if err := e.emit(le, nil, 0); err != nil {
			return nil, e.stats, err
		}
	}

	ext := &sbgnml.Extension{}
	if opts.WithRenderInformation {
		buckets := styles.Collect(e.styled)
		if len(buckets) > 0 || m.Layout.Fill != nil {
			name, version := opts.program()
			syn := styles.Synthesizer{ProgramName: name, ProgramVersion: version, NewID: opts.NewID}
			ext.RenderInformation = syn.Synthesize(buckets, m.Layout.Fill)
		}
	}
	if opts.WithAnnotations {
		ext.Annotation = annotations.ToExtension(m.Model.Annotations, m.ID)
	}
	if ext.RenderInformation != nil || ext.Annotation != nil {
		sm.Extension = ext
	}
	if opts.WithNotes && m.Notes != "" {
		sm.Notes = &sbgnml.Notes{Inner: m.Notes}
	}

	return &sbgnml.Sbgn{Maps: []*sbgnml.Map{sm}}, e.stats, nil
}

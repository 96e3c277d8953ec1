package styles

import (
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// Tuple is the comparable style signature of one element. Colors are #rrggbbaa
// strings and empty when unset.
type Tuple struct {
	Fill           string
	Stroke         string
	StrokeWidth    float64
	HasStrokeWidth bool
	FontFamily     string
	FontSize       float64
	FontColor      string
}

// IsZero reports whether the tuple sets nothing.
func (t Tuple) IsZero() bool { return t == Tuple{} }

// Bucket is the set of element ids that share one tuple.
type Bucket struct {
	Tuple Tuple
	IDs   []string
}

func hexa(c *sbgn.Color) string {
	if c == nil {
		return ""
	}
	return c.Hexa()
}

func firstColor(cs ...*sbgn.Color) *sbgn.Color {
	for _, c := range cs {
		if c != nil {
			return c
		}
	}
	return nil
}

func firstWidth(ws ...*float64) *float64 {
	for _, w := range ws {
		if w != nil {
			return w
		}
	}
	return nil
}

// TupleOf returns the signature of e. Arcs take their stroke from the
// arrowhead, then the path, then the element; their fill from the arrowhead,
// then the element.
func TupleOf(e *sbgn.LayoutElement) Tuple {
	var t Tuple
	var width *float64
	if e.Kind.IsArc() {
		t.Fill = hexa(firstColor(e.ArrowheadFill, e.Fill))
		t.Stroke = hexa(firstColor(e.ArrowheadStroke, e.PathStroke, e.Stroke))
		width = firstWidth(e.ArrowheadStrokeWidth, e.PathStrokeWidth, e.StrokeWidth)
	} else {
		t.Fill = hexa(e.Fill)
		t.Stroke = hexa(e.Stroke)
		width = e.StrokeWidth
	}
	if width != nil {
		t.StrokeWidth, t.HasStrokeWidth = *width, true
	}
	if e.Label != nil {
		t.FontFamily = e.Label.FontFamily
		t.FontSize = e.Label.FontSize
		t.FontColor = e.Label.FontColor.Hexa()
	}
	return t
}

// Collect partitions elems into buckets of equal tuples. Buckets and their
// ids keep first-seen order; elements that set nothing are left out.
func Collect(elems []*sbgn.LayoutElement) []Bucket {
	index := make(map[Tuple]int)
	var buckets []Bucket
	for _, e := range elems {
		t := TupleOf(e)
		if t.IsZero() {
			continue
		}
		i, ok := index[t]
		if !ok {
			i = len(buckets)
			index[t] = i
			buckets = append(buckets, Bucket{Tuple: t})
		}
		buckets[i].IDs = append(buckets[i].IDs, e.ID)
	}
	return buckets
}

// Synthesizer builds render information from buckets.
type Synthesizer struct {
	ProgramName    string
	ProgramVersion string
	// NewID generates element ids. Defaults to random UUIDs.
	NewID func() string
}

func (s Synthesizer) id(prefix string) string {
	if s.NewID != nil {
		return s.NewID()
	}
	return prefix + uuid.New().String()
}

// Synthesize emits one color definition per distinct color and one style per
// bucket. The background is written when non-nil.
func (s Synthesizer) Synthesize(buckets []Bucket, background *sbgn.Color) *sbgnml.RenderInformation {
	ri := &sbgnml.RenderInformation{
		ID:             s.id("render_"),
		ProgramName:    s.ProgramName,
		ProgramVersion: s.ProgramVersion,
	}
	if background != nil {
		ri.BackgroundColor = background.Hexa()
	}

	colorIDs := make(map[string]string)
	defs := &sbgnml.ColorDefinitions{}
	colorRef := func(v string) string {
		if v == "" {
			return ""
		}
		if id, ok := colorIDs[v]; ok {
			return id
		}
		id := s.id("color_")
		colorIDs[v] = id
		defs.Items = append(defs.Items, &sbgnml.ColorDefinition{ID: id, Value: v})
		return id
	}

	styles := &sbgnml.Styles{}
	for _, b := range buckets {
		t := b.Tuple
		g := &sbgnml.G{
			Fill:       colorRef(t.Fill),
			Stroke:     colorRef(t.Stroke),
			FontFamily: t.FontFamily,
			FontColor:  colorRef(t.FontColor),
		}
		if t.HasStrokeWidth {
			w := t.StrokeWidth
			g.StrokeWidth = &w
		}
		if t.FontSize != 0 {
			fs := t.FontSize
			g.FontSize = &fs
		}
		styles.Items = append(styles.Items, &sbgnml.Style{
			ID:     s.id("style_"),
			IDList: strings.Join(b.IDs, " "),
			G:      g,
		})
	}
	if len(defs.Items) > 0 {
		ri.ColorDefinitions = defs
	}
	if len(styles.Items) > 0 {
		ri.Styles = styles
	}
	return ri
}

// Package dump summarizes a map as a flat list of elements and encodes the
// summary as JSON, YAML or MessagePack.
//
// The summary is what `sbgnconv inspect` prints and what the service returns
// from /inspect. It is a read-only view: it cannot be turned back into a map.
package dump

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/reader"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
)

// Encodings.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// Formats lists the encodings in sorted order.
func Formats() []string {
	return []string{FormatJSON, FormatMsgpack, FormatYAML}
}

// ContentType returns the media type of an encoding.
func ContentType(format string) string {
	switch format {
	case FormatYAML:
		return "application/yaml"
	case FormatMsgpack:
		return "application/msgpack"
	}
	return "application/json"
}

// Box is a top-left anchored rectangle.
type Box struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
	W float64 `json:"w" yaml:"w" msgpack:"w"`
	H float64 `json:"h" yaml:"h" msgpack:"h"`
}

// Annotation is a qualifier and resource pair.
type Annotation struct {
	Qualifier string `json:"qualifier" yaml:"qualifier" msgpack:"qualifier"`
	Resource  string `json:"resource" yaml:"resource" msgpack:"resource"`
}

// Element is one model element with the ids it refers to.
type Element struct {
	ID          string       `json:"id" yaml:"id" msgpack:"id"`
	Kind        string       `json:"kind" yaml:"kind" msgpack:"kind"`
	Label       string       `json:"label,omitempty" yaml:"label,omitempty" msgpack:"label,omitempty"`
	Parent      string       `json:"parent,omitempty" yaml:"parent,omitempty" msgpack:"parent,omitempty"`
	Compartment string       `json:"compartment,omitempty" yaml:"compartment,omitempty" msgpack:"compartment,omitempty"`
	Element     string       `json:"element,omitempty" yaml:"element,omitempty" msgpack:"element,omitempty"`
	Source      string       `json:"source,omitempty" yaml:"source,omitempty" msgpack:"source,omitempty"`
	Target      string       `json:"target,omitempty" yaml:"target,omitempty" msgpack:"target,omitempty"`
	Value       string       `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
	Variable    string       `json:"variable,omitempty" yaml:"variable,omitempty" msgpack:"variable,omitempty"`
	Prefix      string       `json:"prefix,omitempty" yaml:"prefix,omitempty" msgpack:"prefix,omitempty"`
	Reversible  bool         `json:"reversible,omitempty" yaml:"reversible,omitempty" msgpack:"reversible,omitempty"`
	Box         *Box         `json:"bbox,omitempty" yaml:"bbox,omitempty" msgpack:"bbox,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
}

// Skipped is an element the reader left out.
type Skipped struct {
	ID    string `json:"id" yaml:"id" msgpack:"id"`
	Class string `json:"class" yaml:"class" msgpack:"class"`
}

// Summary describes a whole map.
type Summary struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty" msgpack:"id,omitempty"`
	Language    string         `json:"language" yaml:"language" msgpack:"language"`
	Version     string         `json:"version,omitempty" yaml:"version,omitempty" msgpack:"version,omitempty"`
	Bounds      Box            `json:"bounds" yaml:"bounds" msgpack:"bounds"`
	Counts      map[string]int `json:"counts" yaml:"counts" msgpack:"counts"`
	Elements    []Element      `json:"elements" yaml:"elements" msgpack:"elements"`
	Annotations []Annotation   `json:"annotations,omitempty" yaml:"annotations,omitempty" msgpack:"annotations,omitempty"`
	Skipped     []Skipped      `json:"skipped,omitempty" yaml:"skipped,omitempty" msgpack:"skipped,omitempty"`
}

// Summarize flattens m. Elements appear in registration order; Parent is
// taken from the mapping and Box from the mapped layout element.
func Summarize(m *sbgn.Map) Summary {
	tl := m.Layout.Bbox().TopLeft()
	s := Summary{
		ID:          m.ID,
		Language:    string(m.Language),
		Bounds:      Box{X: tl.X, Y: tl.Y, W: m.Layout.Width, H: m.Layout.Height},
		Counts:      make(map[string]int),
		Annotations: annotationsOf(m.Model.Annotations),
	}
	for k, n := range m.Model.CountByKind() {
		s.Counts[k.String()] = n
	}

	layoutOf := make(map[string]*sbgn.LayoutElement)
	parentOf := make(map[string]string)
	for _, k := range m.Mapping.Keys() {
		parentOf[k.ID] = k.Parent
		if id, ok := m.Mapping.Layout(k); ok {
			if le, ok := m.Layout.Get(id); ok {
				layoutOf[k.ID] = le
			}
		}
	}

	for _, id := range m.Model.IDs() {
		me, _ := m.Model.Get(id)
		e := Element{
			ID:          me.ID,
			Kind:        me.Kind.String(),
			Label:       me.Label,
			Parent:      parentOf[id],
			Compartment: idOf(me.Compartment),
			Element:     idOf(me.Element),
			Source:      idOf(me.Source),
			Target:      idOf(me.Target),
			Value:       me.Value,
			Variable:    me.Variable,
			Prefix:      me.Prefix,
			Reversible:  me.Reversible,
			Annotations: annotationsOf(me.Annotations),
		}
		if le := layoutOf[id]; le != nil && !le.Kind.IsArc() {
			b := le.Bbox().TopLeft()
			e.Box = &Box{X: b.X, Y: b.Y, W: le.Width, H: le.Height}
		}
		s.Elements = append(s.Elements, e)
	}
	return s
}

// FromResult summarizes a read map together with its source generation and
// the elements the reader skipped.
func FromResult(res *reader.Result) Summary {
	s := Summarize(res.Map)
	s.Version = res.Version.String()
	for _, sk := range res.Skipped {
		s.Skipped = append(s.Skipped, Skipped{ID: sk.ID, Class: sk.Class})
	}
	return s
}

func idOf(e *sbgn.ModelElement) string {
	if e == nil {
		return ""
	}
	return e.ID
}

func annotationsOf(anns []sbgn.Annotation) []Annotation {
	if len(anns) == 0 {
		return nil
	}
	out := make([]Annotation, len(anns))
	for i, a := range anns {
		out[i] = Annotation{Qualifier: a.Qualifier.String(), Resource: a.Resource}
	}
	return out
}

// Kinds returns the kind names of s.Counts sorted by descending count, ties
// broken by name.
func (s Summary) Kinds() []string {
	kinds := make([]string, 0, len(s.Counts))
	for k := range s.Counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if s.Counts[kinds[i]] != s.Counts[kinds[j]] {
			return s.Counts[kinds[i]] > s.Counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}

// Encode writes s to w in the named encoding.
func Encode(w io.Writer, s Summary, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		return enc.Close()
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(s); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode msgpack")
		}
		return nil
	}
	return errors.ValidateFormat(format, Formats())
}

// Decode reads a summary written by [Encode].
func Decode(r io.Reader, format string) (Summary, error) {
	var s Summary
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&s)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&s)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&s)
	default:
		return s, errors.ValidateFormat(format, Formats())
	}
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", format)
	}
	return s, nil
}

// Package annotations translates between RDF annotation blocks and
// qualifier/resource pairs.
package annotations

import (
	"encoding/xml"
	"strings"

	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

var prefixNamespaces = map[string]string{
	"bqbiol":  sbgnml.NamespaceBQBiol,
	"bqmodel": sbgnml.NamespaceBQMod,
}

var (
	byName      = make(map[xml.Name]sbgn.Qualifier)
	byQualifier = make(map[sbgn.Qualifier]xml.Name)
)

func init() {
	for _, q := range sbgn.Qualifiers() {
		prefix, local, _ := strings.Cut(q.String(), ":")
		name := xml.Name{Space: prefixNamespaces[prefix], Local: local}
		byName[name] = q
		byQualifier[q] = name
	}
}

// QualifierOf returns the qualifier named by a namespaced element name.
func QualifierOf(name xml.Name) (sbgn.Qualifier, bool) {
	q, ok := byName[name]
	return q, ok
}

// FromExtension returns the annotations of an annotation block in document
// order. Qualifiers outside the two BioModels.net vocabularies are ignored,
// as are empty resources.
func FromExtension(a *sbgnml.Annotation) []sbgn.Annotation {
	if a == nil || a.RDF == nil {
		return nil
	}
	var out []sbgn.Annotation
	for _, d := range a.RDF.Descriptions {
		for _, qe := range d.Qualifiers {
			q, ok := byName[qe.XMLName]
			if !ok || qe.Bag == nil {
				continue
			}
			for _, li := range qe.Bag.Items {
				if li.Resource == "" {
					continue
				}
				out = append(out, sbgn.Annotation{Qualifier: q, Resource: li.Resource})
			}
		}
	}
	return out
}

// ToExtension builds an annotation block describing about. Resources are
// grouped into one bag per qualifier, in first-seen order. It returns nil for
// an empty set.
func ToExtension(anns []sbgn.Annotation, about string) *sbgnml.Annotation {
	if len(anns) == 0 {
		return nil
	}
	d := &sbgnml.Description{About: about}
	bags := make(map[sbgn.Qualifier]*sbgnml.Bag)
	for _, a := range anns {
		name, ok := byQualifier[a.Qualifier]
		if !ok {
			continue
		}
		bag, ok := bags[a.Qualifier]
		if !ok {
			bag = &sbgnml.Bag{}
			bags[a.Qualifier] = bag
			d.Qualifiers = append(d.Qualifiers, &sbgnml.Qualifier{XMLName: name, Bag: bag})
		}
		bag.Items = append(bag.Items, &sbgnml.Li{Resource: a.Resource})
	}
	if len(d.Qualifiers) == 0 {
		return nil
	}
	return &sbgnml.Annotation{RDF: &sbgnml.RDF{Descriptions: []*sbgnml.Description{d}}}
}

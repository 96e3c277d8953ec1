package io

import (
	"sort"

	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// Format is a registered document format.
type Format struct {
	Name        string
	Version     sbgnml.Version
	Description string
}

// Format names.
const (
	FormatSBGNML   = "sbgnml"
	FormatSBGNML02 = "sbgnml-0.2"
	FormatSBGNML03 = "sbgnml-0.3"
)

var formats = map[string]Format{
	FormatSBGNML02: {FormatSBGNML02, sbgnml.Version02, "SBGN-ML, libsbgn 0.2 namespace"},
	FormatSBGNML03: {FormatSBGNML03, sbgnml.Version03, "SBGN-ML, libsbgn 0.3 namespace"},
	FormatSBGNML:   {FormatSBGNML, sbgnml.Version03, "SBGN-ML, newest generation"},
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	if err := errors.ValidateFormat(name, Formats()); err != nil {
		return Format{}, err
	}
	return formats[name], nil
}

// FormatOf returns the canonical name of a schema generation.
func FormatOf(v sbgnml.Version) string {
	switch v {
	case sbgnml.Version02:
		return FormatSBGNML02
	case sbgnml.Version03:
		return FormatSBGNML03
	}
	return ""
}

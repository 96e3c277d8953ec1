package io

import (
	"io"

	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/writer"
)

// Export writes m to w in the named format. The format decides the schema
// generation; the remaining writer options are used as given.
func Export(w io.Writer, m *sbgn.Map, format string, opts writer.Options) (writer.Stats, error) {
	f, err := Lookup(format)
	if err != nil {
		return writer.Stats{}, err
	}
	opts.Version = f.Version
	return writer.Write(w, m, opts)
}

// ExportFile writes m to a file at path. See [Export].
func ExportFile(m *sbgn.Map, path, format string, opts writer.Options) (writer.Stats, error) {
	f, err := Lookup(format)
	if err != nil {
		return writer.Stats{}, err
	}
	opts.Version = f.Version
	return writer.WriteFile(path, m, opts)
}

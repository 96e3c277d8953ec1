package io

import (
	"bytes"
	"io"
	"os"

	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/reader"
)

// Import reads a document from r. An empty format or the generic alias
// accepts any generation; a versioned format rejects documents of the other
// generation.
func Import(r io.Reader, format string, opts reader.Options) (*reader.Result, error) {
	var want Format
	if format != "" {
		f, err := Lookup(format)
		if err != nil {
			return nil, err
		}
		want = f
	}

	res, err := reader.Read(r, opts)
	if err != nil {
		return nil, err
	}
	if want.Name != "" && want.Name != FormatSBGNML && res.Version != want.Version {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"document is SBGN-ML %s, expected %s", res.Version, want.Name)
	}
	return res, nil
}

// ImportFile reads the document at path. See [Import].
func ImportFile(path, format string, opts reader.Options) (*reader.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return Import(bytes.NewReader(data), format, opts)
}

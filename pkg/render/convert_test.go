package render

import (
	"context"
	"testing"

	"github.com/matzehuels/sbgnconv/pkg/errors"
)

func TestConvertWithoutTool(t *testing.T) {
	prev := rsvgConvert
	rsvgConvert = "sbgnconv-missing-rsvg-convert"
	defer func() { rsvgConvert = prev }()

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	tests := []struct {
		name string
		run  func() ([]byte, error)
	}{
		{"pdf", func() ([]byte, error) { return ToPDF(context.Background(), svg) }},
		{"png", func() ([]byte, error) { return ToPNG(context.Background(), svg, 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("error = %v, want UNSUPPORTED", err)
			}
		})
	}
}

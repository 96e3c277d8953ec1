package writer

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/buildinfo"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// Options controls what the writer emits.
type Options struct {
	// Version is the schema generation written. Defaults to 0.3.
	Version sbgnml.Version

	WithRenderInformation bool
	WithAnnotations       bool
	WithNotes             bool

	// ProgramName and ProgramVersion are recorded in the render
	// information. They default to this program.
	ProgramName    string
	ProgramVersion string

	// NewID overrides the generator of render information ids.
	NewID func() string

	// Logger receives skipped elements. Defaults to log.Default().
	Logger *log.Logger
}

// DefaultOptions writes generation 0.3 with everything included.
func DefaultOptions() Options {
	return Options{
		Version:               sbgnml.Version03,
		WithRenderInformation: true,
		WithAnnotations:       true,
		WithNotes:             true,
	}
}

func (o Options) version() sbgnml.Version {
	if o.Version == sbgnml.VersionUnknown {
		return sbgnml.Version03
	}
	return o.Version
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o Options) program() (string, string) {
	name, version := o.ProgramName, o.ProgramVersion
	if name == "" {
		name = buildinfo.ProgramName
	}
	if version == "" {
		version = buildinfo.Version
	}
	return name, version
}

package sbgnml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/sbgnconv/pkg/sbgn"
)

// Namespaces of the five vocabularies a document may use.
const (
	Namespace02     = "http://sbgn.org/libsbgn/0.2"
	Namespace03     = "http://sbgn.org/libsbgn/0.3"
	NamespaceRender = "http://www.sbml.org/sbml/level3/version1/render/version1"
	NamespaceRDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceBQBiol = "http://biomodels.net/biology-qualifiers/"
	NamespaceBQMod  = "http://biomodels.net/model-qualifiers/"
)

// ErrUnknownVersion is returned by [Sniff] when neither namespace occurs.
var ErrUnknownVersion = errors.New("not an SBGN-ML document")

// Version is a schema generation of the wire format.
type Version int

const (
	VersionUnknown Version = iota
	Version02
	Version03
)

// Namespace returns the core namespace of v.
func (v Version) Namespace() string {
	switch v {
	case Version02:
		return Namespace02
	case Version03:
		return Namespace03
	}
	return ""
}

func (v Version) String() string {
	switch v {
	case Version02:
		return "0.2"
	case Version03:
		return "0.3"
	}
	return "unknown"
}

// ParseVersion accepts "0.2" and "0.3".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "0.2":
		return Version02, nil
	case "0.3":
		return Version03, nil
	}
	return VersionUnknown, fmt.Errorf("unknown SBGN-ML version %q", s)
}

// Sniff scans r line by line for a core namespace literal and returns the
// first generation found. It does not parse XML.
func Sniff(r io.Reader) (Version, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if v := sniffLine(line); v != VersionUnknown {
			return v, nil
		}
		if err == io.EOF {
			return VersionUnknown, ErrUnknownVersion
		}
		if err != nil {
			return VersionUnknown, err
		}
	}
}

func sniffLine(line string) Version {
	i02 := strings.Index(line, Namespace02)
	i03 := strings.Index(line, Namespace03)
	switch {
	case i02 >= 0 && (i03 < 0 || i02 < i03):
		return Version02
	case i03 >= 0:
		return Version03
	}
	return VersionUnknown
}

// CheckFile reports whether the file at path declares the namespace of v.
func CheckFile(path string, v Version) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ns := v.Namespace()
	if ns == "" {
		return false, fmt.Errorf("unknown SBGN-ML version %d", int(v))
	}
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if strings.Contains(line, ns) {
			return true, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

// DetectFile sniffs the generation of the file at path.
func DetectFile(path string) (Version, error) {
	f, err := os.Open(path)
	if err != nil {
		return VersionUnknown, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Sniff(f)
}

// Language version URIs of generation 0.3.
const (
	VersionURIPD   = "http://identifiers.org/combine.specifications/sbgn.pd.level-1.version-2.0"
	VersionURIAF   = "http://identifiers.org/combine.specifications/sbgn.af.level-1.version-1.2"
	versionURIBase = "http://identifiers.org/combine.specifications/sbgn."
)

// LanguageOfVersionURI maps a 0.3 version URI to the language it names.
// It reports false for URIs outside the combine.specifications scheme.
func LanguageOfVersionURI(uri string) (sbgn.Language, bool) {
	rest, ok := strings.CutPrefix(uri, versionURIBase)
	if !ok {
		return "", false
	}
	lang, level, ok := strings.Cut(rest, ".")
	if !ok || !strings.HasPrefix(level, "level-1.version-") {
		return "", false
	}
	switch lang {
	case "pd":
		return sbgn.LanguageProcessDescription, true
	case "af":
		return sbgn.LanguageActivityFlow, true
	case "er":
		return sbgn.LanguageEntityRelationship, true
	}
	return "", false
}

// VersionURIOf returns the URI the writer emits for lang, or "".
func VersionURIOf(lang sbgn.Language) string {
	switch lang {
	case sbgn.LanguageProcessDescription:
		return VersionURIPD
	case sbgn.LanguageActivityFlow:
		return VersionURIAF
	}
	return ""
}

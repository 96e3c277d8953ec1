package errors

import (
	"sort"
	"strings"
	"unicode"
)

// ValidateID validates an element identifier before it is written to a document.
//
// Identifiers are copied verbatim between the wire format and the in-memory
// map, so the rules only reject values that cannot survive as an XML
// attribute used for cross references:
//   - No empty identifiers
//   - No whitespace or control characters
//   - Maximum length of 256 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidID, "id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "id %q contains whitespace or control characters", id)
		}
	}

	return nil
}

// ValidateFormat checks that name is one of the accepted format names.
func ValidateFormat(name string, valid []string) error {
	if name == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	for _, v := range valid {
		if name == v {
			return nil
		}
	}
	sorted := append([]string(nil), valid...)
	sort.Strings(sorted)
	return New(ErrCodeInvalidFormat, "unknown format %q (valid: %s)", name, strings.Join(sorted, ", "))
}

// ValidateFilename checks a document name supplied by a client. Names are
// only used in logs and cache statistics, but must be a plain base name.
func ValidateFilename(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	case len(name) > 255:
		return New(ErrCodeInvalidPath, "filename too long (max 255 characters)")
	case strings.ContainsAny(name, "/\\"):
		return New(ErrCodeInvalidPath, "filename %q contains a path separator", name)
	case strings.HasPrefix(name, "."):
		return New(ErrCodeInvalidPath, "filename %q starts with a dot", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains control characters")
		}
	}
	return nil
}

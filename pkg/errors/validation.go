package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a graph node identifier.
// Node ids come from an external parser and end up in file names, cache keys,
// and DOT output, so the rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - Maximum length of 512 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeMalformedInput, "node id cannot be empty")
	}

	if len(id) > 512 {
		return New(ErrCodeMalformedInput, "node id too long (max 512 characters)")
	}

	for _, r := range id {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeMalformedInput, "node id contains invalid control characters")
		}
	}

	return nil
}

// ValidateFileAttr validates a node's source-file attribute.
// The file attribute names the node's container and is rendered as a label,
// so it must be a printable, non-empty string.
func ValidateFileAttr(file string) error {
	if file == "" {
		return New(ErrCodeMalformedInput, "node file cannot be empty")
	}

	if len(file) > 500 {
		return New(ErrCodeMalformedInput, "node file too long (max 500 characters)")
	}

	for _, r := range file {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeMalformedInput, "node file contains invalid control characters")
		}
	}

	return nil
}

// ValidateDirection validates a layout direction string.
// Only top-to-bottom ("TB") and left-to-right ("LR") are supported.
func ValidateDirection(dir string) error {
	switch dir {
	case "TB", "LR":
		return nil
	case "":
		return New(ErrCodeInvalidDirection, "direction cannot be empty")
	default:
		return New(ErrCodeInvalidDirection, "unknown direction %q (expected TB or LR)", dir)
	}
}

// ValidateOutputFormat validates a render output format.
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "dot", "svg", "png", "json":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	default:
		return New(ErrCodeInvalidFormat, "unknown format %q (expected dot, svg, png, or json)", format)
	}
}

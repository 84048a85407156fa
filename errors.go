package katachi

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType            = "invalid_type"
	CodeInvalidLiteral         = "invalid_literal"
	CodeInvalidEnum            = "invalid_enum"
	CodeInvalidLength          = "invalid_length"
	CodeUnrecognizedKeys       = "unrecognized_keys"
	CodeInvalidUnion           = "invalid_union"
	CodeDiscriminatorUnknown   = "discriminator_unknown"
	CodeDiscriminatorAmbiguous = "discriminator_ambiguous"
	CodeTransformFailed        = "transform_failed"
	CodeCustom                 = "custom"
	CodeParseError             = "parse_error"
)

// Issue is a single validation finding located by Path.
type Issue struct {
	Path    Path
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: rule names, remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation findings that implements error.
type Issues []Issue

// Error returns the aggregate summary, identical to the Message of a failed
// Result.
func (iss Issues) Error() string { return iss.Summary() }

// Summary joins every issue as "<message> (at path <pointer>)" behind a
// fixed "Validation failed: " prefix.
func (iss Issues) Summary() string {
	b := &strings.Builder{}
	b.WriteString("Validation failed")
	if len(iss) > 0 {
		b.WriteString(": ")
	}
	for i, it := range iss {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s (at path %s)", it.Message, it.Path.Pointer())
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

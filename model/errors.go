package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the model package, matching spec §7's ModelError
// kinds. Category checks should use errors.Is against these values; the
// payload-carrying variants below wrap one of them via Unwrap.
var (
	// ErrUnknownFormat indicates the input stream had fewer than six
	// bytes; any longer stream not starting with "solid " is read as
	// binary.
	ErrUnknownFormat = errors.New("model: unknown STL format")

	// ErrHeaderShort indicates a binary STL stream returned fewer than
	// 80 bytes for its header, or ended before the 4-byte triangle count.
	ErrHeaderShort = errors.New("model: binary STL header shorter than 80 bytes")

	// ErrTriangleShort is the sentinel behind TriangleShortError.
	ErrTriangleShort = errors.New("model: binary STL truncated")

	// ErrTriangleVertexCount indicates an ASCII "outer loop" accumulated
	// a vertex count other than three before "endloop".
	ErrTriangleVertexCount = errors.New("model: facet loop did not contain exactly 3 vertices")

	// ErrNumberParse indicates a "vertex" line's three fields did not
	// parse as floats.
	ErrNumberParse = errors.New("model: could not parse vertex coordinates")

	// ErrAsciiParse indicates a line did not match any valid transition
	// out of the ASCII parser's current state.
	ErrAsciiParse = errors.New("model: ascii parse error")
)

// NumberParseError names the line a malformed "vertex x y z" record was
// found on.
type NumberParseError struct {
	Line int
	Text string
}

func (e *NumberParseError) Error() string {
	return fmt.Sprintf("model: number parse error at line %d: %q", e.Line, e.Text)
}

func (e *NumberParseError) Unwrap() error { return ErrNumberParse }

// ParseError reports an ASCII STL parse failure at a specific line,
// wrapping the state-machine transition that rejected it.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model: parse error at line %d: %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrAsciiParse }

// TriangleShortError reports a binary STL stream running out of bytes
// partway through the triangle records.
type TriangleShortError struct {
	Expected, Got int
}

func (e *TriangleShortError) Error() string {
	return fmt.Sprintf("model: binary STL truncated: expected %d triangle bytes, got %d", e.Expected, e.Got)
}

func (e *TriangleShortError) Unwrap() error { return ErrTriangleShort }

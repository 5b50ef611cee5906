package model

import (
	"bufio"
	"io"

	"github.com/meshforge/slicecore/mesh"
)

// LoadTriangles identifies and parses an STL stream in one call: it
// peeks the first six bytes to classify the stream, then dispatches to
// ParseASCII or ParseBinary over the reconstituted reader.
func LoadTriangles(r io.Reader) ([]mesh.FreeTriangle, error) {
	buffered := bufio.NewReader(r)
	head, err := buffered.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch Identify(head) {
	case AsciiStl:
		return ParseASCII(buffered)
	case BinaryStl:
		return ParseBinary(buffered)
	default:
		return nil, ErrUnknownFormat
	}
}

package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/meshforge/slicecore/mesh"
)

type asciiState int

const (
	stateTop asciiState = iota
	stateSolid
	stateFacet
	stateLoop
)

// ParseASCII runs the line-driven state machine of spec §4.1 over r,
// producing the model's free triangles in facet order.
func ParseASCII(r io.Reader) ([]mesh.FreeTriangle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	state := stateTop
	var triangles []mesh.FreeTriangle
	var acc []mesh.Vertex
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		keyword := fields[0]

		switch state {
		case stateTop:
			if keyword == "solid" {
				state = stateSolid
				continue
			}
			return nil, &ParseError{Line: lineNo, Text: line}

		case stateSolid:
			switch keyword {
			case "facet":
				state = stateFacet
			case "endsolid":
				state = stateTop
			default:
				return nil, &ParseError{Line: lineNo, Text: line}
			}

		case stateFacet:
			switch {
			case keyword == "outer" && len(fields) > 1 && fields[1] == "loop":
				acc = acc[:0]
				state = stateLoop
			case keyword == "endfacet":
				state = stateSolid
			default:
				return nil, &ParseError{Line: lineNo, Text: line}
			}

		case stateLoop:
			switch keyword {
			case "vertex":
				v, err := parseVertexFields(fields, lineNo, line)
				if err != nil {
					return nil, err
				}
				acc = append(acc, v)
			case "endloop":
				if len(acc) != 3 {
					return nil, ErrTriangleVertexCount
				}
				triangles = append(triangles, mesh.FreeTriangle{acc[0], acc[1], acc[2]})
				state = stateFacet
			default:
				return nil, &ParseError{Line: lineNo, Text: line}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return triangles, nil
}

func parseVertexFields(fields []string, lineNo int, line string) (mesh.Vertex, error) {
	if len(fields) != 4 {
		return mesh.Vertex{}, &NumberParseError{Line: lineNo, Text: line}
	}
	var v mesh.Vertex
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return mesh.Vertex{}, &NumberParseError{Line: lineNo, Text: line}
		}
		v[i] = f
	}
	return v, nil
}

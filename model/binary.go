package model

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/meshforge/slicecore/mesh"
)

const (
	binaryHeaderLen   = 80
	binaryRecordLen   = 50 // 4 × (3 × float32) + uint16 attribute byte count
	vectorsPerRecord  = 4  // normal + 3 vertices
	floatsPerVector   = 3
	bytesPerFloat32   = 4
	binaryVertexBytes = floatsPerVector * bytesPerFloat32
)

// ParseBinary reads the fixed 80-byte-header + u32-count + N×50-byte
// record layout of spec §6, discarding the per-facet normal and the
// attribute byte count.
func ParseBinary(r io.Reader) ([]mesh.FreeTriangle, error) {
	header := make([]byte, binaryHeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrHeaderShort
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, ErrHeaderShort
	}

	triangles := make([]mesh.FreeTriangle, 0, count)
	record := make([]byte, binaryRecordLen)

	for i := uint32(0); i < count; i++ {
		n, err := io.ReadFull(r, record)
		if err != nil {
			return nil, &TriangleShortError{
				Expected: int(count-i) * binaryRecordLen,
				Got:      n,
			}
		}

		var tri mesh.FreeTriangle
		for vi := 1; vi < vectorsPerRecord; vi++ { // skip the normal at vector 0
			off := vi * binaryVertexBytes
			for axis := 0; axis < floatsPerVector; axis++ {
				bits := binary.LittleEndian.Uint32(record[off+axis*bytesPerFloat32:])
				tri[vi-1][axis] = float64(math.Float32frombits(bits))
			}
		}
		triangles = append(triangles, tri)
	}

	return triangles, nil
}

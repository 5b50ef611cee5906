package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshforge/slicecore/model"
)

func TestIdentify(t *testing.T) {
	cases := []struct {
		name string
		head []byte
		want model.Kind
	}{
		{"ascii signature", []byte("solid cube\n"), model.AsciiStl},
		{"binary looking bytes", []byte{0, 1, 2, 3, 4, 5, 6, 7}, model.BinaryStl},
		{"too short", []byte("sol"), model.Unknown},
		{"empty", nil, model.Unknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, model.Identify(c.head))
		})
	}
}

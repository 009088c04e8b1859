package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "Hold fire", 10, []string{"Hold fire"}},
		{"breaks at words", "Which hand signal means move out", 12, []string{"Which hand", "signal means", "move out"}},
		{"long word stays whole", "Reconnaissance team", 5, []string{"Reconnaissance", "team"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapLines(tt.in, tt.width))
		})
	}
}

func TestLighten(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 80, G: 255, B: 255, A: 200}, lighten(color.RGBA{R: 40, G: 230, B: 215, A: 200}))
}

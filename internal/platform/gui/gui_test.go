//go:build gui

package gui

import (
	"testing"

	"github.com/vovakirdan/color-stack/internal/core"
)

func TestToWorldFlipsY(t *testing.T) {
	size := core.Size{W: 750, H: 750}

	tests := []struct {
		x, y     int
		expected core.Vec
	}{
		{0, 0, core.V(0, 750)},
		{0, 750, core.V(0, 0)},
		{375, 300, core.V(375, 450)},
	}
	for _, tc := range tests {
		if got := toWorld(size, tc.x, tc.y); got != tc.expected {
			t.Errorf("toWorld(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
		}
		if got := toScreenY(size, tc.expected.Y); int(got) != tc.y {
			t.Errorf("toScreenY(%v) = %v, expected %d", tc.expected.Y, got, tc.y)
		}
	}
}

func TestRGBA(t *testing.T) {
	for c := range palette {
		if rgba(c).A != 255 {
			t.Errorf("%s is not opaque", c)
		}
	}
	if rgba(core.Color(200)) != palette[core.ColorDefault] {
		t.Error("unknown colors should fall back to the default")
	}
	if rgba(core.ColorRed) == rgba(core.ColorBlue) {
		t.Error("palette colors should differ")
	}
}

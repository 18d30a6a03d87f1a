package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.RGB
		expected float64
	}{
		{"identical", core.Red, core.Red, 0},
		{"black vs white", core.Black, core.RGB{255, 255, 255}, 100},
		{"half grey vs red", core.Red, core.RGB{127.5, 127.5, 127.5}, 50},
		{"one channel", core.Red, core.Black, 100 / math.Sqrt(3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.Delta(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Delta(%v, %v) = %f, expected %f", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestClosestMatchAllBlack(t *testing.T) {
	g, _ := core.Build(4, 4)
	m := core.ClosestMatch(g, core.RGB{10, 20, 30})

	if m.Found {
		t.Error("all-black grid should not produce a match")
	}
	if m.Delta != core.DefaultDelta {
		t.Errorf("Delta = %f, expected %f", m.Delta, core.DefaultDelta)
	}
	if m.ID != core.DefaultClosestID {
		t.Errorf("ID = %q, expected %q", m.ID, core.DefaultClosestID)
	}
}

func TestClosestMatchExact(t *testing.T) {
	target := core.RGB{12, 200, 77}
	g, _ := core.Build(5, 3)
	g.Cells[1][1].Color = core.RGB{255, 0, 0}
	g.Cells[2][4].Color = target
	g.Cells[3][5].Color = core.RGB{10, 190, 70}

	m := core.ClosestMatch(g, target)
	if !m.Found || m.ID != "4,2" {
		t.Fatalf("ClosestMatch() = %+v, expected tile 4,2", m)
	}
	if m.Delta != 0 {
		t.Errorf("Delta = %f, expected 0", m.Delta)
	}
	if m.Color != target {
		t.Errorf("Color = %v, expected %v", m.Color, target)
	}
}

func TestClosestMatchFirstWinsTies(t *testing.T) {
	g, _ := core.Build(3, 3)
	same := core.RGB{100, 100, 100}
	g.Cells[3][1].Color = same
	g.Cells[2][3].Color = same
	g.Cells[2][2].Color = same

	m := core.ClosestMatch(g, core.Red)
	if m.ID != "2,2" {
		t.Errorf("ClosestMatch() ID = %q, expected first in row-major order 2,2", m.ID)
	}
}

func TestClosestMatchSkipsBlackTarget(t *testing.T) {
	g, _ := core.Build(2, 2)
	g.Cells[2][2].Color = core.RGB{200, 200, 200}

	// A black tile would be an exact match, but black tiles are unlit.
	m := core.ClosestMatch(g, core.Black)
	if m.ID != "2,2" {
		t.Errorf("ClosestMatch() ID = %q, expected 2,2", m.ID)
	}
}

func TestMarkClosest(t *testing.T) {
	g, _ := core.Build(3, 2)
	g.MarkClosest("2,2")

	for _, c := range g.Tiles() {
		want := core.DefaultHighlight
		if c.ID == "2,2" {
			want = core.ClosestHighlight
		}
		if c.Highlight != want {
			t.Errorf("tile %s highlight = %v, expected %v", c.ID, c.Highlight, want)
		}
	}

	g.MarkClosest("1,1")
	if g.At(2, 2).Highlight != core.DefaultHighlight {
		t.Error("previous closest tile should be reset")
	}
	if g.At(1, 1).Highlight != core.ClosestHighlight {
		t.Error("new closest tile should be highlighted")
	}
}

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// CellID is the stable "x,y" identifier of a cell.
type CellID string

// ID builds the identifier of the cell at (x, y).
func ID(x, y int) CellID {
	return CellID(strconv.Itoa(x) + "," + strconv.Itoa(y))
}

// Decode parses an "x,y" identifier.
func Decode(id CellID) (x, y int, err error) {
	xs, ys, ok := strings.Cut(string(id), ",")
	if !ok {
		return 0, 0, fmt.Errorf("core: %w: %q", ErrInvalidIDFormat, id)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("core: %w: %q", ErrInvalidIDFormat, id)
	}
	return x, y, nil
}

// Kind is the fixed role of a cell on the board.
type Kind uint8

const (
	KindUnused Kind = iota // one of the four corners
	KindSource             // non-corner border cell
	KindTile               // interior cell
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindUnused:
		return "unused"
	case KindSource:
		return "source"
	case KindTile:
		return "tile"
	default:
		return "unknown"
	}
}

// Classify returns the kind of the cell at (x, y) on a board of w×h tiles.
func Classify(x, y, w, h int) Kind {
	onVertical := x == 0 || x == w+1
	onHorizontal := y == 0 || y == h+1
	switch {
	case onVertical && onHorizontal:
		return KindUnused
	case onVertical || onHorizontal:
		return KindSource
	default:
		return KindTile
	}
}

// Side is the border edge a source sits on.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Horizontal reports whether a source on this side lights a row.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// SideOf returns the side of the source at (x, y).
// Only meaningful for KindSource cells; left and right win over top and bottom.
func SideOf(x, y, w, h int) Side {
	switch {
	case x == 0:
		return SideLeft
	case x == w+1:
		return SideRight
	case y == 0:
		return SideTop
	default:
		return SideBottom
	}
}

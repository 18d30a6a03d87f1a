package core

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxChannel is the brightest value a color channel can hold.
const MaxChannel = 255.0

// RGB is a color with three real-valued channels in [0, 255].
// Encodes to JSON as [r, g, b].
type RGB [3]float64

// Well-known colors used by the game.
var (
	Black = RGB{0, 0, 0}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}

	// DefaultHighlight is the border color of a cell that is not the closest match.
	DefaultHighlight = RGB{200, 200, 200}
	// ClosestHighlight marks the tile closest to the target color.
	ClosestHighlight = RGB{255, 0, 0}
)

// R returns the red channel.
func (c RGB) R() float64 { return c[0] }

// G returns the green channel.
func (c RGB) G() float64 { return c[1] }

// B returns the blue channel.
func (c RGB) B() float64 { return c[2] }

// IsBlack reports whether every channel is exactly zero.
func (c RGB) IsBlack() bool {
	return c == Black
}

// Scale multiplies every channel by k.
func (c RGB) Scale(k float64) RGB {
	return RGB{c[0] * k, c[1] * k, c[2] * k}
}

// Add returns the channel-wise sum of two colors. The result is not clamped.
func (c RGB) Add(other RGB) RGB {
	return RGB{c[0] + other[0], c[1] + other[1], c[2] + other[2]}
}

// Hex returns the color as "#rrggbb", rounding channels to the nearest byte.
func (c RGB) Hex() string {
	return colorful.Color{
		R: c[0] / MaxChannel,
		G: c[1] / MaxChannel,
		B: c[2] / MaxChannel,
	}.Clamped().Hex()
}

// String returns a compact rgb(...) form with rounded channels.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)",
		int(math.Round(c[0])), int(math.Round(c[1])), int(math.Round(c[2])))
}

// Attenuate returns the contribution of a source color at the given distance
// along an axis holding dim tiles. Distance 1 is the tile next to the source;
// the factor k = (dim+1-distance)/(dim+1) decays to zero just past the far edge.
func Attenuate(c RGB, distance, dim int) RGB {
	k := float64(dim+1-distance) / float64(dim+1)
	return c.Scale(k)
}

// Mix adds contributions channel by channel and scales the sum down so that
// no channel exceeds 255. Sums already within range are returned unchanged.
func Mix(contributions ...RGB) RGB {
	var sum RGB
	for _, c := range contributions {
		sum = sum.Add(c)
	}
	f := MaxChannel / math.Max(math.Max(sum[0], sum[1]), math.Max(sum[2], MaxChannel))
	return sum.Scale(f)
}

// Delta returns the distance between two colors as a percentage of the
// largest possible distance in RGB space: 0 is identical, 100 is black vs white.
func Delta(target, c RGB) float64 {
	dr := target[0] - c[0]
	dg := target[1] - c[1]
	db := target[2] - c[2]
	return 100 / (MaxChannel * math.Sqrt(3)) * math.Sqrt(dr*dr+dg*dg+db*db)
}

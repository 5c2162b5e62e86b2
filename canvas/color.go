package canvas

import "github.com/lodenkai/etchling/fix64"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// lerpChannel interpolates one channel by a Q31.32 factor in [0, One]
func lerpChannel(dst, src uint8, t int64) uint8 {
	return uint8(int64(dst) + ((int64(src)-int64(dst))*t)>>fix64.Shift)
}

// Lerp interpolates toward src by a Q31.32 factor. Integer arithmetic
// throughout so canvases stay bit-identical across platforms.
func (dst RGB) Lerp(src RGB, t int64) RGB {
	if t <= 0 {
		return dst
	}
	if t >= fix64.One {
		return src
	}
	return RGB{
		R: lerpChannel(dst.R, src.R, t),
		G: lerpChannel(dst.G, src.G, t),
		B: lerpChannel(dst.B, src.B, t),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (dst RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (dst RGB) Max(src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Scale multiplies all channels by a Q31.32 factor, clamping to the
// channel range. Factors above One brighten, at or below zero black out.
func (c RGB) Scale(s int64) RGB {
	if s <= 0 {
		return Black
	}
	return RGB{
		R: scaleChannel(c.R, s),
		G: scaleChannel(c.G, s),
		B: scaleChannel(c.B, s),
	}
}

func scaleChannel(v uint8, s int64) uint8 {
	r := (int64(v) * s) >> fix64.Shift
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Lerp(Dst, Src, t)
	BlendAdd                      // Dst = clamp(Dst + Src, 255)
	BlendMax                      // Dst = max(Dst, Src) per channel
)

package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/surface"
)

const (
	sectorSegments = 32
	rad2deg        = 180 / math.Pi
)

// Surface draws into a render texture that persists between frames, so a
// translucent Fade leaves trails the way a 2D canvas does.
type Surface struct {
	Target     rl.RenderTexture2D
	Glow       rl.Texture2D
	Background colorful.Color
}

var _ surface.Surface = (*Surface)(nil)

func toColor(c colorful.Color, alpha float64) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, uint8(math.Round(math.Max(0, math.Min(alpha, 1))*255)))
}

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

func (s *Surface) Size() (w, h float64) {
	return float64(s.Target.Texture.Width), float64(s.Target.Texture.Height)
}

func (s *Surface) Fade(c colorful.Color, alpha float64) {
	s.Background = c
	w, h := s.Size()
	rl.DrawRectangle(0, 0, int32(w), int32(h), toColor(c, alpha))
}

// halo draws the radial glow texture under a shape of radius r.
func (s *Surface) halo(x, y, r float64, c colorful.Color, glow float64) {
	if glow <= 0 || s.Glow.ID == 0 {
		return
	}
	size := 2 * (r + glow)
	src := rl.NewRectangle(0, 0, float32(s.Glow.Width), float32(s.Glow.Height))
	dst := rl.NewRectangle(float32(x-size/2), float32(y-size/2), float32(size), float32(size))
	rl.DrawTexturePro(s.Glow, src, dst, rl.Vector2{}, 0, toColor(c, 0.6))
}

func (s *Surface) FillCircle(x, y, r float64, c colorful.Color, glow float64) {
	s.halo(x, y, r, c, glow)
	rl.DrawCircleV(vec(x, y), float32(r), toColor(c, 1))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(math.Max(width, 1)), toColor(c, alpha))
}

func (s *Surface) FillRect(x, y, w, h float64, c colorful.Color, glow float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if glow > 0 {
		g := glow / 4
		rl.DrawRectangleRec(rl.NewRectangle(float32(x-g), float32(y-g), float32(w+2*g), float32(h+2*g)), toColor(c, 0.25))
	}
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), toColor(c, 1))
}

func (s *Surface) FillSector(cx, cy, r, start, end float64, c colorful.Color, glow float64) {
	if end <= start || r <= 0 {
		return
	}
	if glow > 0 {
		rl.DrawCircleSector(vec(cx, cy), float32(r+glow/4), float32(start*rad2deg), float32(end*rad2deg), sectorSegments, toColor(c, 0.25))
	}
	rl.DrawCircleSector(vec(cx, cy), float32(r), float32(start*rad2deg), float32(end*rad2deg), sectorSegments, toColor(c, 1))
}

// ClearCircle paints the hole in the background color.
func (s *Surface) ClearCircle(cx, cy, r float64) {
	rl.DrawCircleV(vec(cx, cy), float32(r), toColor(s.Background, 1))
}

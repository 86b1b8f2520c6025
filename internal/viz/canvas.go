package viz

import (
	"image"
	"image/color"
	"image/color/palette"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/folio/internal/surface"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = rune(0x2800)

	// DotSize is the edge of one braille dot in page pixels, so a cell
	// covers CellW×CellH pixels.
	DotSize = 4
	CellW   = 2 * DotSize
	CellH   = 4 * DotSize

	// Dots fainter than this are not plotted.
	minAlpha = 0.05
)

var _ surface.Surface = (*Canvas)(nil)

// Canvas is a braille surface. Each cell keeps the color and weight of the
// strongest mark drawn into it since the last clear.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color
	weight        [][]float64
	glow          [][]bool
	Background    colorful.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Background: surface.Black}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid for w×h cells and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]colorful.Color, h)
	c.weight = make([][]float64, h)
	c.glow = make([][]bool, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
		c.weight[i] = make([]float64, w)
		c.glow[i] = make([]bool, w)
	}
	c.Clear()
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set turns on the dot at sub-pixel (x, y). The canvas is Width*2 by
// Height*4 sub-pixels.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a dot. A cell left without dots forgets its color.
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] == blank {
		c.weight[row][col] = 0
		c.glow[row][col] = false
	}
}

// plot sets a dot and records its color if it outweighs what the cell holds.
func (c *Canvas) plot(x, y int, col colorful.Color, alpha float64, glow bool) {
	r, k, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[r][k] |= rune(pixelMap[y%4][x%2])
	if alpha >= c.weight[r][k] {
		c.weight[r][k] = alpha
		c.Colors[r][k] = c.Background.BlendRgb(col, alpha).Clamped()
	}
	if glow {
		c.glow[r][k] = true
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.weight[i][j] = 0
			c.glow[i][j] = false
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.line(x0, y0, x1, y1, func(x, y int) { c.Set(x, y) })
}

func (c *Canvas) line(x0, y0, x1, y1 int, set func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func dot(v float64) int { return int(math.Floor(v / DotSize)) }

func (c *Canvas) Size() (w, h float64) {
	return float64(c.Width * CellW), float64(c.Height * CellH)
}

// Fade washes the canvas. A wash of at least half opacity clears it; a
// lighter one weakens every cell and drops the ones that fall below minAlpha.
func (c *Canvas) Fade(bg colorful.Color, alpha float64) {
	c.Background = bg
	if alpha >= 0.5 {
		c.Clear()
		return
	}
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] == blank {
				continue
			}
			w := c.weight[i][j] * (1 - alpha)
			if w < minAlpha {
				c.Grid[i][j] = blank
				c.weight[i][j] = 0
				c.glow[i][j] = false
				continue
			}
			c.weight[i][j] = w
			c.Colors[i][j] = c.Colors[i][j].BlendRgb(bg, alpha).Clamped()
		}
	}
}

func (c *Canvas) FillCircle(x, y, r float64, col colorful.Color, glow float64) {
	cx, cy := dot(x), dot(y)
	rr := r / DotSize
	if rr < 0.5 {
		c.plot(cx, cy, col, 1, glow > 0)
		return
	}
	n := int(math.Ceil(rr))
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			if float64(dx*dx+dy*dy) <= rr*rr {
				c.plot(cx+dx, cy+dy, col, 1, glow > 0)
			}
		}
	}
}

// StrokeLine ignores width; every line is one dot wide.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col colorful.Color, alpha float64) {
	if alpha < minAlpha {
		return
	}
	c.line(dot(x0), dot(y0), dot(x1), dot(y1), func(x, y int) { c.plot(x, y, col, alpha, false) })
}

func (c *Canvas) FillRect(x, y, w, h float64, col colorful.Color, glow float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x0, y0 := dot(x), dot(y)
	x1, y1 := dot(x+w-1e-9), dot(y+h-1e-9)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.plot(px, py, col, 1, glow > 0)
		}
	}
}

// FillSector fills the dots whose centers fall inside the circular sector
// swept clockwise from start to end.
func (c *Canvas) FillSector(cx, cy, r, start, end float64, col colorful.Color, glow float64) {
	sweep := end - start
	if sweep <= 0 || r <= 0 {
		return
	}
	x0, y0 := dot(cx-r), dot(cy-r)
	x1, y1 := dot(cx+r), dot(cy+r)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := (float64(px)+0.5)*DotSize - cx
			dy := (float64(py)+0.5)*DotSize - cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if sweep < 2*math.Pi {
				a := math.Mod(math.Atan2(dy, dx)-start, 2*math.Pi)
				if a < 0 {
					a += 2 * math.Pi
				}
				if a > sweep {
					continue
				}
			}
			c.plot(px, py, col, 1, glow > 0)
		}
	}
}

func (c *Canvas) ClearCircle(cx, cy, r float64) {
	x0, y0 := dot(cx-r), dot(cy-r)
	x1, y1 := dot(cx+r), dot(cy+r)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := (float64(px)+0.5)*DotSize - cx
			dy := (float64(py)+0.5)*DotSize - cy
			if dx*dx+dy*dy <= r*r {
				c.Unset(px, py)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with each cell in its recorded color. Glowing
// cells are bold. Runs of equal style are rendered together.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.sameStyle(i, start, j) {
				continue
			}
			b.WriteString(c.cellStyle(i, start).Render(string(row[start:j])))
			start = j
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) sameStyle(row, a, b int) bool {
	ea, eb := c.Grid[row][a] == blank, c.Grid[row][b] == blank
	if ea || eb {
		return ea && eb
	}
	return c.Colors[row][a] == c.Colors[row][b] && c.glow[row][a] == c.glow[row][b]
}

func (c *Canvas) cellStyle(row, col int) lipgloss.Style {
	if c.Grid[row][col] == blank {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Colors[row][col].Hex())).
		Bold(c.glow[row][col])
}

// Image rasterizes the canvas at one pixel per page pixel, each dot a
// DotSize square in its cell's color.
func (c *Canvas) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*CellW, c.Height*CellH), palette.Plan9)
	bg := img.Palette.Index(toRGBA(c.Background))
	for i := range img.Pix {
		img.Pix[i] = uint8(bg)
	}
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern == 0 {
				continue
			}
			idx := uint8(img.Palette.Index(toRGBA(c.Colors[row][col])))
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					x0, y0 := col*CellW+dx*DotSize, row*CellH+dy*DotSize
					for py := y0; py < y0+DotSize; py++ {
						for px := x0; px < x0+DotSize; px++ {
							img.SetColorIndex(px, py, idx)
						}
					}
				}
			}
		}
	}
	return img
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

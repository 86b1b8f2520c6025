package surface

import "github.com/lucasb-eyer/go-colorful"

type OpKind int

const (
	OpFade OpKind = iota
	OpCircle
	OpLine
	OpRect
	OpSector
	OpClear
)

func (k OpKind) String() string {
	switch k {
	case OpFade:
		return "fade"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpSector:
		return "sector"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// Op is one recorded draw call. Args hold the geometric arguments in call order.
type Op struct {
	Kind  OpKind
	Args  []float64
	Color colorful.Color
	Alpha float64
	Glow  float64
}

// Recorder is a Surface that keeps every call for inspection.
type Recorder struct {
	W, H float64
	Ops  []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Fade(c colorful.Color, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFade, Color: c, Alpha: alpha})
}

func (r *Recorder) FillCircle(x, y, rad float64, c colorful.Color, glow float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Args: []float64{x, y, rad}, Color: c, Alpha: 1, Glow: glow})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Args: []float64{x0, y0, x1, y1, width}, Color: c, Alpha: alpha})
}

func (r *Recorder) FillRect(x, y, w, h float64, c colorful.Color, glow float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Args: []float64{x, y, w, h}, Color: c, Alpha: 1, Glow: glow})
}

func (r *Recorder) FillSector(cx, cy, rad, start, end float64, c colorful.Color, glow float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSector, Args: []float64{cx, cy, rad, start, end}, Color: c, Alpha: 1, Glow: glow})
}

func (r *Recorder) ClearCircle(cx, cy, rad float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Args: []float64{cx, cy, rad}})
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the ops of kind k in call order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

package viz

import (
	"fmt"
	"image"
	"image/gif"
	"os"
)

// maxRecordFrames bounds a recording to about a minute at 45 fps.
const maxRecordFrames = 45 * 60

// Recorder collects canvas frames for a GIF.
type Recorder struct {
	frames []*image.Paletted
	// Delay between frames in hundredths of a second.
	Delay int
}

func NewRecorder(fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &Recorder{Delay: delay}
}

// Capture appends the canvas as one frame. Frames beyond the cap, and
// frames sized differently from the first, are dropped.
func (r *Recorder) Capture(c *Canvas) {
	if len(r.frames) >= maxRecordFrames {
		return
	}
	img := c.Image()
	if len(r.frames) > 0 && img.Bounds() != r.frames[0].Bounds() {
		return
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Len() int { return len(r.frames) }

// Save encodes the frames as a looping GIF.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("record: no frames captured")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("record: encode %s: %w", path, err)
	}
	return f.Close()
}

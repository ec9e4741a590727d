package render

// Headless is an Engine without a display. Its surface is a Recorder and its
// clock a FrameQueue; Run replays scripted events and steps a fixed number of
// frames, so sessions can be exercised in tests.
type Headless struct {
	Recorder *Recorder
	Queue    FrameQueue

	// OffsetX and OffsetY place the surface inside the virtual viewport.
	OffsetX, OffsetY float64

	// Events[i] is delivered before frame i runs.
	Events [][]Event

	// Frames is the number of frames Run steps before returning.
	Frames int

	Title string
}

// NewHeadless creates a headless engine with a width×height surface.
func NewHeadless(width, height int) *Headless {
	return &Headless{Recorder: NewRecorder(width, height)}
}

// Surface returns the recording surface, or nil if none is attached.
func (h *Headless) Surface() Surface {
	if h.Recorder == nil {
		return nil
	}
	return h.Recorder
}

// SurfaceOffset returns the configured surface offset.
func (h *Headless) SurfaceOffset() (float64, float64) {
	return h.OffsetX, h.OffsetY
}

// Clock returns the frame queue.
func (h *Headless) Clock() FrameClock {
	return &h.Queue
}

// SetWindowTitle records the title.
func (h *Headless) SetWindowTitle(title string) {
	h.Title = title
}

// Run delivers the scripted events and runs Frames frames.
func (h *Headless) Run(host Host) error {
	for f := 0; f < h.Frames; f++ {
		if f < len(h.Events) {
			for _, ev := range h.Events[f] {
				host.HandleEvent(ev)
			}
		}
		h.Queue.RunFrame()
	}
	return nil
}

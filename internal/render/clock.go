package render

// FrameQueue is a FrameClock whose callbacks run when RunFrame is called.
// Backends call RunFrame once per refresh; tests call it directly to step
// frames without a display.
type FrameQueue struct {
	pending []func()
	spare   []func()
	frames  int
}

// RequestFrame queues fn for the next RunFrame.
func (q *FrameQueue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// RunFrame runs the callbacks queued before this call. Callbacks requested
// while running are deferred to the following frame.
func (q *FrameQueue) RunFrame() {
	run := q.pending
	q.pending = q.spare[:0]
	for i, fn := range run {
		fn()
		run[i] = nil
	}
	q.spare = run[:0]
	q.frames++
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many times RunFrame has been called.
func (q *FrameQueue) Frames() int {
	return q.frames
}

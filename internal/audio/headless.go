//go:build headless

package audio

// HeadlessSink discards rendered PCM; used for tests and CI where no
// audio device is available.
type HeadlessSink struct {
	renderer Renderer
	started  bool
	buf      [4096]byte
}

func NewHeadlessSink(sampleRate int) (*HeadlessSink, error) {
	return &HeadlessSink{}, nil
}

func (s *HeadlessSink) SetRenderer(r Renderer) { s.renderer = r }

func (s *HeadlessSink) Start() error {
	s.started = true
	return nil
}

func (s *HeadlessSink) Stop() error {
	s.started = false
	return nil
}

func (s *HeadlessSink) Close() error {
	s.started = false
	return nil
}

func (s *HeadlessSink) IsStarted() bool { return s.started }

// Pump renders one block into the discard buffer, for tests that want to
// exercise the render path without a real audio device.
func (s *HeadlessSink) Pump(count int) {
	if s.renderer == nil {
		return
	}
	n := 4 * count
	if n > len(s.buf) {
		n = len(s.buf)
		count = n / 4
	}
	s.renderer.Render(s.buf[:4*count], count)
}

//go:build !headless

package audio

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// OtoSink plays interleaved 16-bit stereo PCM through oto/v3. Grounded on
// the teacher's OtoPlayer, adapted from its float32-mono/ring-buffer pull
// to the engine's int16-stereo Render(buf, count) contract.
type OtoSink struct {
	ctx      *oto.Context
	player   *oto.Player
	renderer atomic.Pointer[Renderer]
	started  bool
	mutex    sync.Mutex
}

func NewOtoSink(sampleRate int) (*OtoSink, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

func (s *OtoSink) SetRenderer(r Renderer) { s.renderer.Store(&r) }

// Read implements io.Reader for oto's player, which polls it on its own
// goroutine; p is always a multiple of 4 bytes (one int16 stereo frame).
func (s *OtoSink) Read(p []byte) (int, error) {
	r := s.renderer.Load()
	if r == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	count := len(p) / 4
	(*r).Render(p[:4*count], count)
	return 4 * count, nil
}

func (s *OtoSink) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.started {
		s.player.Play()
		s.started = true
	}
	return nil
}

func (s *OtoSink) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.started {
		s.player.Pause()
		s.started = false
	}
	return nil
}

func (s *OtoSink) Close() error {
	_ = s.Stop()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.player.Close()
}

func (s *OtoSink) IsStarted() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.started
}

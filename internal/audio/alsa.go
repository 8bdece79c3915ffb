//go:build linux && alsa

package audio

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate) {
    snd_pcm_hw_params_t* params;
    int err;

    snd_pcm_hw_params_alloca(&params);
    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_format(handle, params, SND_PCM_FORMAT_S16_LE);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_channels(handle, params, 2);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) return err;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) return err;

    return snd_pcm_prepare(handle);
}

static int writePCM(snd_pcm_t* handle, short* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"
import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

const alsaBlockFrames = 1024

// ALSASink plays interleaved 16-bit stereo PCM directly to an ALSA PCM
// device, pulling from a Renderer on its own goroutine. Grounded on the
// teacher's ALSAPlayer, adapted from its caller-driven Write(samples) to a
// self-driven pull loop matching OtoSink's pull model.
type ALSASink struct {
	handle   *C.snd_pcm_t
	renderer atomic.Pointer[Renderer]
	buf      []byte
	playing  atomic.Bool
	done     chan struct{}
	mutex    sync.Mutex
}

func NewALSASink(sampleRate int) (*ALSASink, error) {
	var cerr C.int
	handle := C.openPCM(C.CString("default"), &cerr)
	if cerr < 0 {
		return nil, fmt.Errorf("open ALSA device: %s", C.GoString(C.snd_strerror(cerr)))
	}
	if cerr = C.setupPCM(handle, C.uint(sampleRate)); cerr < 0 {
		C.closePCM(handle)
		return nil, fmt.Errorf("configure ALSA device: %s", C.GoString(C.snd_strerror(cerr)))
	}
	return &ALSASink{
		handle: handle,
		buf:    make([]byte, 4*alsaBlockFrames),
	}, nil
}

func (s *ALSASink) SetRenderer(r Renderer) { s.renderer.Store(&r) }

func (s *ALSASink) Start() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.playing.Load() {
		return nil
	}
	s.playing.Store(true)
	s.done = make(chan struct{})
	go s.loop(s.done)
	return nil
}

func (s *ALSASink) loop(done chan struct{}) {
	for s.playing.Load() {
		r := s.renderer.Load()
		if r == nil {
			continue
		}
		(*r).Render(s.buf, alsaBlockFrames)
		frames := C.writePCM(s.handle, (*C.short)(unsafe.Pointer(&s.buf[0])), C.int(alsaBlockFrames))
		if frames < 0 && frames == -C.EPIPE {
			C.snd_pcm_prepare(s.handle)
		}
	}
	close(done)
}

func (s *ALSASink) Stop() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.playing.Load() {
		return nil
	}
	s.playing.Store(false)
	<-s.done
	return nil
}

func (s *ALSASink) Close() error {
	_ = s.Stop()
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.handle != nil {
		C.closePCM(s.handle)
		s.handle = nil
	}
	return nil
}

func (s *ALSASink) IsStarted() bool { return s.playing.Load() }

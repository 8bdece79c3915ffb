// Command synthd is a terminal demo harness for the synth engine: it maps
// a row of keyboard keys to the 24 voice gates and a handful of plain keys
// to the parameter-stepper helpers, satisfying the CLI surface "for
// completeness" without the full menu/spectrum/waveform UI (out of scope).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/voltlattice/ladderwave/internal/audio"
	"github.com/voltlattice/ladderwave/internal/engine"
	"github.com/voltlattice/ladderwave/internal/param"
)

const sampleRate = 44100

// voiceKeys maps one ASCII byte to each of the engine's 24 voice slots, in
// ascending frequency order, grounded on terminal_host.go's single-byte
// RouteHostKey dispatch.
var voiceKeys = [engine.NumVoices]byte{
	'1', '2', '3', '4', '5', '6', '7', '8', '9', '0',
	'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p',
	'a', 's', 'd', 'f',
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	eng := engine.NewEngine(sampleRate)

	sink, err := audio.NewOtoSink(sampleRate)
	if err != nil {
		logger.Error("open audio sink", "err", err)
		os.Exit(1)
	}
	sink.SetRenderer(eng)
	if err := sink.Start(); err != nil {
		logger.Error("start audio sink", "err", err)
		os.Exit(1)
	}
	defer sink.Close()

	host := newTerminalInput()
	host.Start()
	defer host.Stop()

	logger.Info("synthd running", "sample_rate", sampleRate, "voices", engine.NumVoices, "cpu_features", eng.CPUFeatures())
	fmt.Fprintln(os.Stderr, "keys 1-0,q-p,a-f gate voices; =/- step output scale; [/] shift octave; esc quits")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	octave := 4
	down := make(map[byte]bool, engine.NumVoices)

	for {
		select {
		case <-sigCh:
			return
		case b, ok := <-host.events:
			if !ok {
				return
			}
			switch b {
			case 0x1b: // escape quits
				return
			case '=':
				patch := eng.Patch()
				patch.OutputScale = param.OutputScale(patch.OutputScale, true)
				eng.SetPatch(patch)
			case '-':
				patch := eng.Patch()
				patch.OutputScale = param.OutputScale(patch.OutputScale, false)
				eng.SetPatch(patch)
			case '[':
				octave = param.Octave(octave, false)
				patch := eng.Patch()
				patch.KeyboardTimescale = octaveScale(octave)
				eng.SetPatch(patch)
			case ']':
				octave = param.Octave(octave, true)
				patch := eng.Patch()
				patch.KeyboardTimescale = octaveScale(octave)
				eng.SetPatch(patch)
			default:
				for k, key := range voiceKeys {
					if key != b {
						continue
					}
					wasDown := down[b]
					down[b] = !wasDown
					eng.SetGate(k, !wasDown)
				}
			}
		}
	}
}

func octaveScale(octave int) float32 {
	shift := octave - 4
	scale := float32(1)
	for i := 0; i < shift; i++ {
		scale *= 2
	}
	for i := 0; i > shift; i-- {
		scale /= 2
	}
	return scale
}

// terminalInput reads raw stdin byte-by-byte and republishes it on a
// channel, grounded on terminal_host.go's TerminalHost but delivering
// bytes to a channel instead of an MMIO device.
type terminalInput struct {
	events       chan byte
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

func newTerminalInput() *terminalInput {
	return &terminalInput{
		events: make(chan byte, 16),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (h *terminalInput) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		close(h.done)
		close(h.events)
		return
	}
	h.oldTermState = oldState

	_ = syscall.SetNonblock(h.fd, true)

	go func() {
		defer close(h.done)
		defer close(h.events)
		buf := make([]byte, 1)
		for {
			select {
			case <-h.stopCh:
				return
			default:
			}
			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				h.events <- buf[0]
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
		}
	}()
}

func (h *terminalInput) Stop() {
	h.stopped.Do(func() { close(h.stopCh) })
	<-h.done
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}

// Package audio wires the engine's render loop to a platform audio output.
// Sink mirrors the teacher's AudioOutput/OtoPlayer split: one small
// interface, one build-tagged implementation per backend, each pulling
// interleaved 16-bit stereo PCM from a Renderer on demand.
package audio

// Renderer is the subset of *engine.Engine the audio package depends on,
// kept narrow so backends don't import internal/engine directly.
type Renderer interface {
	Render(buf []byte, count int)
}

// Sink is a platform audio output that pulls PCM from a Renderer.
type Sink interface {
	// SetRenderer installs the source the output callback reads from.
	SetRenderer(r Renderer)
	Start() error
	Stop() error
	Close() error
	IsStarted() bool
}

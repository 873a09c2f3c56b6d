// Package audiohost owns the oto.Context/oto.Player lifecycle around a
// realtime stream, adapted from audio_backend_oto.go's OtoPlayer: a
// mutex guards setup/teardown, while oto's own pull thread calls into
// the stream's Read method with no locking on the hot path.
package audiohost

import (
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player starts and stops a single continuous io.Reader-backed stream.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	mutex   sync.Mutex
	started bool
}

// Format describes the PCM layout oto expects for a given stream.
type Format = oto.Format

const (
	FormatFloat32LE     = oto.FormatFloat32LE
	FormatSignedInt16LE = oto.FormatSignedInt16LE
)

// NewPlayer opens an oto context for sampleRate/format and wraps r as its
// single mono player. r.Read is called from oto's own audio thread.
func NewPlayer(sampleRate int, format Format, r io.Reader) (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       format,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(r),
	}, nil
}

// Start begins playback. It is idempotent.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Stop halts playback without releasing the underlying player.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started {
		p.player.Pause()
		p.started = false
	}
}

// Close releases the player and its context. The Player must not be used
// afterward.
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player != nil {
		if err := p.player.Close(); err != nil {
			return err
		}
		p.player = nil
	}
	p.started = false
	return nil
}

// IsStarted reports whether playback is currently active.
func (p *Player) IsStarted() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.started
}

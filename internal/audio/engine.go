// Package audio plays dialogue voices and pickup sounds through beep.
package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/appengine-ltd/misplaced/internal/assets"
	"github.com/appengine-ltd/misplaced/internal/dialogue"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Engine decodes assets once, keeps them in memory and mixes every playing
// voice into a single speaker stream.
type Engine struct {
	mu          sync.Mutex
	catalog     assets.Catalog
	mixer       *beep.Mixer
	buffers     map[string]*beep.Buffer
	blip        *beep.Buffer
	voices      []*beep.Ctrl
	initialized bool
	log         *log.Logger
}

func NewEngine(catalog assets.Catalog, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		catalog: catalog,
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
		log:     logger,
	}
}

// Initialize opens the output device. Without it voices are mixed but
// nothing is heard.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.voices = nil
	e.initialized = true
	return nil
}

func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}

func (e *Engine) Register(ref string, buf *beep.Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffers[ref] = buf
}

// Play starts ref. Missing one-shots fall back to a short blip with a
// logged warning; missing loops are an error and stay silent.
func (e *Engine) Play(ref string, loop bool) (dialogue.Voice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	buf, err := e.buffer(ref)
	if err != nil {
		if loop {
			return nil, err
		}
		e.log.Printf("warning: %v; playing placeholder blip", err)
		buf = e.placeholder()
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	ctrl := &beep.Ctrl{Streamer: s}
	e.withMixer(func() { e.mixer.Add(ctrl) })
	if !e.initialized {
		e.voices = append(e.voices, ctrl)
	}
	return &voice{engine: e, ctrl: ctrl}, nil
}

func (e *Engine) buffer(ref string) (*beep.Buffer, error) {
	if buf, ok := e.buffers[ref]; ok {
		return buf, nil
	}
	path, ok := e.catalog.Path(ref)
	if !ok || !e.catalog.Exists(ref) {
		return nil, fmt.Errorf("%w: audio %q", dialogue.ErrMissingAsset, ref)
	}
	buf, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: audio %q: %v", dialogue.ErrMissingAsset, ref, err)
	}
	e.buffers[ref] = buf
	return buf, nil
}

func (e *Engine) placeholder() *beep.Buffer {
	if e.blip != nil {
		return e.blip
	}
	buf := beep.NewBuffer(format)
	tone, err := generators.SineTone(sampleRate, 880)
	if err == nil {
		buf.Append(beep.Take(sampleRate.N(80*time.Millisecond), tone))
	}
	e.blip = buf
	return buf
}

// withMixer runs fn with exclusive access to the mixer. The speaker reads
// the mixer from its own goroutine once initialized.
func (e *Engine) withMixer(fn func()) {
	if e.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		src      beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		streamer, src, err = vorbis.Decode(f)
	case ".wav":
		streamer, src, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if src.SampleRate != sampleRate {
		s = beep.Resample(4, src.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf, nil
}

type voice struct {
	engine *Engine
	ctrl   *beep.Ctrl
}

// Stop silences the voice; the speaker's mixer drops it on its next read.
func (v *voice) Stop() {
	e := v.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	e.withMixer(func() {
		v.ctrl.Paused = true
		v.ctrl.Streamer = nil
	})
	if !e.initialized {
		e.prune()
	}
}

// prune rebuilds the mixer without stopped voices. Without a speaker
// nothing reads the mixer, so stopped voices would otherwise pile up.
func (e *Engine) prune() {
	live := e.voices[:0]
	e.mixer.Clear()
	for _, c := range e.voices {
		if c.Streamer != nil {
			e.mixer.Add(c)
			live = append(live, c)
		}
	}
	clear(e.voices[len(live):])
	e.voices = live
}

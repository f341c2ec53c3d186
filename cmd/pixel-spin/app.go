package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lixenwraith/pixel-spin/audio"
	"github.com/lixenwraith/pixel-spin/config"
	"github.com/lixenwraith/pixel-spin/engine"
	"github.com/lixenwraith/pixel-spin/input"
	"github.com/lixenwraith/pixel-spin/question"
	"github.com/lixenwraith/pixel-spin/render"
	"github.com/lixenwraith/pixel-spin/source"
	"github.com/lixenwraith/pixel-spin/status"
)

// timerBuffer bounds pending timer callbacks; a cycle has at most two outstanding
const timerBuffer = 16

// app wires the spin machine, renderer, audio and input onto one loop goroutine
type app struct {
	cfg     *config.Config
	screen  tcell.Screen
	fetcher source.Fetcher

	sched   *engine.LoopScheduler
	pool    *question.Pool
	reel    *render.Reel
	sound   *audio.SoundManager
	machine *engine.Machine
	input   *input.Handler
	stats   *status.Registry

	session string
	last    question.Item
}

// countingSpinner records every accepted start
type countingSpinner struct {
	*engine.Machine
	stats *status.Registry
}

func (c countingSpinner) Start() bool {
	if !c.Machine.Start() {
		return false
	}
	c.stats.RecordSpin()
	return true
}

// newApp builds every component; the screen must already be initialised
func newApp(cfg *config.Config, screen tcell.Screen) (*app, error) {
	fetcher, err := source.New(cfg.Questions)
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return nil, errors.Wrap(err, "keymap")
		}
		keys = input.MergeKeyTable(keys, override)
	}

	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.SampleRate = cfg.Audio.SampleRate
	ac.SetVolumePercent(cfg.Audio.Volume)
	sound := audio.NewSoundManager(ac)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}
	sound.SetMuted(cfg.Muted)

	a := &app{
		cfg:     cfg,
		screen:  screen,
		fetcher: fetcher,
		sched:   engine.NewLoopScheduler(timerBuffer),
		pool:    question.NewPool(cfg.Filter(), cfg.Seed),
		reel:    render.NewReel(cfg.FPS, engine.NewMonotonicTimeProvider()),
		sound:   sound,
		stats:   status.NewRegistry(),
		session: uuid.NewString(),
	}
	a.machine = engine.NewMachine(a.pool, a.reel, sound, a.sched)
	a.machine.OnFinish = func(item question.Item) {
		a.stats.RecordSettle(item.Category)
		a.last = item
		log.Printf("settled on %q [%s]", item.Primary, item.Category)
	}
	a.input = input.NewHandler(input.NewMachine(keys), countingSpinner{a.machine, a.stats}, a.pool, sound)
	a.input.OnResize = screen.Sync
	return a, nil
}

// run drives the loop until quit or ctx is cancelled
func (a *app) run(ctx context.Context) error {
	defer a.shutdown()

	events := make(chan tcell.Event, 256)
	go a.pollEvents(events)

	loaded := source.Async(ctx, a.fetcher)

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok || !a.input.HandleEvent(ev) {
				return nil
			}

		case res := <-loaded:
			a.applyLoad(res)
			loaded = nil

		case fn := <-a.sched.Timers():
			fn()

		case <-ticker.C:
			a.frame()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalised
func (a *app) pollEvents(events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(events)

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// applyLoad hands a fetched deck to the pool; failures keep the placeholder
func (a *app) applyLoad(res source.Result) {
	if res.Err != nil {
		log.Printf("question load failed: %v", res.Err)
		return
	}
	a.pool.Load(res.Items)
	log.Printf("loaded %d questions", a.pool.Len())
}

// frame runs the scheduled tick then redraws
func (a *app) frame() {
	a.sched.RunFrame()
	a.reel.SetStatus(render.Status{
		Filter:         a.pool.Filter(),
		Muted:          a.sound.Muted(),
		AudioAvailable: a.sound.Available(),
		Spinning:       a.machine.Spinning(),
		Spins:          a.stats.Spins(),
	})
	a.reel.RenderFrame(a.screen)
}

func (a *app) shutdown() {
	if a.machine.Spinning() {
		a.stats.RecordAbort()
	}
	a.machine.Abort()
	log.Printf("session %s: %s", a.session, a.stats.Summary())
	a.sched.Stop()
	a.sound.Cleanup()
}

// summary is read after run returns
func (a *app) summary() sessionSummary {
	return sessionSummary{Session: a.session, Spins: a.stats.Spins(), Last: a.last}
}

package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ytget/animal-sounds/internal/lookup"
	"github.com/ytget/animal-sounds/internal/model"
)

// Renderer receives every state transition. Calls arrive on the goroutine the
// dispatcher runs continuations on.
type Renderer interface {
	RenderSoundList(model.SoundListState)
	RenderResult(model.ResultState)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for failure diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithContext sets the context passed to lookups
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// WithRunner sets how a blocking lookup is started. Defaults to a new goroutine.
func WithRunner(run func(func())) Option {
	return func(c *Controller) {
		c.run = run
	}
}

// WithDispatcher sets how a lookup continuation is scheduled, typically onto
// the UI thread. Defaults to calling it directly.
func WithDispatcher(dispatch func(func())) Option {
	return func(c *Controller) {
		c.dispatch = dispatch
	}
}

// Controller mediates between the two dropdowns, the lookup backend and the
// result region.
type Controller struct {
	lookup   lookup.Lookup
	view     Renderer
	logger   *slog.Logger
	ctx      context.Context
	run      func(func())
	dispatch func(func())

	mu sync.Mutex
	// soundSeq and submitSeq hold the token of the latest request of each
	// kind; responses carrying an older token are dropped.
	soundSeq  uint64
	submitSeq uint64
	sounds    model.SoundListState
	result    model.ResultState
}

// New creates a controller and renders the initial idle state
func New(l lookup.Lookup, view Renderer, opts ...Option) *Controller {
	c := &Controller{
		lookup:   l,
		view:     view,
		logger:   slog.Default(),
		ctx:      context.Background(),
		run:      func(f func()) { go f() },
		dispatch: func(f func()) { f() },
		sounds:   model.IdleSoundList(),
		result:   model.HiddenResult(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.view.RenderSoundList(c.sounds)
	c.view.RenderResult(c.result)
	return c
}

// SoundList returns the current sound list state
func (c *Controller) SoundList() model.SoundListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sounds
}

// Result returns the current result state
func (c *Controller) Result() model.ResultState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// OnAnimalChange handles a new value of the animal dropdown
func (c *Controller) OnAnimalChange(animal string) {
	c.mu.Lock()
	c.soundSeq++
	token := c.soundSeq
	// A call-for response for the previous selection must not reappear
	c.submitSeq++
	c.mu.Unlock()

	c.setResult(model.HiddenResult())

	if animal == "" {
		c.setSoundList(token, model.IdleSoundList())
		return
	}

	c.setSoundList(token, model.LoadingSoundList(animal))

	c.run(func() {
		sounds, err := c.lookup.GetSounds(c.ctx, animal)
		c.dispatch(func() {
			c.onSounds(token, animal, sounds, err)
		})
	})
}

// onSounds applies a completed sound lookup
func (c *Controller) onSounds(token uint64, animal string, sounds []string, err error) {
	if !c.isLatestSound(token) {
		c.logger.Debug("discarding stale sound list", "animal", animal)
		return
	}
	if err != nil {
		c.logger.Error("fetch sounds failed", "animal", animal, "error", err)
		c.setSoundList(token, model.ErrorSoundList(animal))
		return
	}
	c.setSoundList(token, model.LoadedSoundList(animal, sounds))
}

// OnSubmit handles a submission of the form
func (c *Controller) OnSubmit(animal, sound string) {
	token := c.nextSubmit()

	if animal == "" || sound == "" {
		c.ShowResult(MsgSelectBoth, model.ResultError)
		return
	}

	c.ShowResult(MsgLoading, model.ResultLoading)

	c.run(func() {
		callFor, err := c.lookup.GetCallFor(c.ctx, animal, sound)
		c.dispatch(func() {
			c.onCallFor(token, animal, sound, callFor, err)
		})
	})
}

// onCallFor applies a completed call-for lookup
func (c *Controller) onCallFor(token uint64, animal, sound, callFor string, err error) {
	if !c.isLatestSubmit(token) {
		c.logger.Debug("discarding stale call-for response", "animal", animal, "sound", sound)
		return
	}

	switch {
	case err != nil:
		c.logger.Error("get call-for failed", "animal", animal, "sound", sound, "error", err)
		c.ShowResult(MsgRequestFailed, model.ResultError)
	case callFor == "":
		c.ShowResult(MsgNoInformation, model.ResultError)
	default:
		c.ShowResult(FormatCallFor(animal, sound, callFor), model.ResultSuccess)
	}
}

// ShowResult replaces the result region content and makes it visible. Kinds
// other than error and loading are shown with the default style.
func (c *Controller) ShowResult(message string, kind model.ResultKind) {
	if kind != model.ResultError && kind != model.ResultLoading {
		kind = model.ResultSuccess
	}
	c.setResult(model.ResultState{Kind: kind, Message: message})
}

func (c *Controller) nextSubmit() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitSeq++
	return c.submitSeq
}

func (c *Controller) isLatestSound(token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return token == c.soundSeq
}

func (c *Controller) isLatestSubmit(token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return token == c.submitSeq
}

// setSoundList commits state if token is still the latest sound request
func (c *Controller) setSoundList(token uint64, state model.SoundListState) {
	c.mu.Lock()
	if token != c.soundSeq {
		c.mu.Unlock()
		return
	}
	c.sounds = state
	c.mu.Unlock()

	c.view.RenderSoundList(state)
}

func (c *Controller) setResult(state model.ResultState) {
	c.mu.Lock()
	c.result = state
	c.mu.Unlock()

	c.view.RenderResult(state)
}

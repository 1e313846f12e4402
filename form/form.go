// Package form collects the population parameters on a terminal screen before the simulation starts.
// Form is a pure state machine driven by HandleEvent and painted by Draw, so it runs against any tcell.Screen
package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/annihilation/config"
	"github.com/lixenwraith/annihilation/parameter"
	"github.com/lixenwraith/annihilation/vmath"
)

// ErrAborted is returned when the user leaves the form without submitting
var ErrAborted = errors.New("input aborted")

// Action tells the caller what to do after an event
type Action uint8

const (
	ActionNone Action = iota
	ActionRedraw
	ActionSubmit
	ActionAbort
)

// Focus targets in tab order
const (
	FocusRed = iota
	FocusBlue
	FocusChance
	FocusSubmit
	focusCount
)

// Form holds the field state and last validation error
type Form struct {
	Red    *TextField
	Blue   *TextField
	Chance int // Slider position 0..100
	Focus  int
	Err    error

	base   config.Params
	result config.Params
	style  Style
}

// New prefills every supplied count from cfg; non-population fields pass through to the result
func New(cfg config.Config) *Form {
	base := cfg.Simulation
	f := &Form{
		Red:    NewTextField("", parameter.FieldMaxLen),
		Blue:   NewTextField("", parameter.FieldMaxLen),
		Chance: int(math.Round(vmath.Clamp(base.Chance, 0, 1) * 100)),
		base:   base,
		style:  DefaultStyle(),
	}
	if cfg.Defined(config.KeyRed) || base.Red > 0 {
		f.Red.SetValue(strconv.Itoa(base.Red))
	}
	if cfg.Defined(config.KeyBlue) || base.Blue > 0 {
		f.Blue.SetValue(strconv.Itoa(base.Blue))
	}
	return f
}

// Params returns the submitted parameters, valid only after ActionSubmit
func (f *Form) Params() config.Params {
	return f.result
}

// FocusNext moves focus to the next control, wrapping around
func (f *Form) FocusNext() {
	f.Focus = (f.Focus + 1) % focusCount
}

// FocusPrev moves focus to the previous control, wrapping around
func (f *Form) FocusPrev() {
	f.Focus = (f.Focus - 1 + focusCount) % focusCount
}

// AdjustChance moves the slider by delta, clamped to 0..100
func (f *Form) AdjustChance(delta int) bool {
	next := max(0, min(100, f.Chance+delta))
	if next == f.Chance {
		return false
	}
	f.Chance = next
	return true
}

// HandleEvent applies one terminal event to the form
func (f *Form) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return ActionRedraw
	case *tcell.EventKey:
		return f.handleKey(ev)
	}
	return ActionNone
}

func (f *Form) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionAbort
	case tcell.KeyEnter:
		return f.submit()
	case tcell.KeyTab, tcell.KeyDown:
		f.FocusNext()
		return ActionRedraw
	case tcell.KeyBacktab, tcell.KeyUp:
		f.FocusPrev()
		return ActionRedraw
	}

	changed := false
	switch f.Focus {
	case FocusRed:
		changed = f.Red.HandleKey(ev)
	case FocusBlue:
		changed = f.Blue.HandleKey(ev)
	case FocusChance:
		changed = f.handleSlider(ev)
	}
	if changed {
		return ActionRedraw
	}
	return ActionNone
}

func (f *Form) handleSlider(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		return f.AdjustChance(-parameter.ChanceStep)
	case tcell.KeyRight:
		return f.AdjustChance(parameter.ChanceStep)
	case tcell.KeyPgDn:
		return f.AdjustChance(-parameter.ChanceStepLarge)
	case tcell.KeyPgUp:
		return f.AdjustChance(parameter.ChanceStepLarge)
	case tcell.KeyHome:
		return f.AdjustChance(-100)
	case tcell.KeyEnd:
		return f.AdjustChance(100)
	case tcell.KeyRune:
		switch ev.Rune() {
		case '-', 'h':
			return f.AdjustChance(-parameter.ChanceStep)
		case '+', '=', 'l':
			return f.AdjustChance(parameter.ChanceStep)
		}
	}
	return false
}

// submit validates the fields; on failure the error is kept for display and the form stays open
func (f *Form) submit() Action {
	params, err := f.parse()
	if err != nil {
		f.Err = err
		return ActionRedraw
	}
	f.Err = nil
	f.result = params
	return ActionSubmit
}

func (f *Form) parse() (config.Params, error) {
	params := f.base

	red, err := parseCount("red", f.Red.Value())
	if err != nil {
		f.Focus = FocusRed
		return config.Params{}, err
	}
	blue, err := parseCount("blue", f.Blue.Value())
	if err != nil {
		f.Focus = FocusBlue
		return config.Params{}, err
	}

	params.Red = red
	params.Blue = blue
	params.Chance = float64(f.Chance) / 100
	if err := params.Validate(); err != nil {
		return config.Params{}, err
	}
	return params, nil
}

func parseCount(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s count is required", config.ErrInvalidParams, name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s count %q is not a whole number", config.ErrInvalidParams, name, s)
	}
	return n, nil
}

// Run shows the form on screen until it is submitted or aborted
func Run(screen tcell.Screen, cfg config.Config) (config.Params, error) {
	f := New(cfg)
	f.Draw(screen)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized underneath us
			return config.Params{}, ErrAborted
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}

		switch f.HandleEvent(ev) {
		case ActionSubmit:
			screen.HideCursor()
			return f.Params(), nil
		case ActionAbort:
			screen.HideCursor()
			return config.Params{}, ErrAborted
		case ActionRedraw:
			f.Draw(screen)
		}
	}
}

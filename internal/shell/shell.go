// Package shell drives the address form: it resolves the extension once,
// then turns every save request into validate, write and report steps.
// It knows nothing about how dialogs or prompts are drawn.
package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/dalseo/xticket-ip/internal/extension"
)

// State is where the form is in its lifecycle.
type State int

const (
	Initializing State = iota
	Ready
	Validating
	Writing
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Validating:
		return "validating"
	case Writing:
		return "writing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Presenter shows the dialogs of the form.
type Presenter interface {
	Fatal(err error)
	Warn(input string)
	Error(err error)
	Success(loc extension.Location, ip string)
}

// Prompter reads operator input.
type Prompter interface {
	// ReadAddress shows the address field pre-filled with value.
	ReadAddress(ctx context.Context, value string) (string, error)
	// KeepOpen asks whether the form should stay open after a save.
	KeepOpen(ctx context.Context) (bool, error)
}

// Configurer writes a validated address into the extension.
type Configurer interface {
	Location() extension.Location
	Apply(ip string) error
}

// ErrClosed is returned by a Prompter when the operator closes the form.
var ErrClosed = errors.New("form closed")

// Outcome is the result of one save action.
type Outcome struct {
	Input string
	Err   error
	State State
}

// OK reports whether all three files were written.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Shell is the form state machine.
type Shell struct {
	cfg       Configurer
	presenter Presenter
	state     State
	field     string
	onSaved   []func(ip string)
}

// New resolves the extension directory and moves to Ready. When resolve fails
// the fatal dialog is shown, the shell is Terminated and the error returned.
func New(resolve func() (extension.Location, error), p Presenter) (*Shell, error) {
	loc, err := resolve()
	if err != nil {
		p.Fatal(err)
		return &Shell{presenter: p, state: Terminated}, err
	}
	return NewWithConfigurer(extension.NewConfigurator(loc), p), nil
}

// NewWithConfigurer returns a Ready shell around an already resolved Configurer.
func NewWithConfigurer(cfg Configurer, p Presenter) *Shell {
	return &Shell{
		cfg:       cfg,
		presenter: p,
		state:     Ready,
		field:     extension.DefaultIPPrefix,
	}
}

// State returns the current state.
func (s *Shell) State() State {
	return s.state
}

// Location returns the extension directory the shell writes to.
func (s *Shell) Location() extension.Location {
	if s.cfg == nil {
		return extension.Location{}
	}
	return s.cfg.Location()
}

// Field returns the text currently in the address field.
func (s *Shell) Field() string {
	return s.field
}

// OnSaved registers fn to run after every successful save.
func (s *Shell) OnSaved(fn func(ip string)) {
	s.onSaved = append(s.onSaved, fn)
}

// Save runs one save action on input and returns to Ready.
func (s *Shell) Save(input string) Outcome {
	if s.state != Ready {
		return Outcome{Input: input, Err: errNotReady(s.state), State: s.state}
	}
	s.field = input

	s.state = Validating
	ip := strings.TrimSpace(input)
	if err := extension.ValidateIP(ip); err != nil {
		s.presenter.Warn(ip)
		s.state = Ready
		return Outcome{Input: ip, Err: err, State: s.state}
	}

	s.state = Writing
	if err := s.cfg.Apply(ip); err != nil {
		s.presenter.Error(err)
		s.state = Ready
		return Outcome{Input: ip, Err: err, State: s.state}
	}

	s.presenter.Success(s.cfg.Location(), ip)
	s.state = Ready
	for _, fn := range s.onSaved {
		fn(ip)
	}
	return Outcome{Input: ip, State: s.state}
}

// Run keeps the form open until the operator closes it or ctx is done.
func (s *Shell) Run(ctx context.Context, prompt Prompter) error {
	if s.state == Terminated {
		return errNotReady(s.state)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := prompt.ReadAddress(ctx, s.field)
		if errors.Is(err, ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		// A rejected address goes straight back to the field.
		if outcome := s.Save(input); extension.IsKind(outcome.Err, extension.KindInvalidIPFormat) {
			continue
		}

		again, err := prompt.KeepOpen(ctx)
		if errors.Is(err, ErrClosed) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

type stateError struct {
	state State
}

func (e stateError) Error() string {
	return "form is " + e.state.String()
}

func errNotReady(s State) error {
	return stateError{state: s}
}

// Package widget holds the view state of the password generator widget.
//
// A Widget owns one State value. Every user interaction builds a new State
// from the previous one and swaps it in whole, so a State read by the page
// always pairs a password with the strength computed from it.
package widget

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/crypto"
)

// DefaultCopiedResetDelay is how long the copied indicator stays on.
const DefaultCopiedResetDelay = 2 * time.Second

var ErrClosed = errors.New("widget is closed")

// State is an immutable snapshot of the widget.
type State struct {
	Password  string
	Length    int
	Selection crypto.Selection
	Strength  int
	Rating    crypto.Rating
	Copied    bool
	// Revision increases with every committed change.
	Revision uint64
}

// Config configures a Widget. Zero values select the defaults.
type Config struct {
	MaxLength        int
	CopiedResetDelay time.Duration
	Source           crypto.Source
	Clipboard        clipboard.Writer
	Logger           *slog.Logger
}

// Widget is the password generator widget. Safe for concurrent use.
type Widget struct {
	maxLength  int
	resetDelay time.Duration
	source     crypto.Source
	clip       clipboard.Writer
	logger     *slog.Logger

	// lifetime is cancelled by Close and parents every scheduled reset.
	lifetime context.Context
	shutdown context.CancelFunc
	tasks    sync.WaitGroup

	mu          sync.Mutex
	state       State
	closed      bool
	copies      uint64
	cancelReset context.CancelFunc
}

// New creates a widget with lowercase and digits enabled at length 8 and
// generates its first password.
func New(cfg Config) (*Widget, error) {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = crypto.MaxLength
	}
	if cfg.CopiedResetDelay <= 0 {
		cfg.CopiedResetDelay = DefaultCopiedResetDelay
	}
	if cfg.Source == nil {
		cfg.Source = crypto.CryptoSource{}
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.Browser{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	lifetime, shutdown := context.WithCancel(context.Background())
	w := &Widget{
		maxLength:  cfg.MaxLength,
		resetDelay: cfg.CopiedResetDelay,
		source:     cfg.Source,
		clip:       cfg.Clipboard,
		logger:     cfg.Logger,
		lifetime:   lifetime,
		shutdown:   shutdown,
	}

	initial := State{
		Length:    crypto.DefaultLength,
		Selection: crypto.DefaultSelection(),
	}
	next, err := w.regenerate(initial)
	if err != nil {
		shutdown()
		return nil, err
	}
	w.state = next

	return w, nil
}

// MaxLength returns the upper bound of the length slider.
func (w *Widget) MaxLength() int {
	return w.maxLength
}

// State returns the current snapshot.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// ToggleClass flips one character class and regenerates. When the new
// options are invalid the toggle is kept, the password and strength are
// left as they were, and the validation error is returned.
func (w *Widget) ToggleClass(c crypto.Class) (State, error) {
	return w.update(func(s State) State {
		s.Selection = s.Selection.Toggle(c)
		return s
	})
}

// SetLength moves the length slider and regenerates, with the same error
// behavior as ToggleClass.
func (w *Widget) SetLength(length int) (State, error) {
	return w.update(func(s State) State {
		s.Length = length
		return s
	})
}

// Regenerate draws a new password with the current options.
func (w *Widget) Regenerate() (State, error) {
	return w.update(func(s State) State { return s })
}

// Copy writes the current password to the clipboard and turns the copied
// indicator on until the reset delay passes. A later copy restarts the delay.
// The indicator is left off when the password is replaced during the write.
func (w *Widget) Copy() (State, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return State{}, ErrClosed
	}
	password := w.state.Password
	w.mu.Unlock()

	if err := w.clip.WriteText(password); err != nil {
		return w.State(), err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return State{}, ErrClosed
	}
	// The password changed while the clipboard was written.
	if w.state.Password != password {
		return w.state, nil
	}

	if w.cancelReset != nil {
		w.cancelReset()
	}
	w.copies++
	ctx, cancel := context.WithCancel(w.lifetime)
	w.cancelReset = cancel
	w.scheduleReset(ctx, w.copies)

	w.state.Copied = true
	w.state.Revision++
	return w.state, nil
}

// Close cancels any pending indicator reset and waits for it to stop.
// Operations after Close return ErrClosed.
func (w *Widget) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	w.shutdown()
	w.tasks.Wait()
}

func (w *Widget) scheduleReset(ctx context.Context, seq uint64) {
	w.tasks.Add(1)
	go func() {
		defer w.tasks.Done()

		timer := time.NewTimer(w.resetDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		// A newer copy owns the indicator.
		if w.closed || w.copies != seq {
			return
		}
		w.state.Copied = false
		w.state.Revision++
		w.cancelReset = nil
		w.logger.Debug("copied indicator reset", "revision", w.state.Revision)
	}()
}

// update applies change to the options of the current state and regenerates.
func (w *Widget) update(change func(State) State) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return State{}, ErrClosed
	}

	next := change(w.state)
	generated, err := w.regenerate(next)
	if err != nil {
		if !isValidationError(err) {
			return w.state, err
		}
		w.logger.Debug("generation rejected", "error", err, "length", next.Length)
		next.Revision++
		w.state = next
		return w.state, err
	}

	w.state = generated
	return w.state, nil
}

// regenerate returns s with a fresh password and the strength of that password.
func (w *Widget) regenerate(s State) (State, error) {
	password, err := crypto.Generate(crypto.GeneratorOptions{
		Selection: s.Selection,
		Length:    s.Length,
		MaxLength: w.maxLength,
		Source:    w.source,
	})
	if err != nil {
		return s, err
	}

	s.Password = password
	s.Strength = crypto.Score(password)
	s.Rating = crypto.Classify(s.Strength)
	s.Revision++
	return s, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrNoClassSelected) || errors.Is(err, crypto.ErrInvalidLength)
}

package locality

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// InvalidMessage is shown after an answer that matches no locality.
const InvalidMessage = "Localidad no válida. Inténtelo de nuevo."

var (
	// ErrNoInput is returned when the prompter runs out of input before a
	// valid name was given.
	ErrNoInput = errors.New("locality: no more input")

	// ErrTooManyAttempts is returned when MaxAttempts answers were all invalid.
	ErrTooManyAttempts = errors.New("locality: too many invalid attempts")
)

// Prompter asks the user a question and shows warnings.
//
// Ask returns io.EOF (possibly wrapped) when no further answers can be read.
type Prompter interface {
	Ask(ctx context.Context, message string) (string, error)
	Warn(message string)
}

// Option configures a Resolver.
type Option func(*Options)

// Options holds Resolver parameters.
type Options struct {
	// MaxAttempts bounds the number of answers read; 0 means unlimited.
	MaxAttempts int

	// Invalid is the warning shown after an unknown name.
	Invalid string
}

// DefaultOptions returns unlimited attempts and InvalidMessage.
func DefaultOptions() Options {
	return Options{MaxAttempts: 0, Invalid: InvalidMessage}
}

// WithMaxAttempts bounds the number of answers; n ≤ 0 means unlimited.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxAttempts = n
	}
}

// WithInvalidMessage replaces the warning shown after an unknown name.
func WithInvalidMessage(msg string) Option {
	return func(o *Options) {
		if msg != "" {
			o.Invalid = msg
		}
	}
}

// Resolver validates answers against an Index.
type Resolver struct {
	index *Index
	opts  Options
}

// NewResolver returns a Resolver over idx.
func NewResolver(idx *Index, opts ...Option) *Resolver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver{index: idx, opts: o}
}

// Index returns the underlying name index.
func (r *Resolver) Index() *Index { return r.index }

// Resolve asks p with message until the answer names an indexed locality
// and returns its canonical name. Each miss shows the invalid warning and
// asks again.
//
// Errors: ErrNoInput on EOF, ErrTooManyAttempts once MaxAttempts answers
// were rejected, ctx.Err() on cancellation, or any other Ask error.
func (r *Resolver) Resolve(ctx context.Context, p Prompter, message string) (string, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		answer, err := p.Ask(ctx, message)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %s", ErrNoInput, message)
			}
			return "", err
		}

		if name, ok := r.index.Lookup(answer); ok {
			return name, nil
		}
		p.Warn(r.opts.Invalid)

		if r.opts.MaxAttempts > 0 && attempt >= r.opts.MaxAttempts {
			return "", fmt.Errorf("%w: %d", ErrTooManyAttempts, attempt)
		}
	}
}

// Check resolves a single non-interactive value, such as a flag.
func (r *Resolver) Check(input string) (string, error) {
	if name, ok := r.index.Lookup(input); ok {
		return name, nil
	}

	return "", fmt.Errorf("locality: unknown locality %q", input)
}

// Package examples holds the demonstration scenarios of pylist, registered
// by name, and the runner that prints them.
package examples

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/funvibe/pylist/internal/config"
)

// Example is one named scenario. Enabled is its default when neither the
// command line nor the configuration selects it.
type Example struct {
	Name    string
	Enabled bool
	Run     func(env *Env) error
}

var registry []Example

// Register adds a scenario. Names must be unique.
func Register(name string, enabled bool, run func(env *Env) error) {
	if _, ok := Lookup(name); ok {
		panic(fmt.Sprintf("examples: duplicate example %q", name))
	}
	registry = append(registry, Example{Name: name, Enabled: enabled, Run: run})
}

// All returns every registered scenario in registration order.
func All() []Example {
	return slices.Clone(registry)
}

func Lookup(name string) (Example, bool) {
	for _, ex := range registry {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}

// Select returns the scenarios called names, or, when names is empty, the
// ones enabled by cfg.
func Select(cfg *config.Config, names []string) ([]Example, error) {
	if len(names) > 0 {
		out := make([]Example, 0, len(names))
		for _, name := range names {
			ex, ok := Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown example %q", name)
			}
			out = append(out, ex)
		}
		return out, nil
	}

	var out []Example
	for _, ex := range registry {
		if cfg.Enabled(ex.Name, ex.Enabled) {
			out = append(out, ex)
		}
	}
	return out, nil
}

// Env is what a scenario prints to and draws random choices from.
type Env struct {
	out  io.Writer
	rand *rand.Rand
	err  error
}

func NewEnv(out io.Writer, seed uint64) *Env {
	return &Env{out: out, rand: rand.New(rand.NewPCG(seed, seed))}
}

// Println writes its operands separated by spaces, each in its own
// printed form. The first write error is kept and reported by Err.
func (e *Env) Println(a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.out, a...)
}

func (e *Env) Err() error {
	return e.err
}

// Runner prints scenarios one after another, each under a heading and
// followed by a blank line.
type Runner struct {
	Out   io.Writer
	Color bool
	Seed  uint64
}

func (r *Runner) Run(examples []Example) error {
	for i, ex := range examples {
		if _, err := fmt.Fprintln(r.Out, r.heading(ex.Name)); err != nil {
			return err
		}
		env := NewEnv(r.Out, r.Seed+uint64(i))
		if err := ex.Run(env); err != nil {
			return fmt.Errorf("example %s: %w", ex.Name, err)
		}
		if err := env.Err(); err != nil {
			return fmt.Errorf("example %s: %w", ex.Name, err)
		}
		if _, err := fmt.Fprintln(r.Out); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) heading(name string) string {
	h := config.HeadingPrefix + name
	if r.Color {
		return bold(cyan(h))
	}
	return h
}

package host

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/particlefield/field"
)

// scriptBudget bounds one frame's script run.
const scriptBudget = 50 * time.Millisecond

// AutoScroll drives scroll progress from a tengo script instead of user input. The
// script sees `frame`, `width`, `height` and the previous `progress`, and assigns the
// new value to `progress`.
type AutoScroll struct {
	name     string
	compiled *tengo.Compiled
	frame    int
	progress float64
	failed   bool
	budget   time.Duration
}

func NewAutoScroll(name string, src []byte) (*AutoScroll, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("width", 0.0)
	_ = script.Add("height", 0.0)
	_ = script.Add("progress", 0.0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autoscroll: compile %s: %w", name, err)
	}
	return &AutoScroll{name: name, compiled: compiled, budget: scriptBudget}, nil
}

// Eval runs the script for one frame and returns the progress it produced.
func (a *AutoScroll) Eval(frame int, width, height float64) (float64, error) {
	if a == nil || a.compiled == nil {
		return 0, fmt.Errorf("autoscroll: nil script")
	}
	vars := []struct {
		name  string
		value any
	}{
		{"frame", frame},
		{"width", width},
		{"height", height},
		{"progress", a.progress},
	}
	for _, v := range vars {
		if err := a.compiled.Set(v.name, v.value); err != nil {
			return 0, fmt.Errorf("autoscroll: set %s: %w", v.name, err)
		}
	}
	// RunContext recovers VM panics and aborts scripts that overrun the budget.
	ctx, cancel := context.WithTimeout(context.Background(), a.budget)
	defer cancel()
	if err := a.compiled.RunContext(ctx); err != nil {
		return 0, fmt.Errorf("autoscroll: run %s: %w", a.name, err)
	}
	a.progress = a.compiled.Get("progress").Float()
	return a.progress, nil
}

// Step evaluates the next frame and feeds the result to f. A failing script is
// reported once and then left alone.
func (a *AutoScroll) Step(f *field.Field) {
	if a == nil || a.failed {
		return
	}
	w, h := f.Size()
	p, err := a.Eval(a.frame, w, h)
	a.frame++
	if err != nil {
		log.Printf("%v", err)
		a.failed = true
		return
	}
	f.SetScrollProgress(p)
}

// Failed reports whether the script stopped after a runtime error.
func (a *AutoScroll) Failed() bool {
	return a != nil && a.failed
}

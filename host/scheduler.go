package host

import "github.com/milk9111/particlefield/field"

// Step is one stage of a host frame.
type Step interface {
	Step(f *field.Field)
}

// StepFunc adapts a function to Step.
type StepFunc func(f *field.Field)

func (fn StepFunc) Step(f *field.Field) {
	fn(f)
}

// Scheduler runs steps in insertion order once per frame.
type Scheduler struct {
	steps []Step
}

func NewScheduler(steps ...Step) *Scheduler {
	copied := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{steps: copied}
}

func (s *Scheduler) Run(f *field.Field) {
	for _, step := range s.steps {
		step.Step(f)
	}
}

// Update is the step that advances the field's simulation.
var Update Step = StepFunc(func(f *field.Field) { f.Update() })

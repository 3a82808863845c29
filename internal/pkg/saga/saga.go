package saga

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one unit of a multi-step workflow. Run performs the step;
// Compensate undoes it when a later step fails. Compensate may be nil for
// steps with no side effect to undo.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga executes steps in order. If a step fails, the compensations of all
// previously completed steps run in reverse order and the step's error is
// returned. Compensation failures are logged, not returned: the original
// failure is what the caller needs to see.
type Saga struct {
	name  string
	steps []Step
}

func New(name string) *Saga {
	return &Saga{name: name}
}

// AddStep appends a step to the saga.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute runs all steps in order, compensating on failure.
func (s *Saga) Execute(ctx context.Context) error {
	completed := make([]Step, 0, len(s.steps))

	for _, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			s.rollback(ctx, completed)
			return fmt.Errorf("saga %s: step %s: %w", s.name, step.Name, err)
		}
		completed = append(completed, step)
	}

	return nil
}

func (s *Saga) rollback(ctx context.Context, completed []Step) {
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			slog.Error("saga compensation failed",
				"saga", s.name,
				"step", step.Name,
				"error", err,
			)
		}
	}
}

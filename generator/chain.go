package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// StepFunc produces the next context from the previous one.
type StepFunc func(ctx context.Context, pc PipelineContext) (PipelineContext, error)

// Step is a named stage of a Chain.
type Step struct {
	Name string
	Run  StepFunc
}

// Chain runs its steps strictly in order; the first error aborts the run.
type Chain struct {
	Name   string
	Steps  []Step
	Logger *log.Logger
	// Now is used for step records; tests may pin it.
	Now func() time.Time
}

// Run executes every step and returns the final context.
func (c *Chain) Run(ctx context.Context, pc PipelineContext) (PipelineContext, error) {
	if len(c.Steps) == 0 {
		return pc, errors.New("chain has no steps")
	}
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}

	for i, step := range c.Steps {
		if err := ctx.Err(); err != nil {
			return pc, err
		}
		logger.Printf("[chain] %s run=%s step %d/%d %s", c.Name, pc.RunID, i+1, len(c.Steps), step.Name)
		next, err := step.Run(ctx, pc)
		if err != nil {
			return pc, fmt.Errorf("%s step %q: %w", c.Name, step.Name, err)
		}
		pc = next.withStep(step.Name, now())
	}
	return pc, nil
}

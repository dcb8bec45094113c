package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"ptplan/ai"
	"ptplan/intake"
	"ptplan/plan"
)

const (
	introLine        = "I'm going to make you a physical therapy plan."
	saveQuestion     = "Would you like to save your results? Enter Y or N: "
	directionsFirst  = "Would you like specific directions on how to do one of your exercises? Enter Y or N: "
	directionsAgain  = "Would you like to search for directions for another exercise? Enter Y or N: "
	exerciseQuestion = "Which exercise would you like directions for? "
	goodbyeLine      = "Good bye!"
)

// PlanSession runs one patient through intake, plan generation, saving and
// exercise directions, in that order.
type PlanSession struct {
	completer  ai.Completer
	collector  *intake.Collector
	out        io.Writer
	outputPath string
	progress   *Progress
	logger     *zap.Logger
}

func NewPlanSession(
	completer ai.Completer,
	collector *intake.Collector,
	out io.Writer,
	outputPath string,
	progress *Progress,
	logger *zap.Logger,
) *PlanSession {
	return &PlanSession{
		completer:  completer,
		collector:  collector,
		out:        out,
		outputPath: outputPath,
		progress:   progress,
		logger:     logger,
	}
}

func (self *PlanSession) Run(ctx context.Context) error {
	fmt.Fprintln(self.out, introLine)

	request, err := self.collector.Request()
	if err != nil {
		return fmt.Errorf("intake failed: %w", err)
	}

	fmt.Fprint(self.out, plan.Summary(request))
	fmt.Fprintln(self.out)

	result, err := self.GeneratePlan(ctx, request)
	if err != nil {
		return err
	}

	fmt.Fprintln(self.out)
	fmt.Fprintln(self.out, result)
	fmt.Fprintln(self.out)

	if err := self.SavePlan(result); err != nil {
		return err
	}
	fmt.Fprintln(self.out)

	return self.ExerciseDirections(ctx)
}

func (self *PlanSession) GeneratePlan(ctx context.Context, request plan.Request) (string, error) {
	prompt := request.Prompt()
	self.logger.Debug("requesting plan", zap.String("prompt", prompt), zap.Int("weeks", request.Weeks))

	result, err := self.complete(ctx, "Building your physical therapy plan...", prompt, ai.PlanSampling)
	if err != nil {
		return "", fmt.Errorf("plan generation failed: %w", err)
	}
	return result, nil
}

// SavePlan asks before overwriting the output file; only a literal "N" declines.
func (self *PlanSession) SavePlan(result string) error {
	answer, err := self.collector.Ask(saveQuestion)
	if err != nil {
		return err
	}

	saved, err := plan.SaveIfConfirmed(answer, self.outputPath, result)
	if err != nil {
		return err
	}
	if saved {
		self.logger.Info("plan saved", zap.String("path", self.outputPath), zap.Int("bytes", len(result)))
	}
	return nil
}

// ExerciseDirections keeps answering exercise questions until the patient says "N".
func (self *PlanSession) ExerciseDirections(ctx context.Context) error {
	answer, err := self.collector.Ask(directionsFirst)
	if err != nil {
		return err
	}

	for answer != plan.Decline {
		exercise, err := self.askExercise()
		if err != nil {
			return err
		}

		directions, err := self.complete(ctx, fmt.Sprintf("Looking up %s...", exercise), plan.DirectionsPrompt(exercise), ai.DirectionsSampling)
		if err != nil {
			return fmt.Errorf("directions for %q failed: %w", exercise, err)
		}
		fmt.Fprintln(self.out, directions)

		answer, err = self.collector.Ask(directionsAgain)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(self.out, goodbyeLine)
	return nil
}

func (self *PlanSession) askExercise() (string, error) {
	for {
		exercise, err := self.collector.Ask(exerciseQuestion)
		if err != nil {
			return "", err
		}
		if exercise != "" {
			return exercise, nil
		}
	}
}

func (self *PlanSession) complete(ctx context.Context, status string, prompt string, params ai.Sampling) (string, error) {
	defer self.progress.Clear()
	self.progress.Update(status)

	startTime := time.Now()
	result, err := self.completer.Complete(ctx, prompt, params)
	if err != nil {
		return "", err
	}

	self.logger.Debug("completion received",
		zap.Int("max_tokens", params.MaxTokens),
		zap.Int("chars", len(result)),
		zap.Duration("elapsed", time.Since(startTime).Round(time.Millisecond)),
	)
	return result, nil
}

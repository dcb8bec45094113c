package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"ptplan/plan"
)

const (
	weeksQuestion       = "Tell me the number of weeks you plan to participate in physical therapy (1 - 8): "
	weeksRetry          = "Invalid input. Please enter a whole number between 1 and 8: "
	painQuestion        = "Tell me the primary area of pain: "
	limitationsQuestion = "Tell me one activity you are physically limited from performing: "
	goalsQuestion       = "Tell me one goal you would like to achieve through physical therapy: "
)

// Collector asks questions on out and reads one answer per line from in.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints question and returns the next line without its line terminator.
// io.EOF is returned only when the input is exhausted before any text was read.
func (c *Collector) Ask(question string) (string, error) {
	fmt.Fprint(c.out, question)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Weeks keeps asking until the answer is blank or a whole number from 1 to 8.
func (c *Collector) Weeks() (int, error) {
	answer, err := c.Ask(weeksQuestion)
	for {
		if err != nil {
			return 0, err
		}

		weeks, parseErr := plan.ParseWeeks(answer)
		if parseErr == nil {
			return weeks, nil
		}
		answer, err = c.Ask(weeksRetry)
	}
}

// PainArea keeps asking until the answer is blank or one of plan.PainAreas.
func (c *Collector) PainArea() (string, error) {
	answer, err := c.Ask(painQuestion)
	for {
		if err != nil {
			return "", err
		}

		area, parseErr := plan.ParsePainArea(answer)
		if parseErr == nil {
			return area, nil
		}
		answer, err = c.Ask(painRetry())
	}
}

// Request collects every field of a plan request in order.
func (c *Collector) Request() (plan.Request, error) {
	weeks, err := c.Weeks()
	if err != nil {
		return plan.Request{}, err
	}

	pain, err := c.PainArea()
	if err != nil {
		return plan.Request{}, err
	}

	limitations, err := c.Ask(limitationsQuestion)
	if err != nil {
		return plan.Request{}, err
	}

	goals, err := c.Ask(goalsQuestion)
	if err != nil {
		return plan.Request{}, err
	}

	return plan.Request{
		Weeks:       weeks,
		PainArea:    pain,
		Limitations: limitations,
		Goals:       goals,
	}, nil
}

func painRetry() string {
	return fmt.Sprintf(
		"Invalid input. Please enter the primary area of pain, such as %s: ",
		strings.Join(plan.PainAreas, ", "),
	)
}

package plan

import (
	"fmt"
	"strings"
)

// Prompt renders the request as the plan prompt. Empty fields drop their clause.
func (r Request) Prompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d week physical therapy plan", r.Weeks)
	if r.PainArea != "" {
		fmt.Fprintf(&b, " for %s pain", r.PainArea)
	}
	if r.Limitations != "" {
		fmt.Fprintf(&b, ", %s limitations", r.Limitations)
	}
	if r.Goals != "" {
		fmt.Fprintf(&b, ", with a %s goal", r.Goals)
	}
	b.WriteString(". Include exercises.")

	return b.String()
}

func DirectionsPrompt(exercise string) string {
	return fmt.Sprintf("Directions on how to perform %s.", exercise)
}

// Summary echoes the request back to the patient before the plan is generated.
func Summary(r Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "We will make you a %d week physical therapy plan.\n", r.Weeks)
	if r.PainArea != "" {
		fmt.Fprintf(&b, "Your plan will focus on alleviating your %s pain.\n", r.PainArea)
	}
	if r.Limitations != "" {
		fmt.Fprintf(&b, "Your plan will help you work toward reducing your limitations with %s.\n", r.Limitations)
	}
	if r.Goals != "" {
		fmt.Fprintf(&b, "Your plan will help you work toward achieving your %s goal.\n", r.Goals)
	}

	return b.String()
}

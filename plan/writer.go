package plan

import (
	"fmt"
	"os"
)

const (
	DefaultOutputFile = "my_PT_plan.txt"
	Decline           = "N"
)

// SaveIfConfirmed overwrites path with text unless answer is exactly Decline.
// It reports whether the file was written.
func SaveIfConfirmed(answer string, path string, text string) (bool, error) {
	if answer == Decline {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return false, fmt.Errorf("failed to save plan: %w", err)
	}
	return true, nil
}

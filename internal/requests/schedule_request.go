package requests

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidProcessCount = errors.New("invalid process count")

type SimulationRequest struct {
	ProcessCount int   `json:"process_count"`
	Seed         int64 `json:"seed"`
}

// Validate checks the process count against the configured upper bound.
// A maxCount of 0 disables the bound.
func (r SimulationRequest) Validate(maxCount int) error {
	return ValidateProcessCount(r.ProcessCount, maxCount)
}

// ParseProcessCount parses a process count typed on the terminal.
func ParseProcessCount(input string, maxCount int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidProcessCount, strings.TrimSpace(input))
	}
	if err := ValidateProcessCount(n, maxCount); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateProcessCount rejects non-positive counts and counts above
// maxCount. A maxCount of 0 disables the bound.
func ValidateProcessCount(n int, maxCount int) error {
	if n <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidProcessCount, n)
	}
	if maxCount > 0 && n > maxCount {
		return fmt.Errorf("%w: at most %d processes, got %d", ErrInvalidProcessCount, maxCount, n)
	}
	return nil
}

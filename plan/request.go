package plan

import (
	"errors"
	"strconv"
	"strings"
)

const (
	MinWeeks     = 1
	MaxWeeks     = 8
	DefaultWeeks = 6
)

var (
	ErrInvalidWeeks    = errors.New("weeks must be a whole number between 1 and 8")
	ErrInvalidPainArea = errors.New("unknown pain area")
)

// PainAreas lists the body areas a plan can focus on.
var PainAreas = []string{
	"ankle",
	"arm",
	"back",
	"elbow",
	"foot",
	"hand",
	"head",
	"hip",
	"knee",
	"leg",
	"neck",
	"shoulder",
}

// Request holds what the patient told us. Fields other than Weeks may be empty.
type Request struct {
	Weeks       int
	PainArea    string
	Limitations string
	Goals       string
}

// ParseWeeks accepts a blank answer (DefaultWeeks) or a plain number in [MinWeeks, MaxWeeks].
func ParseWeeks(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultWeeks, nil
	}

	// ParseUint rejects signs, so "+3" and "-3" fail here like any other non-digit.
	weeks, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return 0, ErrInvalidWeeks
	}
	if weeks < MinWeeks || weeks > MaxWeeks {
		return 0, ErrInvalidWeeks
	}
	return int(weeks), nil
}

// ParsePainArea returns the input unchanged when it is blank or names one of PainAreas,
// ignoring case.
func ParsePainArea(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if !IsPainArea(input) {
		return "", ErrInvalidPainArea
	}
	return input, nil
}

func IsPainArea(area string) bool {
	area = strings.ToLower(area)
	for _, known := range PainAreas {
		if area == known {
			return true
		}
	}
	return false
}

package beach

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrUnparsableSlope = errors.New("unparsable slope")
	ErrZeroSlope       = errors.New("zero slope term")

	slopePattern = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*$`)
)

// Slope is a beach face ratio written as "rise/run", e.g. "1/20".
type Slope struct {
	Rise int
	Run  int
}

// ParseSlope accepts only the form `integer "/" integer`. Both terms must be
// non-zero.
func ParseSlope(s string) (Slope, error) {
	m := slopePattern.FindStringSubmatch(s)
	if m == nil {
		return Slope{}, fmt.Errorf("%w: %q", ErrUnparsableSlope, s)
	}

	rise, err := strconv.Atoi(m[1])
	if err != nil {
		return Slope{}, fmt.Errorf("%w: %q: %w", ErrUnparsableSlope, s, err)
	}
	run, err := strconv.Atoi(m[2])
	if err != nil {
		return Slope{}, fmt.Errorf("%w: %q: %w", ErrUnparsableSlope, s, err)
	}

	if rise == 0 || run == 0 {
		return Slope{}, fmt.Errorf("%w: %q", ErrZeroSlope, s)
	}

	return Slope{Rise: rise, Run: run}, nil
}

// Value is rise over run.
func (s Slope) Value() float64 {
	return float64(s.Rise) / float64(s.Run)
}

// Inverse is the "1:x" chart coordinate, run over rise.
func (s Slope) Inverse() float64 {
	return float64(s.Run) / float64(s.Rise)
}

func (s Slope) String() string {
	return fmt.Sprintf("%d/%d", s.Rise, s.Run)
}

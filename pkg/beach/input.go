package beach

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxWave    = 4
	MaxBreaker = 2
	MaxFine    = 2
	MaxRedox   = 4
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidTubeworms = errors.New("invalid tubeworms value")
)

// Tubeworms records whether tube-dwelling organisms were observed.
type Tubeworms int

const (
	TubewormsPresent Tubeworms = iota
	TubewormsAbsent
)

// ParseTubeworms accepts the English and Portuguese names as well as the
// dashboard's radio values (0 present, 1 absent).
func ParseTubeworms(s string) (Tubeworms, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "presentes", "0":
		return TubewormsPresent, nil
	case "absent", "ausentes", "1":
		return TubewormsAbsent, nil
	default:
		return TubewormsAbsent, fmt.Errorf("%w: %q", ErrInvalidTubeworms, s)
	}
}

func (t Tubeworms) String() string {
	if t == TubewormsPresent {
		return "present"
	}
	return "absent"
}

// Points is the score contribution: absence of tube builders adds one.
func (t Tubeworms) Points() int {
	if t == TubewormsAbsent {
		return 1
	}
	return 0
}

func (t Tubeworms) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tubeworms) UnmarshalText(b []byte) error {
	v, err := ParseTubeworms(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Input is one set of beach observations.
type Input struct {
	Wave      int       `json:"wave" yaml:"wave"`
	Breaker   int       `json:"breaker" yaml:"breaker"`
	Fine      int       `json:"fine" yaml:"fine"`
	Grain     GrainSize `json:"grain" yaml:"grain"`
	Slope     string    `json:"slope" yaml:"slope"`
	Redox     int       `json:"redox" yaml:"redox"`
	Tubeworms Tubeworms `json:"tubeworms" yaml:"tubeworms"`
}

// DefaultInput returns the dashboard's initial control positions.
func DefaultInput() Input {
	return Input{
		Wave:      2,
		Breaker:   1,
		Fine:      1,
		Grain:     GrainMediumFine,
		Slope:     "1/20",
		Redox:     2,
		Tubeworms: TubewormsAbsent,
	}
}

// Validate reports ordinal fields outside their ranges. Grain and slope are
// not checked: unknown values score a zero table contribution.
func (in Input) Validate() error {
	checks := []struct {
		name string
		val  int
		max  int
	}{
		{"wave", in.Wave, MaxWave},
		{"breaker", in.Breaker, MaxBreaker},
		{"fine", in.Fine, MaxFine},
		{"redox", in.Redox, MaxRedox},
	}
	for _, c := range checks {
		if c.val < 0 || c.val > c.max {
			return fmt.Errorf("%w: %s %d out of range [0, %d]", ErrInvalidInput, c.name, c.val, c.max)
		}
	}
	if in.Tubeworms != TubewormsPresent && in.Tubeworms != TubewormsAbsent {
		return fmt.Errorf("%w: tubeworms %d", ErrInvalidInput, in.Tubeworms)
	}
	return nil
}

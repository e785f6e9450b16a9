package beach

import (
	"fmt"
	"strings"
)

// Locale selects the language of labels and summaries.
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

// ParseLocale returns the locale for s, defaulting to Portuguese.
func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pt", "pt-br", "pt_br":
		return LocalePT, nil
	case "en", "en-us", "en_us":
		return LocaleEN, nil
	default:
		return LocalePT, fmt.Errorf("unsupported locale: %q", s)
	}
}

// Class is the beach type, ordered from sheltered to exposed.
type Class int

const (
	ClassVeryProtected Class = iota
	ClassProtected
	ClassExposed
	ClassVeryExposed
)

// classBounds holds the inclusive upper score of each class but the last.
var classBounds = []struct {
	max   int
	class Class
}{
	{5, ClassVeryProtected},
	{10, ClassProtected},
	{15, ClassExposed},
}

var classLabels = map[Locale][]string{
	LocalePT: {"Muito Protegida", "Protegida", "Exposta", "Muito Exposta"},
	LocaleEN: {"Very Sheltered", "Sheltered", "Exposed", "Very Exposed"},
}

var classKeys = []string{"very_protected", "protected", "exposed", "very_exposed"}

// Classify maps a score to its beach type.
func Classify(score int) Class {
	for _, b := range classBounds {
		if score <= b.max {
			return b.class
		}
	}
	return ClassVeryExposed
}

// Label returns the display name of the class in the given locale.
func (c Class) Label(l Locale) string {
	labels, ok := classLabels[l]
	if !ok {
		labels = classLabels[LocalePT]
	}
	if c < 0 || int(c) >= len(labels) {
		return ""
	}
	return labels[c]
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classKeys) {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classKeys[c]
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	for i, k := range classKeys {
		if k == string(b) {
			*c = Class(i)
			return nil
		}
	}
	return fmt.Errorf("unknown class: %q", string(b))
}

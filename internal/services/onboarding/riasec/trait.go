package riasec

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trait names one of the six RIASEC interest dimensions.
type Trait string

const (
	Realistic     Trait = "Realistic"
	Investigative Trait = "Investigative"
	Artistic      Trait = "Artistic"
	Social        Trait = "Social"
	Enterprising  Trait = "Enterprising"
	Conventional  Trait = "Conventional"
)

var traits = [...]Trait{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

var opposites = map[Trait]Trait{
	Realistic:     Social,
	Social:        Realistic,
	Investigative: Enterprising,
	Enterprising:  Investigative,
	Artistic:      Conventional,
	Conventional:  Artistic,
}

// Traits returns all traits in canonical RIASEC order.
func Traits() []Trait {
	out := make([]Trait, len(traits))
	copy(out, traits[:])
	return out
}

// Valid reports whether t is one of the six traits.
func (t Trait) Valid() bool {
	_, ok := opposites[t]
	return ok
}

// Letter returns the single-letter Holland code for t.
func (t Trait) Letter() string {
	if !t.Valid() {
		return ""
	}
	return string(t[0])
}

// Opposite returns the trait paired against t, or "" for unknown traits.
func Opposite(t Trait) Trait {
	return opposites[t]
}

// ParseTrait resolves a trait name regardless of casing or surrounding space.
func ParseTrait(value string) (Trait, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", fmt.Errorf("trait is required")
	}
	t := Trait(cases.Title(language.English).String(name))
	if !t.Valid() {
		return "", fmt.Errorf("unknown trait %q", value)
	}
	return t, nil
}

// Scores maps traits to integer weights. Option vectors carry only non-zero
// traits.
type Scores map[Trait]int

// Clone returns an independent copy of s.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Vector derives an option score vector: +2 for primary, +1 for secondary and
// -2 for the primary's opposite. Empty traits contribute nothing.
func Vector(primary, secondary Trait) Scores {
	v := Scores{}
	if primary != "" {
		v[primary] = 2
	}
	if secondary != "" {
		v[secondary] = 1
	}
	if opp := Opposite(primary); opp != "" {
		v[opp] = -2
	}
	return v
}

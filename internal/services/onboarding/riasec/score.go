package riasec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownScenario indicates a selection references a scenario that is
	// not part of the questionnaire.
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrUnknownOption indicates a selection references an option that does
	// not belong to its scenario.
	ErrUnknownOption = errors.New("unknown option")
)

// Answers collects, per trait, the score contributed by each selected option
// in questionnaire order. This is the riasec_answers shape stored by the
// onboarding backend.
type Answers map[Trait][]int

// Tally scores selections (scenario ID to option ID) against scenarios.
// Scenarios without a selection are skipped. Every trait is present in the
// result, and a selected option contributes 0 to traits it does not score.
func Tally(scenarios []Scenario, selections map[string]string) (Answers, error) {
	known := make(map[string]struct{}, len(scenarios))
	for _, sc := range scenarios {
		known[sc.ID] = struct{}{}
	}
	for scenarioID := range selections {
		if _, ok := known[scenarioID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, scenarioID)
		}
	}

	answers := make(Answers, len(traits))
	for _, t := range traits {
		answers[t] = []int{}
	}
	for _, sc := range scenarios {
		optionID, ok := selections[sc.ID]
		if !ok {
			continue
		}
		option, found := findOption(sc, strings.TrimSpace(optionID))
		if !found {
			return nil, fmt.Errorf("%w: %s in scenario %s", ErrUnknownOption, optionID, sc.ID)
		}
		for _, t := range traits {
			answers[t] = append(answers[t], option.Scores[t])
		}
	}
	return answers, nil
}

func findOption(sc Scenario, optionID string) (Option, bool) {
	for _, o := range sc.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return Option{}, false
}

// Totals sums each trait's contributions. Traits with a zero total are
// included so callers can render a full profile.
func (a Answers) Totals() Scores {
	totals := make(Scores, len(traits))
	for _, t := range traits {
		sum := 0
		for _, v := range a[t] {
			sum += v
		}
		totals[t] = sum
	}
	return totals
}

// Ranked returns traits ordered by descending total. Ties keep canonical
// RIASEC order.
func (a Answers) Ranked() []Trait {
	totals := a.Totals()
	ranked := Traits()
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})
	return ranked
}

// HollandCode returns the letters of the top n traits, e.g. "SEA".
func (a Answers) HollandCode(n int) string {
	ranked := a.Ranked()
	if n <= 0 {
		return ""
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	var b strings.Builder
	for _, t := range ranked[:n] {
		b.WriteString(t.Letter())
	}
	return b.String()
}

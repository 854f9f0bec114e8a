package riasec

import "fmt"

// DefaultSeed replaces an empty seed.
const DefaultSeed = "default"

const questionsSalt = "__questions__"

// Option is one presented answer.
type Option struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Scores Scores `json:"scores"`
}

// Scenario is one presented questionnaire item.
type Scenario struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// OptionID returns the stable identifier for the option at catalog position
// index within scenarioID.
func OptionID(scenarioID string, index int) string {
	return fmt.Sprintf("%s:o%d", scenarioID, index)
}

// Build returns the default catalog shuffled for seed.
func Build(seed string, shuffleScenarios bool) []Scenario {
	return BuildFrom(DefaultCatalog(), seed, shuffleScenarios)
}

// BuildFrom materializes catalog into scenarios. Options are always shuffled
// per scenario; scenario order is shuffled only when shuffleScenarios is set.
// The catalog is never mutated and the result shares no memory with it.
func BuildFrom(catalog []Template, seed string, shuffleScenarios bool) []Scenario {
	scenarios := make([]Scenario, 0, len(catalog))
	for _, tmpl := range catalog {
		options := make([]Option, 0, len(tmpl.Options))
		for i, o := range tmpl.Options {
			options = append(options, Option{
				ID:     OptionID(tmpl.ID, i),
				Text:   o.Text,
				Scores: o.Scores.Clone(),
			})
		}
		scenarios = append(scenarios, Scenario{
			ID:      tmpl.ID,
			Text:    tmpl.Text,
			Options: options,
		})
	}

	if seed == "" {
		seed = DefaultSeed
	}
	if shuffleScenarios {
		Shuffle(scenarios, NewRNGFor(seed+":"+questionsSalt))
	}
	for i := range scenarios {
		Shuffle(scenarios[i].Options, NewRNGFor(seed+":"+scenarios[i].ID))
	}
	return scenarios
}

// IDs returns scenario identifiers in presentation order.
func IDs(scenarios []Scenario) []string {
	ids := make([]string, len(scenarios))
	for i, sc := range scenarios {
		ids[i] = sc.ID
	}
	return ids
}

// Arrange returns scenarios reordered to follow order. IDs in order with no
// matching scenario are skipped, and scenarios absent from order are dropped.
func Arrange(scenarios []Scenario, order []string) []Scenario {
	byID := make(map[string]Scenario, len(scenarios))
	for _, sc := range scenarios {
		byID[sc.ID] = sc
	}
	out := make([]Scenario, 0, len(order))
	for _, id := range order {
		sc, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, sc)
		delete(byID, sc.ID)
	}
	return out
}

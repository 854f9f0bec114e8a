package riasec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog indicates a catalog document failed validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

const minOptionsPerScenario = 2

type catalogDocument struct {
	// Extend appends the document's scenarios to the default catalog instead
	// of replacing it.
	Extend    bool               `yaml:"extend"`
	Scenarios []scenarioDocument `yaml:"scenarios"`
}

type scenarioDocument struct {
	ID      string           `yaml:"id"`
	Text    string           `yaml:"text"`
	Options []optionDocument `yaml:"options"`
}

type optionDocument struct {
	Text      string         `yaml:"text"`
	Primary   string         `yaml:"primary"`
	Secondary string         `yaml:"secondary"`
	Scores    map[string]int `yaml:"scores"`
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) ([]Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog decodes a YAML catalog. Options declare either a
// primary/secondary trait pair, expanded with Vector, or explicit scores.
func LoadCatalog(r io.Reader) ([]Template, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidCatalog, err)
	}

	templates := make([]Template, 0, len(doc.Scenarios))
	for i, sd := range doc.Scenarios {
		tmpl, err := sd.template()
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %d: %v", ErrInvalidCatalog, i, err)
		}
		templates = append(templates, tmpl)
	}

	if doc.Extend {
		return Extend(DefaultCatalog(), templates)
	}
	if err := validateCatalog(templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Extend appends extra templates to base, rejecting duplicate IDs.
func Extend(base, extra []Template) ([]Template, error) {
	out := make([]Template, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	if err := validateCatalog(out); err != nil {
		return nil, err
	}
	return out, nil
}

func validateCatalog(templates []Template) error {
	if len(templates) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(templates))
	for _, tmpl := range templates {
		if _, dup := seen[tmpl.ID]; dup {
			return fmt.Errorf("%w: duplicate scenario id %q", ErrInvalidCatalog, tmpl.ID)
		}
		seen[tmpl.ID] = struct{}{}
	}
	return nil
}

func (sd scenarioDocument) template() (Template, error) {
	id := strings.TrimSpace(sd.ID)
	if id == "" {
		return Template{}, fmt.Errorf("id is required")
	}
	text := strings.TrimSpace(sd.Text)
	if text == "" {
		return Template{}, fmt.Errorf("scenario %s: text is required", id)
	}
	if len(sd.Options) < minOptionsPerScenario {
		return Template{}, fmt.Errorf("scenario %s: at least %d options are required", id, minOptionsPerScenario)
	}

	options := make([]OptionTemplate, 0, len(sd.Options))
	for i, od := range sd.Options {
		o, err := od.option()
		if err != nil {
			return Template{}, fmt.Errorf("scenario %s option %d: %w", id, i, err)
		}
		options = append(options, o)
	}
	return Template{ID: id, Text: text, Options: options}, nil
}

func (od optionDocument) option() (OptionTemplate, error) {
	text := strings.TrimSpace(od.Text)
	if text == "" {
		return OptionTemplate{}, fmt.Errorf("text is required")
	}

	if len(od.Scores) > 0 {
		if od.Primary != "" || od.Secondary != "" {
			return OptionTemplate{}, fmt.Errorf("scores and primary/secondary are mutually exclusive")
		}
		scores := make(Scores, len(od.Scores))
		for name, v := range od.Scores {
			t, err := ParseTrait(name)
			if err != nil {
				return OptionTemplate{}, err
			}
			if v != 0 {
				scores[t] = v
			}
		}
		return OptionTemplate{Text: text, Scores: scores}, nil
	}

	primary, err := ParseTrait(od.Primary)
	if err != nil {
		return OptionTemplate{}, fmt.Errorf("primary: %w", err)
	}
	var secondary Trait
	if strings.TrimSpace(od.Secondary) != "" {
		secondary, err = ParseTrait(od.Secondary)
		if err != nil {
			return OptionTemplate{}, fmt.Errorf("secondary: %w", err)
		}
	}
	return opt(text, primary, secondary), nil
}

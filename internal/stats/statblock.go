// Package stats models monster and character stat blocks and renders them
// as fixed-width text.
package stats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessopj1/fourhills/internal/match"
	"github.com/jessopj1/fourhills/internal/setting"
	"gopkg.in/yaml.v3"
)

// ErrMissingField is returned when a stat file lacks a required field.
// Wrapped errors name the field; test with errors.Is.
var ErrMissingField = errors.New("missing required field")

// Field is one entry of an ordered name/value mapping. YAML mappings
// decode into Go maps in arbitrary order, so ordered sections (saving
// throws, skills, traits, actions) decode into slices of Field instead,
// preserving document order.
type Field struct {
	Name  string
	Value string
}

// FieldList decodes a YAML mapping while preserving key order.
type FieldList []Field

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FieldList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		*f = append(*f, Field{Name: node.Content[i].Value, Value: value})
	}
	return nil
}

// Score is one named ability score.
type Score struct {
	Name  string
	Value int
}

// ScoreList decodes the ability mapping while preserving key order.
type ScoreList []Score

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ScoreList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		var value int
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		*s = append(*s, Score{Name: node.Content[i].Value, Value: value})
	}
	return nil
}

// Attack describes one melee or ranged attack. Reach is set for melee
// attacks and Range for ranged ones; Info is optional free text appended
// to the rendered entry.
type Attack struct {
	Hit     string `yaml:"hit"`
	Reach   string `yaml:"reach"`
	Range   string `yaml:"range"`
	Targets string `yaml:"targets"`
	Damage  string `yaml:"damage"`
	Info    string `yaml:"info"`
}

// NamedAttack pairs an attack with its name.
type NamedAttack struct {
	Name string
	Attack
}

// AttackList decodes a name-to-attack mapping while preserving key order.
type AttackList []NamedAttack

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *AttackList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		var attack Attack
		if err := node.Content[i+1].Decode(&attack); err != nil {
			return err
		}
		*a = append(*a, NamedAttack{Name: node.Content[i].Value, Attack: attack})
	}
	return nil
}

// StatBlock is the stat block for a monster or character. It is immutable
// once loaded; every rendering is a pure function of the block and a
// line width.
type StatBlock struct {
	Name                  string     `yaml:"name"`
	Size                  string     `yaml:"size"`
	CreatureType          string     `yaml:"creature_type"`
	Alignment             string     `yaml:"alignment"`
	AC                    string     `yaml:"ac"`
	HP                    string     `yaml:"hp"`
	Speed                 string     `yaml:"speed"`
	Ability               ScoreList  `yaml:"ability"`
	Challenge             float64    `yaml:"challenge"`
	PassivePerception     int        `yaml:"passive_perception"`
	SavingThrows          FieldList  `yaml:"saving_throws"`
	Skills                FieldList  `yaml:"skills"`
	DamageVulnerabilities []string   `yaml:"damage_vulnerabilities"`
	DamageResistances     []string   `yaml:"damage_resistances"`
	DamageImmunities      []string   `yaml:"damage_immunities"`
	ConditionImmunities   []string   `yaml:"condition_immunities"`
	SpecialSenses         FieldList  `yaml:"special_senses"`
	Languages             []string   `yaml:"languages"`
	SpecialTraits         FieldList  `yaml:"special_traits"`
	MeleeAttacks          AttackList `yaml:"melee_attacks"`
	RangedAttacks         AttackList `yaml:"ranged_attacks"`
	Multiattack           string     `yaml:"multiattack"`
	OtherActions          FieldList  `yaml:"other_actions"`
	Description           string     `yaml:"description"`
}

// validate checks the required fields after decoding, so a bad stat file
// fails at load time rather than at render time.
func (s *StatBlock) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"size", s.Size},
		{"creature_type", s.CreatureType},
		{"alignment", s.Alignment},
		{"ac", s.AC},
		{"hp", s.HP},
		{"speed", s.Speed},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if len(s.Ability) != abilityCount {
		return fmt.Errorf("%w: ability (want %d scores, got %d)", ErrMissingField, abilityCount, len(s.Ability))
	}
	if s.PassivePerception <= 0 {
		return fmt.Errorf("%w: passive_perception", ErrMissingField)
	}
	return nil
}

// FromFile loads a StatBlock from a YAML file.
func FromFile(path string) (*StatBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stat file: %w", err)
	}

	var block StatBlock
	if err := yaml.Unmarshal(data, &block); err != nil {
		return nil, fmt.Errorf("parsing stat file %s: %w", path, err)
	}
	if err := block.validate(); err != nil {
		return nil, fmt.Errorf("stat file %s: %w", path, err)
	}

	return &block, nil
}

// FromName loads the monster with the given name from the setting's
// monsters directory. The name must match a filename there, excluding the
// extension; an unknown name fails with nearby suggestions when any exist.
func FromName(name string, s *setting.Setting) (*StatBlock, error) {
	path := filepath.Join(s.MonstersDir(), name+".yaml")
	if _, err := os.Stat(path); err != nil {
		names, listErr := setting.FilenamesOfType("yaml", s.MonstersDir())
		if listErr == nil {
			if nearby := match.Closest(name, names, 3); len(nearby) > 0 {
				return nil, fmt.Errorf("no monster named %q (did you mean %s?)", name, strings.Join(nearby, ", "))
			}
		}
		return nil, fmt.Errorf("no monster named %q", name)
	}
	return FromFile(path)
}

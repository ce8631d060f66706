package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jessopj1/fourhills/internal/text"
)

// abilityCount is the number of ability scores in a stat block.
const abilityCount = 6

// MinBattleWidth is the narrowest width BattleInfo can render. Each
// formatted ability score needs 2 characters for the score, 3 for the
// signed modifier, 2 for the brackets and 2 for the margin, and there are
// six of them.
const MinBattleWidth = 56

// ErrWidthTooNarrow is returned when a requested line width cannot hold
// the six ability score cells.
var ErrWidthTooNarrow = errors.New("width too narrow")

// AbilityModifier derives the modifier for an ability score:
// floor((score - 10) / 2).
func AbilityModifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// SummaryInfo renders a short header for the stat block: the centred name
// (with an "xN" suffix when quantity is above one), a full-width rule and
// a size/type/alignment line. A name wider than the line width overflows
// rather than failing.
func (s *StatBlock) SummaryInfo(width, quantity int) []string {
	header := s.Name
	if quantity > 1 {
		header = fmt.Sprintf("%s x%d", s.Name, quantity)
	}

	return []string{
		text.CentrePad(header, width),
		text.Rule('=', width),
		fmt.Sprintf("%s %s, %s", text.Capitalise(s.Size), s.CreatureType, s.Alignment),
	}
}

// BattleInfo renders the full battle view of the stat block as lines no
// wider than width. Sections appear in a fixed order and optional sections
// are omitted entirely when their data is absent. The error is returned
// before any lines are produced, so rendering is all-or-nothing.
func (s *StatBlock) BattleInfo(width int) ([]string, error) {
	if width < MinBattleWidth {
		return nil, fmt.Errorf("%w: need at least %d columns for ability scores, got %d", ErrWidthTooNarrow, MinBattleWidth, width)
	}

	var lines []string

	lines = append(lines,
		"AC "+s.AC,
		"HP "+s.HP,
		"Speed "+s.Speed,
		text.Rule('-', width),
	)

	cellWidth := width / len(s.Ability)
	var names, scores strings.Builder
	for _, ability := range s.Ability {
		names.WriteString(text.CentrePad(ability.Name, cellWidth))
		modifier := AbilityModifier(ability.Value)
		scores.WriteString(text.CentrePad(fmt.Sprintf("%d(%+d)", ability.Value, modifier), cellWidth))
	}
	lines = append(lines,
		text.CentrePad(names.String(), width),
		text.CentrePad(scores.String(), width),
		text.Rule('-', width),
	)

	if len(s.SavingThrows) > 0 {
		lines = append(lines, text.FormatList("Saving throws", s.SavingThrows.joined(), width)...)
	}
	if len(s.Skills) > 0 {
		lines = append(lines, text.FormatList("Skills", s.Skills.joined(), width)...)
	}
	if len(s.DamageVulnerabilities) > 0 {
		lines = append(lines, text.FormatList("Damage vulnerabilities", s.DamageVulnerabilities, width)...)
	}
	if len(s.DamageResistances) > 0 {
		lines = append(lines, text.FormatList("Damage resistances", s.DamageResistances, width)...)
	}
	if len(s.DamageImmunities) > 0 {
		lines = append(lines, text.FormatList("Damage immunities", s.DamageImmunities, width)...)
	}
	if len(s.ConditionImmunities) > 0 {
		lines = append(lines, text.FormatList("Condition immunities", s.ConditionImmunities, width)...)
	}

	lines = append(lines, fmt.Sprintf("Passive perception: %d", s.PassivePerception))

	if len(s.SpecialSenses) > 0 {
		lines = append(lines, text.FormatList("Senses", s.SpecialSenses.joined(), width)...)
	}

	languages := s.Languages
	if len(languages) == 0 {
		languages = []string{"none"}
	}
	lines = append(lines, text.FormatList("Languages", languages, width)...)

	lines = append(lines, "Challenge: "+strconv.FormatFloat(s.Challenge, 'g', -1, 64))

	lines = append(lines, "", text.CentrePad("Special traits", width), text.Rule('-', width))
	for _, trait := range s.SpecialTraits {
		paragraph := fmt.Sprintf("%s: %s", text.Capitalise(trait.Name), trait.Value)
		lines = append(lines, text.WrapIndented(paragraph, width)...)
	}

	lines = append(lines, "", text.CentrePad("Actions", width), text.Rule('-', width))
	for _, attack := range s.MeleeAttacks {
		entry := fmt.Sprintf("%s: melee weapon attack, %s to hit, reach %s, %s. Hit damage: %s.",
			text.Capitalise(attack.Name), attack.Hit, attack.Reach, attack.Targets, attack.Damage)
		if attack.Info != "" {
			entry += " " + attack.Info + "."
		}
		lines = append(lines, text.WrapIndented(entry, width)...)
	}
	for _, attack := range s.RangedAttacks {
		entry := fmt.Sprintf("%s: ranged weapon attack, %s to hit, range %s, %s. Hit damage: %s.",
			text.Capitalise(attack.Name), attack.Hit, attack.Range, attack.Targets, attack.Damage)
		if attack.Info != "" {
			entry += " " + attack.Info + "."
		}
		lines = append(lines, text.WrapIndented(entry, width)...)
	}
	if s.Multiattack != "" {
		lines = append(lines, text.WrapIndented("Multiattack: "+s.Multiattack, width)...)
	}
	for _, action := range s.OtherActions {
		paragraph := fmt.Sprintf("%s: %s", text.Capitalise(action.Name), action.Value)
		lines = append(lines, text.WrapIndented(paragraph, width)...)
	}

	lines = append(lines, "")

	if s.Description != "" {
		lines = append(lines, text.WrapIndented(s.Description, width)...)
	}

	return lines, nil
}

// joined renders each entry as "name value", the form used in saving
// throw, skill and sense lists.
func (f FieldList) joined() []string {
	items := make([]string, len(f))
	for i, field := range f {
		items[i] = field.Name + " " + field.Value
	}
	return items
}

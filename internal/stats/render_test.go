package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock() *StatBlock {
	return &StatBlock{
		Name:         "Wolf",
		Size:         "medium",
		CreatureType: "beast",
		Alignment:    "unaligned",
		AC:           "13",
		HP:           "11 (2d8+2)",
		Speed:        "40 ft.",
		Ability: ScoreList{
			{"STR", 10}, {"DEX", 14}, {"CON", 12},
			{"INT", 8}, {"WIS", 10}, {"CHA", 16},
		},
		Challenge:         0.25,
		PassivePerception: 13,
	}
}

func TestAbilityModifier(t *testing.T) {
	t.Parallel()
	tests := map[int]int{
		1:  -5,
		8:  -1,
		10: 0,
		11: 0,
		20: 5,
	}
	for score, want := range tests {
		assert.Equal(t, want, AbilityModifier(score), "score %d", score)
	}
}

func TestSummaryInfo(t *testing.T) {
	t.Parallel()
	lines := testBlock().SummaryInfo(20, 0)
	require.Len(t, lines, 3)
	assert.Equal(t, "        Wolf        ", lines[0])
	assert.Equal(t, strings.Repeat("=", 20), lines[1])
	assert.Equal(t, "Medium beast, unaligned", lines[2])
}

func TestSummaryInfoQuantity(t *testing.T) {
	t.Parallel()
	lines := testBlock().SummaryInfo(20, 3)
	assert.Equal(t, "      Wolf x3       ", lines[0])

	// A quantity of one reads like no quantity at all.
	lines = testBlock().SummaryInfo(20, 1)
	assert.Equal(t, "        Wolf        ", lines[0])
}

func TestSummaryInfoLongNameOverflows(t *testing.T) {
	t.Parallel()
	block := testBlock()
	block.Name = "An Unreasonably Long Creature Name"
	lines := block.SummaryInfo(10, 0)
	assert.Equal(t, block.Name, lines[0])
}

func TestBattleInfoWidthTooNarrow(t *testing.T) {
	t.Parallel()
	lines, err := testBlock().BattleInfo(55)
	require.ErrorIs(t, err, ErrWidthTooNarrow)
	assert.Nil(t, lines)

	_, err = testBlock().BattleInfo(56)
	assert.NoError(t, err)
}

func TestBattleInfoAbilityRows(t *testing.T) {
	t.Parallel()
	lines, err := testBlock().BattleInfo(80)
	require.NoError(t, err)

	// 80/6 = 13-character cells, joined then centred to the full width.
	wantNames := " " +
		"     STR     " + "     DEX     " + "     CON     " +
		"     INT     " + "     WIS     " + "     CHA     " + " "
	wantScores := " " +
		"   10(+0)    " + "   14(+2)    " + "   12(+1)    " +
		"    8(-1)    " + "   10(+0)    " + "   16(+3)    " + " "

	assert.Equal(t, "AC 13", lines[0])
	assert.Equal(t, "HP 11 (2d8+2)", lines[1])
	assert.Equal(t, "Speed 40 ft.", lines[2])
	assert.Equal(t, strings.Repeat("-", 80), lines[3])
	assert.Equal(t, wantNames, lines[4])
	assert.Equal(t, wantScores, lines[5])
	assert.Equal(t, strings.Repeat("-", 80), lines[6])
	assert.Len(t, lines[4], 80)
	assert.Len(t, lines[5], 80)
}

func TestBattleInfoOmitsAbsentSections(t *testing.T) {
	t.Parallel()
	lines, err := testBlock().BattleInfo(60)
	require.NoError(t, err)

	joined := strings.Join(lines, "\n")
	assert.NotContains(t, joined, "Saving throws")
	assert.NotContains(t, joined, "Skills")
	assert.NotContains(t, joined, "Damage")
	assert.NotContains(t, joined, "Senses")

	// Passive perception, languages and challenge always show.
	assert.Contains(t, joined, "Passive perception: 13")
	assert.Contains(t, joined, "Languages: none")
	assert.Contains(t, joined, "Challenge: 0.25")
}

func TestBattleInfoRuleOnlyTraitsBlock(t *testing.T) {
	t.Parallel()
	lines, err := testBlock().BattleInfo(60)
	require.NoError(t, err)

	traits := indexOf(t, lines, "Special traits")
	assert.Equal(t, strings.Repeat("-", 60), lines[traits+1])
	// No traits: the rule is followed directly by the pre-Actions blank.
	assert.Equal(t, "", lines[traits+2])
	actions := indexOf(t, lines, "Actions")
	assert.Equal(t, traits+3, actions)
}

func TestBattleInfoSectionOrder(t *testing.T) {
	t.Parallel()
	block := testBlock()
	block.SavingThrows = FieldList{{"DEX", "+4"}}
	block.Skills = FieldList{{"Stealth", "+4"}, {"Perception", "+3"}}
	block.DamageVulnerabilities = []string{"fire"}
	block.DamageResistances = []string{"cold"}
	block.DamageImmunities = []string{"poison"}
	block.ConditionImmunities = []string{"charmed"}
	block.SpecialSenses = FieldList{{"darkvision", "60 ft."}}
	block.Languages = []string{"Common", "Elvish"}

	lines, err := block.BattleInfo(60)
	require.NoError(t, err)

	var order []int
	for _, prefix := range []string{
		"Saving throws: DEX +4",
		"Skills: Stealth +4, Perception +3",
		"Damage vulnerabilities: fire",
		"Damage resistances: cold",
		"Damage immunities: poison",
		"Condition immunities: charmed",
		"Passive perception: 13",
		"Senses: darkvision 60 ft.",
		"Languages: Common, Elvish",
		"Challenge: 0.25",
	} {
		order = append(order, indexOf(t, lines, prefix))
	}
	assert.IsNonDecreasing(t, order)
}

func TestBattleInfoTraitsAndActions(t *testing.T) {
	t.Parallel()
	block := testBlock()
	block.SpecialTraits = FieldList{
		{"pack tactics", "The wolf has advantage when allies are close."},
	}
	block.MeleeAttacks = AttackList{
		{Name: "bite", Attack: Attack{
			Hit: "+4", Reach: "5 ft.", Targets: "one target",
			Damage: "7 (2d4+2) piercing", Info: "The target must save or be knocked prone",
		}},
	}
	block.RangedAttacks = AttackList{
		{Name: "sling", Attack: Attack{
			Hit: "+2", Range: "30/120 ft.", Targets: "one target",
			Damage: "4 (1d4+2) bludgeoning",
		}},
	}
	block.Multiattack = "The wolf makes two bite attacks."
	block.OtherActions = FieldList{{"howl", "Calls the pack."}}
	block.Description = "A rangy grey predator."

	lines, err := block.BattleInfo(200)
	require.NoError(t, err)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Pack tactics: The wolf has advantage when allies are close.")
	assert.Contains(t, joined,
		"Bite: melee weapon attack, +4 to hit, reach 5 ft., one target. "+
			"Hit damage: 7 (2d4+2) piercing. The target must save or be knocked prone.")
	assert.Contains(t, joined,
		"Sling: ranged weapon attack, +2 to hit, range 30/120 ft., one target. "+
			"Hit damage: 4 (1d4+2) bludgeoning.")
	assert.Contains(t, joined, "Multiattack: The wolf makes two bite attacks.")
	assert.Contains(t, joined, "Howl: Calls the pack.")
	assert.Contains(t, joined, "A rangy grey predator.")

	// Fixed order: melee, ranged, multiattack, other actions, description.
	bite := indexOf(t, lines, "Bite:")
	sling := indexOf(t, lines, "Sling:")
	multi := indexOf(t, lines, "Multiattack:")
	howl := indexOf(t, lines, "Howl:")
	desc := indexOf(t, lines, "A rangy grey predator.")
	assert.IsNonDecreasing(t, []int{bite, sling, multi, howl, desc})
}

func TestBattleInfoLanguagesGiven(t *testing.T) {
	t.Parallel()
	block := testBlock()
	block.Languages = []string{"Common"}
	lines, err := block.BattleInfo(60)
	require.NoError(t, err)
	assert.Contains(t, lines, "Languages: Common")
}

func TestBattleInfoChallengeWhole(t *testing.T) {
	t.Parallel()
	block := testBlock()
	block.Challenge = 5
	lines, err := block.BattleInfo(60)
	require.NoError(t, err)
	assert.Contains(t, lines, "Challenge: 5")
}

// indexOf finds the first line starting with prefix, failing the test when
// there is none.
func indexOf(t *testing.T, lines []string, prefix string) int {
	t.Helper()
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " "), prefix) {
			return i
		}
	}
	t.Fatalf("no line with prefix %q", prefix)
	return -1
}

package cheatsheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessopj1/fourhills/internal/match"
	"github.com/jessopj1/fourhills/internal/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conditionsYAML = `description: Common status conditions
sections:
  - section_title: Prone
    section_content:
      - "- Only movement option is to crawl"
      - "- Disadvantage on attack rolls"
  - section_title: Restrained
    section_content:
      - "- Speed becomes 0"
`

func testSetting(t *testing.T, sheets map[string]string) *setting.Setting {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"world", "monsters", "npcs", "cheatsheets"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}
	for name, content := range sheets {
		path := filepath.Join(root, "cheatsheets", name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return &setting.Setting{Root: root, PaneWidth: 56, Panes: 2}
}

func TestSectionLines(t *testing.T) {
	t.Parallel()
	section := Section{
		Title:   "Prone",
		Content: []string{"- Only movement option is to crawl"},
	}
	lines := section.Lines(40)
	assert.Equal(t, []string{
		"                 Prone                  ",
		strings.Repeat("=", 40),
		"- Only movement option is to crawl",
	}, lines)
}

func TestSectionLinesWrapsLongContent(t *testing.T) {
	t.Parallel()
	section := Section{
		Title:   "Grappled",
		Content: []string{"- The condition ends if the grappler is incapacitated or removed"},
	}
	lines := section.Lines(30)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{
		"conditions": conditionsYAML,
		"combat":     "description: Combat\nsections:\n  - section_title: Cover\n",
	})
	names, err := Names(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"combat", "conditions"}, names)
}

func TestNamesNoDirectory(t *testing.T) {
	t.Parallel()
	s := testSetting(t, nil)
	require.NoError(t, os.Remove(s.CheatsheetsDir()))

	names, err := Names(s)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestFromName(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{"conditions": conditionsYAML})

	cs, err := FromName("conditions", s)
	require.NoError(t, err)
	assert.Equal(t, "Common status conditions", cs.Description)
	require.Len(t, cs.Sections, 2)
	assert.Equal(t, "Prone", cs.Sections[0].Title)
	assert.Equal(t, "Restrained", cs.Sections[1].Title)
}

func TestFromNameMissingDescription(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{"bad": "sections:\n  - section_title: X\n"})
	_, err := FromName("bad", s)
	assert.ErrorContains(t, err, "missing description")
}

func TestFromNameMissingSections(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{"bad": "description: No sections here\n"})
	_, err := FromName("bad", s)
	assert.ErrorContains(t, err, "missing sections")
}

func TestFromNameOrPrefix(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{
		"conditions": conditionsYAML,
		"combat":     "description: Combat\nsections:\n  - section_title: Cover\n",
	})

	cs, err := FromNameOrPrefix("cond", s)
	require.NoError(t, err)
	assert.Equal(t, "Common status conditions", cs.Description)
}

func TestFromNameOrPrefixAmbiguous(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{
		"conditions": conditionsYAML,
		"combat":     "description: Combat\nsections:\n  - section_title: Cover\n",
	})

	_, err := FromNameOrPrefix("co", s)
	var ambiguous *match.AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"combat", "conditions"}, ambiguous.Matches)
}

func TestFromNameOrPrefixNotFound(t *testing.T) {
	t.Parallel()
	s := testSetting(t, map[string]string{"conditions": conditionsYAML})

	_, err := FromNameOrPrefix("conditoins", s)
	var notFound *match.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"conditions"}, notFound.Suggestions)
}

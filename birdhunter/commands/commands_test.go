package commands

import (
	"testing"

	"github.com/birdwatchers/birdhunter/birdhunter/commands/utility"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		slash, ok := c.(discord.SlashCommandCreate)
		require.True(t, ok)
		assert.False(t, seen[slash.Name], "duplicate command /%s", slash.Name)
		seen[slash.Name] = true
		assert.LessOrEqual(t, len(slash.Description), 100, slash.Name)
	}
	assert.LessOrEqual(t, len(Commands), 100)
}

func TestSectionsMatchHelpChoices(t *testing.T) {
	require.Len(t, Sections, len(utility.SectionKeys))
	for i, s := range Sections {
		assert.Equal(t, utility.SectionKeys[i], s.Key)
		assert.NotEmpty(t, s.Commands, s.Key)
	}
}

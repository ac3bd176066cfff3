package economy

import (
	"testing"

	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/birdwatchers/birdhunter/internal/domain/economy"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "500", want: 500},
		{in: " 1,250 ", want: 1250},
		{in: "ALL", want: economy.DepositAll},
		{in: "all", want: economy.DepositAll},
		{in: "0", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "lots", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in, economy.DepositAll)
			if tt.wantErr {
				assert.ErrorIs(t, err, gameerr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobButtons(t *testing.T) {
	jobs := catalog.AllJobs()[:3]

	rows := jobButtons("abc", jobs, "")
	require.Len(t, rows, 1)
	row, ok := rows[0].(discord.ActionRowComponent)
	require.True(t, ok)
	assert.Len(t, row.Components(), 3)

	assert.True(t, offered(jobs, jobs[1].ID))
	assert.False(t, offered(jobs, "astronaut"))
}

func TestUseChoicesOnlyListBoosters(t *testing.T) {
	for _, c := range itemChoices(catalog.Item.Usable) {
		item, ok := catalog.ItemByID(c.Value)
		require.True(t, ok)
		assert.True(t, item.Usable(), c.Value)
	}
	assert.Len(t, itemChoices(nil), len(catalog.AllItems()))
}

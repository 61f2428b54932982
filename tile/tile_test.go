package tile_test

import (
	"testing"

	"github.com/ratel-online/mahjong/tile"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	scenarios := []struct {
		description string
		token       string
		suit        int
		rank        int
	}{
		{description: "man", token: "1m", suit: tile.MAN, rank: 1},
		{description: "pin", token: "5p", suit: tile.PIN, rank: 5},
		{description: "sou", token: "9s", suit: tile.SOU, rank: 9},
		{description: "honor", token: "7z", suit: tile.HONOR, rank: 7},
		{description: "upper_case_suit", token: "2P", suit: tile.PIN, rank: 2},
		{description: "surrounding_space", token: " 3s\n", suit: tile.SOU, rank: 3},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			parsed, err := tile.Parse(scenario.token)
			require.NoError(t, err)
			require.Equal(t, scenario.suit, parsed.Suit())
			require.Equal(t, scenario.rank, parsed.Rank())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, token := range []string{"", "p", "0p", "10m", "8z", "5x", "pp", "yes", "5s5"} {
		t.Run(token, func(t *testing.T) {
			_, err := tile.Parse(token)
			require.ErrorIs(t, err, tile.ErrInvalidTile)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, token := range []string{"1m", "9m", "1p", "9p", "1s", "9s", "1z", "7z"} {
		require.Equal(t, token, tile.MustParse(token).String())
	}
}

func TestEquality(t *testing.T) {
	require.Equal(t, tile.MustParse("2p"), tile.MustParse("2P"))
	require.NotEqual(t, tile.MustParse("2p"), tile.MustParse("2s"))
}

func TestIsSuited(t *testing.T) {
	require.True(t, tile.MustParse("3m").IsSuited())
	require.False(t, tile.MustParse("3z").IsSuited())
	require.False(t, tile.Tile(0).IsSuited())
}

func TestParseAll(t *testing.T) {
	tiles, err := tile.ParseAll([]string{"1p", "2p", "3p"})
	require.NoError(t, err)
	require.Equal(t, []tile.Tile{tile.MustParse("1p"), tile.MustParse("2p"), tile.MustParse("3p")}, tiles)

	_, err = tile.ParseAll([]string{"1p", "nope"})
	require.ErrorIs(t, err, tile.ErrInvalidTile)
}

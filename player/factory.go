package player

import (
	"math/rand"

	"github.com/ratel-online/mahjong/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
}

// CreatePlayers seats the human first and fills the rest with bots.
func CreatePlayers(numberOfPlayers int, human game.Player, seed int64) []game.Player {
	players := make([]game.Player, 0, numberOfPlayers)
	players = append(players, human)
	players = append(players, generateBots(numberOfPlayers-1, human.Name(), seed)...)
	return players
}

func generateBots(amount int, reserved string, seed int64) []game.Player {
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if name != reserved {
			names = append(names, name)
		}
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewNaivePlayer(botName))
	}
	return bots
}

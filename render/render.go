package render

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/ratel-online/mahjong/tile"
)

func Welcome(name string) string {
	return pterm.DefaultHeader.WithFullWidth(false).Sprintf("WELCOME TO MAHJONG, %s", name)
}

// Seat draws the panel a human sees before each decision.
func Seat(name string, hand, river []tile.Tile) string {
	riverLine := "-"
	if len(river) > 0 {
		riverLine = tile.ToTileString(river)
	}
	body := fmt.Sprintf("Hand:  %s\nRiver: %s", tile.ToTileString(hand), riverLine)
	return pterm.DefaultBox.WithTitle(name).WithTitleTopLeft().Sprint(body)
}

package win

import (
	"sort"

	"github.com/ratel-online/mahjong/tile"
)

// CanWin reports whether the tiles form a complete shape: seven pairs, or
// sets plus one pair. Melds are not tracked, so every tile is concealed.
func CanWin(tiles []tile.Tile) bool {
	if len(tiles)%3 != 2 {
		return false
	}
	sortedTiles := append([]tile.Tile{}, tiles...)
	sort.Slice(sortedTiles, func(i, j int) bool { return sortedTiles[i] < sortedTiles[j] })

	pos := FindPairPos(sortedTiles)
	if len(pos) == 0 {
		return false
	}
	if len(sortedTiles) == 14 && IsSevenPairs(sortedTiles, pos) {
		return true
	}

	var lastPairTile tile.Tile
	for _, v := range pos {
		// four of a kind yields two pair positions for the same tile
		if sortedTiles[v] == lastPairTile {
			continue
		}
		lastPairTile = sortedTiles[v]
		if IsAllSequenceOrTriplet(RemovePair(sortedTiles, v)) {
			return true
		}
	}
	return false
}

// IsSevenPairs reports seven distinct pairs; four of a kind is not two pairs.
func IsSevenPairs(sortedTiles []tile.Tile, pos []int) bool {
	if len(pos) != 7 {
		return false
	}
	for i := 1; i < len(pos); i++ {
		if sortedTiles[pos[i]] == sortedTiles[pos[i-1]] {
			return false
		}
	}
	return true
}

// FindPairPos 找出所有对牌的位置
// 传入的牌需要是已排序的
func FindPairPos(sortedTiles []tile.Tile) []int {
	var pos []int
	length := len(sortedTiles) - 1
	for i := 0; i < length; i++ {
		if sortedTiles[i] == sortedTiles[i+1] {
			pos = append(pos, i)
			i++
		}
	}
	return pos
}

func RemovePair(sortedTiles []tile.Tile, pos int) []tile.Tile {
	remainTiles := make([]tile.Tile, 0, len(sortedTiles)-2)
	remainTiles = append(remainTiles, sortedTiles[:pos]...)
	remainTiles = append(remainTiles, sortedTiles[pos+2:]...)
	return remainTiles
}

// IsAllSequenceOrTriplet 是否全部顺或者刻
// 传入的牌需要是已排序的
func IsAllSequenceOrTriplet(sortedTiles []tile.Tile) bool {
	for len(sortedTiles) > 0 {
		if len(sortedTiles) < 3 {
			return false
		}
		if FindAndRemoveTriplet(&sortedTiles) {
			continue
		}
		if !FindAndRemoveSequence(&sortedTiles) {
			return false
		}
	}
	return true
}

// FindAndRemoveTriplet 从已排序的牌中移除排头的刻子
func FindAndRemoveTriplet(sortedTiles *[]tile.Tile) bool {
	v := *sortedTiles
	if len(v) >= 3 && IsTriplet(v[0], v[1], v[2]) {
		*sortedTiles = append([]tile.Tile{}, v[3:]...)
		return true
	}
	return false
}

// FindAndRemoveSequence 从已排序的牌中移除以排头开始的顺子
func FindAndRemoveSequence(sortedTiles *[]tile.Tile) bool {
	v := *sortedTiles
	if len(v) < 3 || !v[0].IsSuited() {
		return false
	}
	head := v[0]
	rest := append([]tile.Tile{}, v[1:]...)
	for _, want := range []tile.Tile{head + 1, head + 2} {
		idx := -1
		for i, t := range rest {
			if t == want {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		rest = append(rest[:idx], rest[idx+1:]...)
	}
	*sortedTiles = rest
	return true
}

// IsSequence 是否顺子
// 传入的牌必须是已排序的，字牌不能成顺
func IsSequence(tileA, tileB, tileC tile.Tile) bool {
	if !tileA.IsSuited() || !tileB.IsSuited() || !tileC.IsSuited() {
		return false
	}
	return tileB == tileA+1 && tileC == tileB+1
}

// IsTriplet 是否刻子
func IsTriplet(tileA, tileB, tileC tile.Tile) bool {
	return tileB == tileA && tileC == tileB
}

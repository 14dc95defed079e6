package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the width of s in terminal cells. Grapheme clusters
// are measured as units so combining sequences and emoji count the cells
// they actually occupy, not their rune count.
func DisplayWidth(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		width += runewidth.StringWidth(cluster)
	}
	return width
}

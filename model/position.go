package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_K       Position = "K"
	POS_DEF     Position = "DEF"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "k":
		return POS_K
	case "def":
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}

// SearchPriority orders positions for search ranking. Lower values rank
// earlier: QB, RB, WR, TE, K, DEF, then everything else.
func (p Position) SearchPriority() int {
	switch p {
	case POS_QB:
		return 0
	case POS_RB:
		return 1
	case POS_WR:
		return 2
	case POS_TE:
		return 3
	case POS_K:
		return 4
	case POS_DEF:
		return 5
	default:
		return 6
	}
}

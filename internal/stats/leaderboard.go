package stats

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

type RankedEntry struct {
	Rank int `json:"rank"`
	UserAggregate
}

// Leaderboard is the result of Rank.
// Focus is set whenever the focus user is ranked, and FocusInTop tells if it is also part of Top.
// RankedCount is the number of users with a non zero total, before the topN cut.
type Leaderboard struct {
	Top           []RankedEntry `json:"top"`
	Focus         *RankedEntry  `json:"focus,omitempty"`
	FocusInTop    bool          `json:"focusInTop"`
	FocusUnranked bool          `json:"focusUnranked"`
	RankedCount   int           `json:"rankedCount"`

	ranks map[uuid.UUID]int
}

// Rank orders users by total duration (desc), then user id (asc), and assigns 1-based ranks.
// Users with zero total duration are not ranked. topN <= 0 keeps all ranked entries in Top.
// If focus is not nil, its rank is reported even when it falls outside of Top.
func Rank(aggs []UserAggregate, topN int, focus *uuid.UUID) Leaderboard {
	ranked := make([]UserAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.TotalDurationMinutes > 0 {
			ranked = append(ranked, agg)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalDurationMinutes != ranked[j].TotalDurationMinutes {
			return ranked[i].TotalDurationMinutes > ranked[j].TotalDurationMinutes
		}
		return bytes.Compare(ranked[i].UserID[:], ranked[j].UserID[:]) < 0
	})

	board := Leaderboard{
		Top:         []RankedEntry{},
		RankedCount: len(ranked),
		ranks:       make(map[uuid.UUID]int, len(ranked)),
	}
	for i, agg := range ranked {
		board.ranks[agg.UserID] = i + 1
		if topN <= 0 || i < topN {
			board.Top = append(board.Top, RankedEntry{Rank: i + 1, UserAggregate: agg})
		}
	}

	if focus == nil {
		return board
	}

	rank, ok := board.ranks[*focus]
	if !ok {
		board.FocusUnranked = true
		return board
	}

	board.Focus = &RankedEntry{Rank: rank, UserAggregate: ranked[rank-1]}
	board.FocusInTop = rank <= len(board.Top)

	return board
}

// RankOf returns the rank of the user, or false when the user is not ranked.
func (l Leaderboard) RankOf(userID uuid.UUID) (int, bool) {
	rank, ok := l.ranks[userID]
	return rank, ok
}

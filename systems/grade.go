package systems

import (
	cfg "github.com/automoto/tacdrill/config"
)

// Grade rates a finished mission by the share of targets eliminated
func Grade(score, total int) string {
	if total <= 0 || score >= total {
		return "PERFECT"
	}
	share := float64(score) / float64(total)
	switch {
	case share >= cfg.Rank.ExcellentShare:
		return "EXCELLENT"
	case share >= cfg.Rank.GoodShare:
		return "GOOD"
	}
	return "FAIR"
}

// Promote returns the rank after a mission. Meeting the pass score moves one
// step up the ladder; the top rank is kept.
func Promote(rank, score, passScore int) (int, bool) {
	if score < passScore || rank >= len(cfg.Rank.Ranks)-1 {
		return rank, false
	}
	return rank + 1, true
}

// RankName returns the display name of a rank index
func RankName(rank int) string {
	ranks := cfg.Rank.Ranks
	if len(ranks) == 0 {
		return ""
	}
	if rank < 0 {
		rank = 0
	}
	if rank >= len(ranks) {
		rank = len(ranks) - 1
	}
	return ranks[rank]
}

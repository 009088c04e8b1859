package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/tacdrill/systems"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{5, 5, "PERFECT"},
		{4, 5, "EXCELLENT"},
		{3, 5, "GOOD"},
		{2, 5, "GOOD"},
		{1, 5, "FAIR"},
		{0, 5, "FAIR"},
		{0, 0, "PERFECT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, systems.Grade(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}

func TestPromote(t *testing.T) {
	rank, promoted := systems.Promote(0, 3, 3)
	assert.True(t, promoted)
	assert.Equal(t, 1, rank)

	rank, promoted = systems.Promote(2, 2, 3)
	assert.False(t, promoted)
	assert.Equal(t, 2, rank)

	top := 7
	rank, promoted = systems.Promote(top, 5, 3)
	assert.False(t, promoted, "top rank stays")
	assert.Equal(t, top, rank)
}

func TestRankName(t *testing.T) {
	assert.Equal(t, "Rookie", systems.RankName(0))
	assert.Equal(t, "Soldier", systems.RankName(1))
	assert.Equal(t, "Veteran", systems.RankName(99))
	assert.Equal(t, "Rookie", systems.RankName(-1))
}

package systems

import (
	"sort"
	"time"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Roster returns the targets in roster order
func Roster(e *ecs.ECS) []*donburi.Entry {
	entry, ok := components.Roster.First(e.World)
	if !ok {
		return nil
	}
	ids := components.Roster.Get(entry).Entities
	entries := make([]*donburi.Entry, 0, len(ids))
	for _, id := range ids {
		if e.World.Valid(id) {
			entries = append(entries, e.World.Entry(id))
		}
	}
	return entries
}

// EnemyByID returns the target in roster slot id
func EnemyByID(e *ecs.ECS, id int) (*donburi.Entry, bool) {
	entry, ok := components.Roster.First(e.World)
	if !ok {
		return nil, false
	}
	ids := components.Roster.Get(entry).Entities
	if id < 0 || id >= len(ids) || !e.World.Valid(ids[id]) {
		return nil, false
	}
	return e.World.Entry(ids[id]), true
}

// HitTest returns the live target under the scene point (x, y). Hit boxes are
// half-open, [x, x+w) by [y, y+h). Boxes may overlap; the first live target
// in roster order wins.
func HitTest(e *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	for _, entry := range Roster(e) {
		if !components.Enemy.Get(entry).Alive() {
			continue
		}
		if components.Object.Get(entry).Contains(x, y) {
			return entry, true
		}
	}
	return nil, false
}

// Kill flips the target in slot id from alive to falling. It reports false
// if the target was not alive, so liveness changes at most once.
func Kill(e *ecs.ECS, id int, now time.Time) bool {
	entry, ok := EnemyByID(e, id)
	if !ok {
		return false
	}
	enemy := components.Enemy.Get(entry)
	if !enemy.Alive() {
		return false
	}

	enemy.Slot = cfg.SlotFalling
	obj := components.Object.Get(entry)
	donburi.Add(entry, components.Falling, &components.FallingData{
		Started: now,
		StartY:  obj.Y,
	})
	return true
}

// LiveCount returns the number of alive targets
func LiveCount(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Alive() {
			n++
		}
	})
	return n
}

// OverlappingTargets lists pairs of roster ids whose hit boxes overlap,
// using the target space as the broad phase.
func OverlappingTargets(e *ecs.ECS) [][2]int {
	var pairs [][2]int
	seen := map[[2]int]bool{}
	for _, entry := range Roster(e) {
		a := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)
		if obj.Space == nil {
			continue
		}
		check := obj.Check(0, 0, tags.ResolvTarget)
		if check == nil {
			continue
		}
		for _, other := range check.ObjectsByTags(tags.ResolvTarget) {
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || !otherEntry.Valid() {
				continue
			}
			b := components.Enemy.Get(otherEntry)
			if b.ID <= a.ID {
				continue
			}
			pair := [2]int{a.ID, b.ID}
			if !seen[pair] && obj.Overlaps(*components.Object.Get(otherEntry)) {
				seen[pair] = true
				pairs = append(pairs, pair)
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}

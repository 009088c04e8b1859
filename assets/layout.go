package assets

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const entityGroup = "Entities"

// loadLayout reads spawn positions from the Entities object group of a TMX
// map. Objects are ordered by their "slot" property, falling back to x.
func loadLayout(fsys fs.FS, file string) ([]Point, error) {
	levelMap, err := tiled.LoadFile(file, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %s: %w", file, err)
	}

	type slot struct {
		index int
		point Point
	}
	var slots []slot

	for _, og := range levelMap.ObjectGroups {
		if og.Name != entityGroup {
			continue
		}
		for _, o := range og.Objects {
			idx := len(slots)
			if len(o.Properties.Get("slot")) > 0 {
				idx = o.Properties.GetInt("slot")
			}
			slots = append(slots, slot{index: idx, point: Point{X: o.X, Y: o.Y}})
		}
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("layout %s has no %s objects", file, entityGroup)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].index != slots[j].index {
			return slots[i].index < slots[j].index
		}
		return slots[i].point.X < slots[j].point.X
	})

	points := make([]Point, len(slots))
	for i, s := range slots {
		points[i] = s.point
	}
	return points, nil
}

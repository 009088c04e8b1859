package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the bounds of an entity in scene space
type ObjectData struct {
	*resolv.Object
}

// Center returns the center point of the bounds
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Contains reports whether the point lies in the half-open box [X, X+W) x [Y, Y+H)
func (o ObjectData) Contains(x, y float64) bool {
	return x >= o.X && x < o.X+o.W && y >= o.Y && y < o.Y+o.H
}

// Overlaps reports whether two half-open boxes share any point
func (o ObjectData) Overlaps(other ObjectData) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

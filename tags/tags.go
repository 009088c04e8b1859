package tags

import "github.com/yohamta/donburi"

var (
	Enemy  = donburi.NewTag().SetName("Enemy")
	Effect = donburi.NewTag().SetName("Effect")
)

// Resolv tags for the hit test broad phase
const (
	ResolvTarget = "target"
)

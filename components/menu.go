package components

import "github.com/yohamta/donburi"

// BriefingOption represents the available briefing screen selections
type BriefingOption int

const (
	BriefingStart BriefingOption = iota
	BriefingExit
)

// MenuData stores the current state of the briefing menu
type MenuData struct {
	SelectedOption BriefingOption
	LevelName      string
	Briefing       string
	Rank           string
}

// Menu is the component type for briefing menu state
var Menu = donburi.NewComponentType[MenuData]()

package components

import (
	"github.com/automoto/tacdrill/config"
	"github.com/yohamta/donburi"
)

// ResultData stores the state of the mission complete or game over screen
type ResultData struct {
	Outcome        config.OutcomeKind
	SelectedIndex  int
	Options        []string
	LevelName      string
	Score          int
	Total          int
	Grade          string
	Rank           string
	Promoted       bool
	CampaignFinish bool // last level passed
}

// Result is the component type for result screen state
var Result = donburi.NewComponentType[ResultData]()

package systems

import (
	"fmt"

	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the briefing menu system. onStart launches the
// mission and onExit leaves the game.
func NewUpdateMenu(onStart, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := int(components.BriefingExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedOption = components.BriefingOption(
				(int(menu.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedOption = components.BriefingOption(
				(int(menu.SelectedOption) + 1) % numOptions,
			)
		}

		// Handle selection
		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionFire).JustPressed {
			switch menu.SelectedOption {
			case components.BriefingStart:
				onStart()
			case components.BriefingExit:
				onExit()
			}
			return
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onExit()
		}
	}
}

// DrawMenu renders the mission briefing screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	title := cfg.Menu.Title
	text.Draw(screen, title, fonts.Title.Get(), centerX(width, fonts.Title, title), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	name := menu.LevelName
	text.Draw(screen, name, fonts.Bold.Get(), centerX(width, fonts.Bold, name), int(cfg.Menu.TitleY)+90, cfg.White)

	rank := fmt.Sprintf("RANK: %s", menu.Rank)
	text.Draw(screen, rank, fonts.Small.Get(), centerX(width, fonts.Small, rank), int(cfg.Menu.TitleY)+130, cfg.Menu.TitleColor)

	// Briefing text, wrapped to two thirds of the screen
	y := cfg.Menu.BriefingY
	for _, line := range wrapText(fonts.Body, menu.Briefing, int(width*2/3)) {
		text.Draw(screen, line, fonts.Body.Get(), centerX(width, fonts.Body, line), int(y), cfg.White)
		y += 40
	}

	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if components.BriefingOption(i) == menu.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}
		text.Draw(screen, option, fonts.Bold.Get(), centerX(width, fonts.Bold, option), int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select"
	text.Draw(screen, hint, fonts.Small.Get(), centerX(width, fonts.Small, hint), int(height)-24, cfg.Menu.TextColorNormal)
}

func centerX(width float64, name fonts.FontName, s string) int {
	return int(width)/2 - fonts.Width(name, s)/2
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedOption: components.BriefingStart,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

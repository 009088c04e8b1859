package systems

import (
	"github.com/automoto/tacdrill/clock"
	"github.com/automoto/tacdrill/components"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause returns the pause system. Pausing freezes clk, so the
// simulation sees no time pass until it resumes. A pending question keeps
// the game from pausing; Esc belongs to the dialog then.
func NewUpdatePause(clk *clock.Pausable) ecs.System {
	return func(ecs *ecs.ECS) {
		pause := GetOrCreatePause(ecs)
		input := GetOrCreateInput(ecs)

		if GetAction(input, cfg.ActionPause).JustPressed && !GetOrCreateSession(ecs).Awaiting() {
			setPaused(pause, clk, !pause.IsPaused)
			return
		}

		// Only process menu input while paused
		if !pause.IsPaused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuAbort) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch pause.SelectedOption {
			case components.MenuResume:
				setPaused(pause, clk, false)
			case components.MenuFullscreen:
				ToggleFullscreen()
			case components.MenuAbort:
				pause.Abort = true
			}
		}
	}
}

func setPaused(pause *components.PauseData, clk *clock.Pausable, paused bool) {
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		clk.Pause()
	} else {
		clk.Resume()
	}
}

// IsPaused reports whether the battle is paused
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	title := "PAUSED"
	text.Draw(screen, title, fonts.Title.Get(), int(width)/2-fonts.Width(fonts.Title, title)/2, int(startY)-80, cfg.Pause.TextColorNormal)

	fontFace := fonts.Bold.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := int(width)/2 - fonts.Width(fonts.Bold, option)/2
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintX := int(width)/2 - fonts.Width(fonts.Small, hint)/2
	text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-24, cfg.Pause.TextColorNormal)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

package main

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/automoto/tacdrill/assets"
	"github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/fonts"
	"github.com/automoto/tacdrill/scenes"
	"github.com/automoto/tacdrill/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	exit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Exit closes the window after the current frame
func (g *Game) Exit() {
	g.exit = true
}

func NewGame(campaign *scenes.Campaign) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewBattleScene(g, campaign)
	} else {
		g.scene = scenes.NewBriefingScene(g, campaign)
	}

	return g
}

func (g *Game) Update() error {
	if g.exit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	levelID    int
	fullscreen bool
	resolution int
)

var rootCmd = &cobra.Command{
	Use:   "tacdrill",
	Short: "Tactical shooting drill",
	Long:  `Tacdrill is a shooting gallery where every hit asks a question. Answer right to drop the target.`,
	RunE:  runPlay,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	RunE:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&config.C.Seed, "seed", config.C.Seed, "Movement seed, 0 picks one from the clock")
	rootCmd.PersistentFlags().DurationVar(&config.Combat.AnswerTimeout, "answer-timeout", config.Combat.AnswerTimeout, "Count an unanswered question as wrong after this long, 0 waits forever")
	rootCmd.PersistentFlags().IntVar(&levelID, "level", 0, "ID of the level to start at, 0 for the first")

	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start in fullscreen")
		cmd.Flags().IntVar(&resolution, "resolution", -1, "Index of the window resolution")
		cmd.Flags().BoolVar(&config.Debug.SkipMenu, "skip-briefing", false, "Go straight to the battle")
		cmd.Flags().BoolVar(&config.Debug.ShowBoxes, "show-boxes", false, "Outline target hit boxes")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	levels, start, err := loadCampaign()
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Tacdrill")
	ebiten.SetWindowSize(config.C.Width/2, config.C.Height/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := systems.CurrentSettings()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		settings = *saved
	}
	if cmd.Flags().Changed("fullscreen") {
		settings.Fullscreen = fullscreen
	}
	if cmd.Flags().Changed("resolution") {
		if resolution < 0 || resolution >= len(config.Settings.Resolutions) {
			return fmt.Errorf("resolution %d out of range 0-%d", resolution, len(config.Settings.Resolutions)-1)
		}
		settings.ResolutionIndex = resolution
	}
	systems.ApplySettings(&settings)

	return ebiten.RunGame(NewGame(scenes.NewCampaign(levels, start)))
}

// loadCampaign loads the embedded levels and resolves --level
func loadCampaign() ([]assets.Level, int, error) {
	levels, err := assets.NewLevelLoader().LoadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("load levels: %w", err)
	}
	if levelID == 0 {
		return levels, 0, nil
	}
	start, err := assets.Find(levels, levelID)
	if err != nil {
		return nil, 0, err
	}
	return levels, start, nil
}

func seed() int64 {
	if config.C.Seed != 0 {
		return config.C.Seed
	}
	return time.Now().UnixNano()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

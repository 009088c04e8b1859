package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/automoto/tacdrill/sim"
	"github.com/automoto/tacdrill/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var (
	accuracy  float64
	duration  time.Duration
	allLevels bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long:  `Play in the terminal. Click to fire, 1-4 to choose an answer, Enter to confirm and Esc to cancel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, start, err := loadCampaign()
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init terminal: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		err = tui.NewApp(screen, seed).Run(ctx, levels, start)
		if errors.Is(err, tui.ErrQuit) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a level headlessly with a scripted player",
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, start, err := loadCampaign()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		end := start + 1
		if allLevels {
			end = len(levels)
		}
		for i := start; i < end; i++ {
			report, err := sim.Run(ctx, levels, i, sim.Options{
				Accuracy: accuracy,
				Duration: duration,
				Seed:     seed(),
			})
			if err != nil {
				return err
			}
			log.Println(report)
		}
		return nil
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate the built-in levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, _, err := loadCampaign()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTARGETS\tPASS\tSOURCE")
		for _, level := range levels {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", level.ID, level.Name, len(level.Questions), level.PassScore, level.Source)
		}
		return w.Flush()
	},
}

func init() {
	simCmd.Flags().Float64Var(&accuracy, "accuracy", 0.8, "Chance the scripted player answers correctly")
	simCmd.Flags().DurationVar(&duration, "duration", 2*time.Minute, "Simulated time limit per level")
	simCmd.Flags().BoolVar(&allLevels, "all", false, "Run every level from --level on")
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

func newScoresCmd(opts *options) *cobra.Command {
	var clearStored bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show or clear the stored score tally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := opts.loadConfig()
			if err != nil {
				return err
			}

			logger, closeLog, err := initLogger(conf)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			scoreRepo, closeStorage, err := app.OpenScoreRepository(ctx, logger, conf)
			if err != nil {
				return err
			}
			defer closeStorage()

			out := cmd.OutOrStdout()

			if clearStored {
				if err = scoreRepo.Clear(ctx); err != nil {
					return fmt.Errorf("could not clear stored scores: %w", err)
				}

				_, _ = fmt.Fprintln(out, "Stored scores cleared.")

				return nil
			}

			score, ok := usecase.StoredScore(ctx, logger, scoreRepo)
			if !ok {
				_, _ = fmt.Fprintln(out, "No stored scores.")

				return nil
			}

			renderScore(out, entity.NewPlayers(conf.Players.X, conf.Players.O), score)

			return nil
		},
	}

	cmd.Flags().BoolVar(&clearStored, "clear", false, "remove the stored tally")

	return cmd
}

func renderScore(out io.Writer, players entity.Players, score entity.Score) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Player", "Wins"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{players.X.Name + " (X)", strconv.Itoa(score.X)})
	table.Append([]string{players.O.Name + " (O)", strconv.Itoa(score.O)})
	table.Append([]string{"Draws", strconv.Itoa(score.Draw)})
	table.SetFooter([]string{"Games", strconv.Itoa(score.Total())})

	table.Render()
}

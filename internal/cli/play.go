package cli

import (
	"ctchen222/noughts-and-crosses/internal/display"
	"ctchen222/noughts-and-crosses/internal/game"
	"ctchen222/noughts-and-crosses/internal/player"
	"ctchen222/noughts-and-crosses/internal/session"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newPlayCmd(opts *options) *cobra.Command {
	var (
		mark   string
		size   int
		pixels bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer",
		Long: `Play one game against the computer.

Enter moves as "x y" cell coordinates, counted from 0 at the top left.
With --pixels, enter screen positions instead; they are mapped onto the
grid using the configured cell size. Type "q" to give up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("mark") {
				cfg.Game.HumanMark = mark
			}
			if cmd.Flags().Changed("size") {
				cfg.Game.BoardSize = size
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			board, err := game.NewBoardSize(cfg.Game.BoardSize)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			layout := cfg.Layout()
			humanMark := cfg.HumanMark()

			var (
				humanOpts    []player.HumanOption
				rendererOpts []display.RendererOption
			)
			if pixels {
				humanOpts = append(humanOpts, player.WithPixelInput(layout))
				rendererOpts = append(rendererOpts, display.WithPixelPositions())
				w, h := layout.Window()
				fmt.Fprintf(out, "Screen is %dx%d pixels\n", w, h)
			}
			human := player.NewHuman(humanMark, cmd.InOrStdin(), out, humanOpts...)
			computer := player.NewComputer(humanMark.Opponent())

			renderer := display.NewTextRenderer(out, layout, rendererOpts...)
			sess, err := session.New(board, human, computer, renderer)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "You are %s. X moves first.\n", humanMark)
			renderer.Draw(board)

			if _, err := sess.Run(ctx); err != nil {
				if errors.Is(err, player.ErrInputClosed) {
					fmt.Fprintln(out, "Game abandoned")
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mark, "mark", "m", "X", "Your mark: X or O (env: TTT_HUMAN_MARK)")
	cmd.Flags().IntVarP(&size, "size", "s", game.DefaultSize, "Board size (env: TTT_BOARD_SIZE)")
	cmd.Flags().BoolVar(&pixels, "pixels", false, "Enter moves as screen pixel positions")

	return cmd
}

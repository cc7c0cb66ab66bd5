package cli

import (
	"ctchen222/noughts-and-crosses/internal/bot"
	"ctchen222/noughts-and-crosses/internal/game"
	"ctchen222/noughts-and-crosses/pkg/proto"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAdviseCmd() *cobra.Command {
	var (
		mark   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "advise <board>",
		Short: "Print the computer's move for a board",
		Long: `Print the move the computer would make on a board.

The board is given as rows separated by '/', using X, O and '.' for an
empty cell, e.g. "XX./OO./...". Without --mark the side to move is worked
out from the number of marks on the board.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := game.ParseBoard(args[0])
			if err != nil {
				return err
			}

			m := board.Turn()
			if mark != "" {
				if m, err = game.ParseMark(mark); err != nil {
					return err
				}
			}

			advisor := bot.NewAdvisor(board, m)
			cell, rule, err := advisor.Decide(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			advice := proto.AdviceMessage{
				Board: strings.ReplaceAll(board.String(), "\n", "/"),
				Mark:  m,
				Cell:  cell,
				Rule:  rule,
				Score: advisor.Score(cell),
			}
			if output == "json" {
				data, err := json.Marshal(advice)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintf(out, "%s plays %d %d (%s)\n", advice.Mark, cell.X, cell.Y, rule)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mark, "mark", "m", "", "Mark to move: X or O")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json")

	return cmd
}

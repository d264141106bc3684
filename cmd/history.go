package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mpq-cli/mpq/history"
	"github.com/mpq-cli/mpq/icon"
	"github.com/mpq-cli/mpq/style"
	"github.com/mpq-cli/mpq/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringP("search", "s", "", "Fuzzy search titles and URIs")
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most this many entries, newest first")
	historyCmd.Flags().Bool("clear", false, "Delete every entry")
	historyCmd.MarkFlagsMutuallyExclusive("search", "clear")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished items",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			search = lo.Must(cmd.Flags().GetString("search"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			limit  = lo.Must(cmd.Flags().GetInt("limit"))
			wipe   = lo.Must(cmd.Flags().GetBool("clear"))
			store  = history.Open()
		)

		if wipe {
			confirmed := true
			if term.IsTerminal(int(os.Stdin.Fd())) {
				handleErr(survey.AskOne(&survey.Confirm{
					Message: "Delete every history entry?",
				}, &confirmed))
			}
			if !confirmed {
				return
			}

			handleErr(store.Clear())
			fmt.Printf("%s history cleared\n", style.Fg(style.Green)(icon.Get(icon.Success)))
			return
		}

		var (
			entries []*history.Entry
			err     error
		)
		if search != "" {
			entries, err = store.Search(search)
		} else {
			entries, err = store.Get()
			entries = lo.Reverse(append([]*history.Entry(nil), entries...))
		}
		handleErr(err)

		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("no entries"))
			return
		}

		for _, entry := range entries {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(entry.PlayedAt.Format("2006-01-02 15:04")),
				style.Fg(style.Purple)(entry.String()),
				style.Faint(entry.URI),
			)
		}
		cmd.Println(style.Faint(util.Quantify(len(entries), "entry", "entries")))
	},
}

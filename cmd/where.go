package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mpq-cli/mpq/config"
	"github.com/mpq-cli/mpq/constant"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/style"
	"github.com/mpq-cli/mpq/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is one thing `mpq where` can point at: a directory or file
// mpq writes, or an executable it launches.
type location struct {
	name   string
	flag   string
	short  string
	hidden bool
	find   func(player.Options) string
}

var locations = []location{
	{name: "Config", flag: "config", short: "c", find: func(player.Options) string { return where.Config() }},
	{name: "Logs", flag: "logs", short: "l", find: func(player.Options) string { return where.Logs() }},
	{name: "History", flag: "history", short: "H", find: func(player.Options) string { return where.History() }},
	{name: "Player", flag: "player", short: "p", find: playerBinary},
	{name: "Temp", flag: "temp", hidden: true, find: func(player.Options) string { return where.Temp() }},
}

// playerBinary resolves what `mpq play` would execute under opts. For
// remote playback the local side only runs ssh; the player is resolved on
// the remote host.
func playerBinary(opts player.Options) string {
	binary := lo.Ternary(opts.Binary == "", constant.MPlayer, opts.Binary)

	if opts.Remote {
		ssh, err := exec.LookPath(constant.SSH)
		if err != nil {
			return fmt.Sprintf("%s not found in PATH", constant.SSH)
		}
		return fmt.Sprintf("%s (%s on %s)", ssh, binary, lo.Ternary(opts.RemoteHost == "", "?", opts.RemoteHost))
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Sprintf("%s not found in PATH", binary)
	}
	return path
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		if l.short != "" {
			whereCmd.Flags().BoolP(l.flag, l.short, false, l.name+" path")
		} else {
			whereCmd.Flags().Bool(l.flag, false, l.name+" path")
		}
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string { return l.flag })...)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where mpq keeps its files and which player it runs",
	Run: func(cmd *cobra.Command, args []string) {
		opts := config.PlayerOptions()

		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.find(opts))
				return
			}
		}

		printLocations(cmd.OutOrStdout(), opts)
	},
}

func printLocations(out io.Writer, opts player.Options) {
	header := style.New().Bold(true).Foreground(style.Purple).Render

	visible := lo.Reject(locations, func(l location, _ int) bool { return l.hidden })
	for i, l := range visible {
		fmt.Fprintf(out, "%s %s\n", header(l.name+"?"), style.Fg(style.Yellow)("--"+l.flag))
		fmt.Fprintln(out, l.find(opts))

		if i < len(visible)-1 {
			fmt.Fprintln(out)
		}
	}
}

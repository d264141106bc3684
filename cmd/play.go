package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mpq-cli/mpq/config"
	"github.com/mpq-cli/mpq/history"
	"github.com/mpq-cli/mpq/icon"
	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/session"
	"github.com/mpq-cli/mpq/style"
	"github.com/mpq-cli/mpq/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("stdin", false, "Keep reading URIs from stdin, one per line")
	playCmd.Flags().Bool("plain", false, "Print events instead of the now-playing view")

	playCmd.Flags().StringP("remote", "r", "", "Play on this ssh host")
	lo.Must0(viper.BindPFlag(key.PlayerRemoteHost, playCmd.Flags().Lookup("remote")))

	playCmd.Flags().StringP("binary", "b", "", "Player executable")
	lo.Must0(viper.BindPFlag(key.PlayerBinary, playCmd.Flags().Lookup("binary")))

	playCmd.Flags().BoolP("quiet", "q", false, "Do not log player stderr")
	lo.Must0(viper.BindPFlag(key.PlayerQuiet, playCmd.Flags().Lookup("quiet")))

	playCmd.Flags().Bool("no-autoplay", false, "Play only the first item")
}

var playCmd = &cobra.Command{
	Use:   "play [uri...]",
	Short: "Queue and play files, URLs and streams",
	Example: "  mpq play ~/music/*.mp3\n" +
		"  mpq play --remote livingroom movie.mkv\n" +
		"  find . -name '*.ogg' | mpq play --stdin --plain",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			stdin      = lo.Must(cmd.Flags().GetBool("stdin"))
			plain      = lo.Must(cmd.Flags().GetBool("plain"))
			noAutoplay = lo.Must(cmd.Flags().GetBool("no-autoplay"))
		)

		if len(args) == 0 && !stdin {
			uri, err := askURI()
			handleErr(err)
			args = []string{uri}
		}

		if cmd.Flags().Changed("remote") {
			viper.Set(key.PlayerRemote, true)
		}

		playerOptions := config.PlayerOptions()
		CheckDependencies(playerOptions)

		opts := session.Options{
			URIs:     args,
			AutoPlay: viper.GetBool(key.PlayerAutoplay) && !noAutoplay,
			Player:   playerOptions,
		}
		if stdin {
			opts.Input = os.Stdin
		}
		if viper.GetBool(key.HistorySave) {
			opts.History = history.Open()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// the now-playing view needs the terminal, stdin included
		if plain || stdin {
			opts.OnEvent = printEvent
			opts.OnError = printError
			err := session.New(opts).Run(ctx)
			if !errors.Is(err, context.Canceled) {
				handleErr(err)
			}
			return
		}

		handleErr(tui.Run(ctx, opts))
	},
}

// askURI prompts for a single item when nothing was given on the command line.
func askURI() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("nothing to play: pass URIs or --stdin")
	}

	var uri string
	err := survey.AskOne(&survey.Input{
		Message: "What to play?",
		Help:    "A file path or a URL mplayer can open",
	}, &uri, survey.WithValidator(survey.Required))

	return strings.TrimSpace(uri), err
}

func printEvent(e player.Event) {
	item, ok := e.Item.Get()
	if !ok {
		return
	}

	switch e.Kind {
	case player.Played:
		fmt.Printf("%s %s\n", style.Fg(style.Green)(icon.Get(icon.Play)), item)
	case player.Stopped:
		line := fmt.Sprintf("%s %s", icon.Get(icon.Stop), item)
		if title, ok := e.Metadata.String("title").Get(); ok {
			line += " " + style.Faint("("+title+")")
		}
		if e.Err != nil {
			line += " " + style.Fg(style.Yellow)(e.Err.Error())
		}
		fmt.Println(style.Faint(line))
	}
}

func printError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.Red)(icon.Get(icon.Fail)), err)
}

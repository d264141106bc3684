package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mpq-cli/mpq/config"
	"github.com/mpq-cli/mpq/constant"
	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/icon"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/playlist"
	"github.com/mpq-cli/mpq/style"
	"github.com/mpq-cli/mpq/util"
	"github.com/mpq-cli/mpq/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configFile() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

func errUnknownKey(k string) error {
	return fmt.Errorf(
		"%w %s, did you mean %s?",
		config.ErrUnknownKey,
		style.Fg(style.Red)(k),
		style.Fg(style.Yellow)(config.Suggest(k)),
	)
}

// lookupField exits on keys nobody registered.
func lookupField(k string) config.Field {
	field, ok := config.Default[k]
	if !ok {
		handleErr(errUnknownKey(k))
	}
	return field
}

// keyArg takes the key from the first argument or from --key.
func keyArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if k := lo.Must(cmd.Flags().GetString("key")); k != "" {
		return k
	}
	handleErr(errors.New("key is required as an argument or --key flag"))
	return ""
}

func saveConfig() {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = viper.SafeWriteConfig()
	}
	handleErr(err)
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe")
	configInfoCmd.Flags().StringP("section", "s", "", "Only describe keys of this section, e.g. player")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	configInfoCmd.Flags().BoolP("effective", "e", false, "Show the options the player would be started with")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	_ = configInfoCmd.RegisterFlagCompletionFunc("section", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Uniq(lo.Map(lo.Keys(config.Default), func(k string, _ int) string { return config.Section(k) })), cobra.ShellCompDirectiveNoFileComp
	})

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields, grouped by section",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		if lo.Must(cmd.Flags().GetBool("effective")) {
			opts := config.PlayerOptions()
			if asJson {
				lo.Must0(json.NewEncoder(out).Encode(opts))
				return
			}
			fmt.Fprintln(out, renderPlayerOptions(opts))
			return
		}

		fields := selectFields(
			lo.Must(cmd.Flags().GetStringSlice("key")),
			lo.Must(cmd.Flags().GetString("section")),
		)

		if asJson {
			lo.Must0(json.NewEncoder(out).Encode(fields))
			return
		}

		printSections(out, fields)
	},
}

func selectFields(keys []string, section string) []config.Field {
	var fields []config.Field
	if len(keys) > 0 {
		fields = lo.Map(keys, func(k string, _ int) config.Field { return lookupField(k) })
	} else {
		fields = lo.Values(config.Default)
	}

	if section != "" {
		fields = lo.Filter(fields, func(f config.Field, _ int) bool { return config.Section(f.Key) == section })
		if len(fields) == 0 {
			handleErr(fmt.Errorf("no keys in section %q", section))
		}
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}

func printSections(out io.Writer, fields []config.Field) {
	sections := lo.GroupBy(fields, func(f config.Field) string { return config.Section(f.Key) })
	names := lo.Keys(sections)
	sort.Strings(names)

	for i, name := range names {
		fmt.Fprintln(out, style.Title(strings.ToUpper(name)))
		for _, field := range sections[name] {
			fmt.Fprintln(out)
			fmt.Fprintln(out, field.Pretty())
		}
		if i < len(names)-1 {
			fmt.Fprintln(out)
		}
	}
}

// renderPlayerOptions shows opts and the command line they produce.
func renderPlayerOptions(opts player.Options) string {
	label := style.Fg(style.Blue)
	row := func(name string, value any) string {
		return fmt.Sprintf("%s %v", label(fmt.Sprintf("%-12s", name+":")), value)
	}

	rows := []string{
		style.Title("Player"),
		"",
		row("Binary", lo.Ternary(opts.Binary == "", constant.MPlayer, opts.Binary)),
		row("Args", strings.Join(opts.Args, " ")),
		row("Remote", opts.Remote),
	}
	if opts.Remote {
		rows = append(rows, row("Host", opts.RemoteHost), row("Display", opts.Display))
	}
	rows = append(rows,
		row("Quiet", opts.Quiet),
		row("Modules", strings.Join(opts.Modules, ", ")),
		"",
	)

	name, argv, err := player.Command(playlist.NewItem("media.mkv"), opts)
	if err != nil {
		rows = append(rows, style.Fg(style.Red)(err.Error()))
	} else {
		rows = append(rows, label("Runs:"), style.Faint(name+" "+strings.Join(argv, " ")))
	}

	return style.Box(style.Accent)(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The configuration key to set")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value...]",
	Short: "Set a configuration value",
	Long: "Set a configuration value.\n" +
		"List keys such as player.args and player.modules take every remaining word.",
	Example: "  mpq config set player.remote_host livingroom\n" +
		"  mpq config set player.args -- -vo null",
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := lo.Must(cmd.Flags().GetString("key"))
		if k == "" {
			k = keyArg(cmd, args)
			args = args[1:]
		}
		lookupField(k)

		value, err := config.Parse(k, args)
		handleErr(err)

		viper.Set(k, value)
		saveConfig()

		success("set %s to %s", style.Fg(style.Purple)(k), style.Fg(style.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to print")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k := keyArg(cmd, args)
		lookupField(k)
		fmt.Println(viper.Get(k))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		success("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The key to reset")
	configResetCmd.Flags().StringP("section", "s", "", "Reset every key of this section")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "section", "all")
	configResetCmd.MarkFlagsOneRequired("key", "section", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration values to their defaults",
	Run: func(cmd *cobra.Command, args []string) {
		var fields []config.Field
		switch {
		case lo.Must(cmd.Flags().GetBool("all")):
			fields = lo.Values(config.Default)
		case cmd.Flags().Changed("section"):
			fields = selectFields(nil, lo.Must(cmd.Flags().GetString("section")))
		default:
			fields = []config.Field{lookupField(lo.Must(cmd.Flags().GetString("key")))}
		}

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		saveConfig()

		if len(fields) == 1 {
			success("reset %s to %s", style.Fg(style.Purple)(fields[0].Key), style.Fg(style.Yellow)(fmt.Sprint(fields[0].Value)))
			return
		}
		success("reset %s", util.Quantify(len(fields), "key", "keys"))
	},
}

// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/mpq-cli/mpq/key"
	"github.com/spf13/viper"
)

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota + 1
	Stop
	Pause
	Queue
	Auto
	Remote
	History
	Success
	Fail
	Mark
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the values accepted by icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Play:    {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(ﾉ◕ヮ◕)ﾉ", squares: "▶"},
	Stop:    {emoji: "⏹️", nerd: "", plain: "#", kaomoji: "(－_－)", squares: "■"},
	Pause:   {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(´-ω-`)", squares: "▮▮"},
	Queue:   {emoji: "📜", nerd: "", plain: "+", kaomoji: "(・ω・)つ", squares: "▤"},
	Auto:    {emoji: "🔁", nerd: "", plain: "@", kaomoji: "(◎_◎;)", squares: "◈"},
	Remote:  {emoji: "📡", nerd: "", plain: "~", kaomoji: "(｀・ω・´)ゞ", squares: "◇"},
	History: {emoji: "🕓", nerd: "", plain: "h", kaomoji: "(￣ー￣)", squares: "▣"},
	Success: {emoji: "✅", nerd: "", plain: "ok", kaomoji: "(ᵔᴥᵔ)", squares: "▪"},
	Fail:    {emoji: "❌", nerd: "", plain: "x", kaomoji: "(╯°□°）╯", squares: "□"},
	Mark:    {emoji: "✨", nerd: "", plain: "*", kaomoji: "(☆▽☆)", squares: "◆"},
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}

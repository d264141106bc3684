package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mpq-cli/mpq/icon"
	"github.com/mpq-cli/mpq/output"
	"github.com/mpq-cli/mpq/style"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// metadataShown are the metadata paths listed under the title, in order.
var metadataShown = [][]string{
	{"artist"},
	{"album"},
	{"genre"},
	{"year"},
	{"video", "format"},
	{"audio", "codec"},
}

func (b *bubble) View() string {
	lines := []string{b.header(), ""}

	if item, ok := b.nowPlaying.Get(); ok {
		state := b.spinnerC.View()
		if b.paused {
			state = icon.Get(icon.Pause)
		}

		lines = append(lines,
			style.Truncate(b.width)(state+" "+style.Fg(style.Accent)(title(b.metadata, item.URI))),
		)
		if item.Host != "" {
			lines = append(lines, style.Faint(icon.Get(icon.Remote)+" on "+item.Host))
		}
		lines = append(lines, b.viewMetadata()...)
		lines = append(lines, "", b.viewProgress())
	} else {
		lines = append(lines, style.Faint(icon.Get(icon.Stop)+" nothing playing"))
	}

	lines = append(lines, "")
	lines = append(lines, b.viewQueue()...)

	if b.lastError != nil {
		lines = append(lines, "", wrap.String(style.Fg(style.Danger)(icon.Get(icon.Fail)+" "+b.lastError.Error()), b.width))
	}

	return b.renderLines(lines)
}

func (b *bubble) header() string {
	auto := style.Faint("autoplay off")
	if b.autoPlaying {
		auto = style.Fg(style.Good)(icon.Get(icon.Auto) + " autoplay")
	}
	return style.Title("Now Playing") + " " + auto + " " + style.Faint(fmt.Sprintf("%d played", b.played))
}

func (b *bubble) viewMetadata() []string {
	var lines []string
	for _, path := range metadataShown {
		if v, ok := b.metadata.String(path...).Get(); ok && v != "" {
			label := strings.Join(path, " ") + ": "
			lines = append(lines, wrap.String(style.Fg(style.Subtle)(label)+v, b.width))
		}
	}
	return lines
}

func (b *bubble) viewProgress() string {
	position := b.status.Position.Audio.OrElse(b.status.Position.Video.OrEmpty())
	length, ok := b.length()
	if !ok {
		return style.Faint(clock(position))
	}

	return b.progressC.View() + " " + style.Faint(clock(position)+" / "+clock(length))
}

func (b *bubble) viewQueue() []string {
	if len(b.pending) == 0 {
		return []string{style.Faint(icon.Get(icon.Queue) + " queue empty")}
	}

	lines := []string{style.Bold(fmt.Sprintf("%s Up next (%d)", icon.Get(icon.Queue), len(b.pending)))}
	for i, item := range lo.Subset(b.pending, 0, queueShown) {
		lines = append(lines, style.Truncate(b.width)(fmt.Sprintf("%d. %s", i+1, item)))
	}
	if len(b.pending) > queueShown {
		lines = append(lines, style.Faint(fmt.Sprintf("... and %d more", len(b.pending)-queueShown)))
	}
	return lines
}

func (b *bubble) renderLines(lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if b.height > h+1 {
		l += strings.Repeat("\n", b.height-h-1)
	}
	l += "\n" + b.helpC.View(b.keymap)

	return paddingStyle.Render(l)
}

// percent is the played fraction of the current item, 0 when unknown.
func (b *bubble) percent() float64 {
	length, ok := b.length()
	if !ok || length <= 0 {
		return 0
	}

	position := b.status.Position.Audio.OrElse(b.status.Position.Video.OrEmpty())
	return lo.Clamp(position/length, 0, 1)
}

func (b *bubble) length() (float64, bool) {
	raw, ok := b.metadata.String("length").Get()
	if !ok {
		return 0, false
	}
	length, err := strconv.ParseFloat(raw, 64)
	return length, err == nil
}

// title prefers the reported title over the locator.
func title(meta output.Metadata, uri string) string {
	if t, ok := meta.String("title").Get(); ok && t != "" {
		return t
	}
	return uri
}

// clock formats seconds as h:mm:ss or m:ss.
func clock(seconds float64) string {
	total := int(lo.Max([]float64{seconds, 0}))
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

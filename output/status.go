package output

import (
	"regexp"
	"strconv"

	"github.com/samber/mo"
)

var (
	audioPattern = regexp.MustCompile(`A:\s*(-?\d+(?:\.\d+)?)`)
	videoPattern = regexp.MustCompile(`V:\s*(-?\d+(?:\.\d+)?)`)
)

// Position holds the elapsed seconds reported for each stream, when reported.
type Position struct {
	Audio mo.Option[float64] `json:"audio"`
	Video mo.Option[float64] `json:"video"`
}

// Status is the playback state derived from the last status line.
type Status struct {
	Position Position `json:"position"`
}

// ParseStatus extracts the audio and video markers independently; a marker
// that is missing or unparsable is None.
func ParseStatus(line string) Status {
	return Status{
		Position: Position{
			Audio: marker(audioPattern, line),
			Video: marker(videoPattern, line),
		},
	}
}

func marker(pattern *regexp.Regexp, line string) mo.Option[float64] {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return mo.None[float64]()
	}

	f, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(f)
}

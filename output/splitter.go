package output

// Splitter reassembles lines from arbitrarily cut stream chunks. Both '\n'
// and '\r' terminate a line, since mplayer rewrites its status line in place.
type Splitter struct {
	rest []byte
}

// Feed consumes chunk and returns every line it completes. Empty lines are dropped.
func (s *Splitter) Feed(chunk []byte) []string {
	data := append(s.rest, chunk...)

	var (
		lines []string
		start int
	)
	for i, c := range data {
		if c != '\n' && c != '\r' {
			continue
		}
		if i > start {
			lines = append(lines, string(data[start:i]))
		}
		start = i + 1
	}

	s.rest = append([]byte(nil), data[start:]...)
	return lines
}

// Flush returns the unterminated tail, if any, and resets the splitter.
func (s *Splitter) Flush() (string, bool) {
	if len(s.rest) == 0 {
		return "", false
	}
	line := string(s.rest)
	s.rest = nil
	return line, true
}

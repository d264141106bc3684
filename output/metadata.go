package output

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Metadata is the nested view of IDENTIFY output: ID_VIDEO_WIDTH=640
// becomes {"video": {"width": "640"}}.
type Metadata map[string]any

// BuildMetadata folds KEY=VALUE lines into Metadata. Keys are lower-cased and
// split on '_', a leading "id" segment is dropped, and later paths overwrite
// earlier ones.
func BuildMetadata(lines []string) Metadata {
	md := make(Metadata)

	for _, line := range lines {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		path := lo.Compact(strings.Split(strings.ToLower(strings.TrimSpace(k)), "_"))
		if len(path) > 0 && path[0] == "id" {
			path = path[1:]
		}
		if len(path) == 0 {
			continue
		}

		md.set(path, v)
	}

	return md
}

func (m Metadata) set(path []string, value string) {
	node := m
	for _, segment := range path[:len(path)-1] {
		child, ok := node[segment].(Metadata)
		if !ok {
			child = make(Metadata)
			node[segment] = child
		}
		node = child
	}
	node[path[len(path)-1]] = value
}

// String looks up a leaf value by path.
func (m Metadata) String(path ...string) mo.Option[string] {
	if len(path) == 0 {
		return mo.None[string]()
	}

	node := m
	for _, segment := range path[:len(path)-1] {
		child, ok := node[segment].(Metadata)
		if !ok {
			return mo.None[string]()
		}
		node = child
	}

	value, ok := node[path[len(path)-1]].(string)
	return mo.TupleToOption(value, ok)
}

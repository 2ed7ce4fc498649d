package ocr

import (
	"sort"
	"strings"
)

// Flatten renders one text block per fragment, in fragment order, substituting
// every occurrence of every placeholder key in the fragment text with its
// resolved image URL. Keys are matched literally. Keys that never occur in the
// text are ignored; an empty-text fragment yields an empty block.
func Flatten(results []LayoutResult) []string {
	blocks := make([]string, 0, len(results))
	for _, res := range results {
		blocks = append(blocks, substitute(res.Markdown.Text, res.Markdown.Images))
	}
	return blocks
}

func substitute(text string, images map[string]string) string {
	if len(images) == 0 {
		return text
	}
	// Longest keys first, so a key that has another key as a prefix is
	// substituted before the shorter one can clobber it. Also makes the
	// result independent of map iteration order.
	keys := make([]string, 0, len(images))
	for key := range images {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		text = strings.ReplaceAll(text, key, images[key])
	}
	return text
}

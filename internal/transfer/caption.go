package transfer

import (
	"sort"
	"strings"
)

// ApplyCaptionRules replaces every key of replacements with its value, then drops
// whitespace-separated words listed in deletes. Dropping words re-joins the text
// with single spaces.
func ApplyCaptionRules(text string, replacements map[string]string, deletes []string) string {
	if text == "" {
		return ""
	}
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	// longer keys first so overlapping rules resolve the same way every time
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		text = strings.ReplaceAll(text, k, replacements[k])
	}
	if len(deletes) == 0 {
		return text
	}
	drop := make(map[string]struct{}, len(deletes))
	for _, w := range deletes {
		drop[w] = struct{}{}
	}
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, ok := drop[w]; !ok {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// BuildCaption appends the user's suffix to the processed source caption.
func BuildCaption(processed, suffix string) string {
	switch {
	case processed != "" && suffix != "":
		return processed + "\n\n" + suffix
	case suffix != "":
		return suffix
	}
	return processed
}

package summarize

import (
	"encoding/json"
	"strings"
)

// ParseStringArray recovers a string list from LLM output. Models are asked
// for a JSON array but routinely wrap it in code fences, prepend prose, or
// fall back to plain lists, so parsing degrades gracefully:
//
//  1. strict JSON array, after stripping code fences
//  2. the bracketed substring, if the array is embedded in prose
//  3. line/comma splitting with bullet and quote trimming
//
// Items are trimmed and de-duplicated; empties are dropped.
func ParseStringArray(raw string) []string {
	text := stripCodeFences(raw)

	if items, ok := tryJSONArray(text); ok {
		return cleanItems(items)
	}
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		if items, ok := tryJSONArray(text[start : end+1]); ok {
			return cleanItems(items)
		}
	}

	// Last resort: treat it as a plain list.
	var items []string
	for _, line := range strings.Split(text, "\n") {
		for _, part := range strings.Split(line, ",") {
			items = append(items, part)
		}
	}
	return cleanItems(items)
}

func tryJSONArray(text string) ([]string, bool) {
	var items []string
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}
	return items, true
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		first := strings.TrimSpace(text[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "[]{}\"") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func cleanItems(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.TrimSpace(item)
		s = strings.TrimLeft(s, "-*•0123456789. ")
		s = strings.Trim(s, `"'`)
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStringArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"plain json array",
			`["go", "databases", "testing"]`,
			[]string{"go", "databases", "testing"},
		},
		{
			"fenced with language tag",
			"```json\n[\"go\", \"databases\"]\n```",
			[]string{"go", "databases"},
		},
		{
			"fenced without language tag",
			"```\n[\"go\"]\n```",
			[]string{"go"},
		},
		{
			"array embedded in prose",
			`Here are the tags you asked for: ["go", "testing"] — hope that helps!`,
			[]string{"go", "testing"},
		},
		{
			"bulleted list fallback",
			"- go\n- databases\n- testing",
			[]string{"go", "databases", "testing"},
		},
		{
			"numbered list fallback",
			"1. go\n2. databases",
			[]string{"go", "databases"},
		},
		{
			"comma separated fallback",
			"go, databases, testing",
			[]string{"go", "databases", "testing"},
		},
		{
			"quoted plain items",
			"\"go\"\n'databases'",
			[]string{"go", "databases"},
		},
		{
			"dedupes case insensitively keeping first",
			`["Go", "go", "databases"]`,
			[]string{"Go", "databases"},
		},
		{
			"drops empties",
			`["go", "", "  "]`,
			[]string{"go"},
		},
		{
			"empty input",
			"",
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStringArray(tt.raw))
		})
	}
}

func TestCacheKeys(t *testing.T) {
	t.Run("url key ignores surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, CacheKeyForURL("https://example.com"), CacheKeyForURL("  https://example.com  "))
	})
	t.Run("different urls differ", func(t *testing.T) {
		assert.NotEqual(t, CacheKeyForURL("https://example.com/a"), CacheKeyForURL("https://example.com/b"))
	})
	t.Run("bytes key is content addressed", func(t *testing.T) {
		assert.Equal(t, CacheKeyForBytes([]byte("doc")), CacheKeyForBytes([]byte("doc")))
		assert.NotEqual(t, CacheKeyForBytes([]byte("doc")), CacheKeyForBytes([]byte("doc2")))
	})
	t.Run("keys are hex sha256", func(t *testing.T) {
		assert.Len(t, CacheKeyForURL("https://example.com"), 64)
		assert.Len(t, ContentHash("body text"), 64)
	})
}

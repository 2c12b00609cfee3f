package giphy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGifID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain id path", "https://giphy.com/embed/abc123XYZ", "abc123XYZ"},
		{"slugged url", "https://giphy.com/gifs/funny-dog-wow-3o7aCRloybJlXpNjSU", "3o7aCRloybJlXpNjSU"},
		{"media url", "https://media.giphy.com/media/xT9IgzoKnwFNmISR8I/giphy.gif", "gif"},
		{"schemeless", "giphy.com/gifs/cat-JIX9t2j0ZTN9S", "JIX9t2j0ZTN9S"},
		{"trailing slash", "https://giphy.com/gifs/keyword-abc123/", "abc123"},
		{"no path", "https://giphy.com", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractGifID(tt.url))
		})
	}
}

func TestEnsureProtocol(t *testing.T) {
	assert.Equal(t, "https://giphy.com/gifs/abc", EnsureProtocol("giphy.com/gifs/abc"))
	assert.Equal(t, "https://giphy.com/gifs/abc", EnsureProtocol("https://giphy.com/gifs/abc"))
	assert.Equal(t, "http://giphy.com/gifs/abc", EnsureProtocol("http://giphy.com/gifs/abc"))
	assert.Equal(t, "https://giphy.com", EnsureProtocol("  giphy.com  "))
	assert.Equal(t, "", EnsureProtocol(""))
}

func TestEmbedAndThumbnailURLs(t *testing.T) {
	assert.Equal(t, "https://giphy.com/embed/abc123", EmbedURL("abc123"))
	assert.Equal(t, "https://media.giphy.com/media/abc123/giphy.gif", ThumbnailURL("abc123"))
}

func TestDogeComment(t *testing.T) {
	t.Run("seeds from content words", func(t *testing.T) {
		comment := DogeComment("Dancing Banana Party")
		assert.Contains(t, comment, "dancing")
		// Filler words anchor on the first content word.
		assert.Contains(t, comment, "such dancing")
	})

	t.Run("short words are dropped", func(t *testing.T) {
		comment := DogeComment("a an it")
		assert.NotContains(t, comment, " a ")
		assert.Contains(t, comment, "wow")
	})

	t.Run("empty content still produces a comment", func(t *testing.T) {
		comment := DogeComment("")
		assert.NotEmpty(t, comment)
		assert.Contains(t, comment, "such wow")
	})

	t.Run("never longer than six parts", func(t *testing.T) {
		comment := DogeComment("alpha bravo charlie delta echo foxtrot golf hotel")
		assert.LessOrEqual(t, len(strings.Split(comment, " ")), 6)
	})
}

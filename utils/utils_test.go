package utils_test

import (
	"testing"

	"github.com/lpoto/memsther/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?query=1",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	for _, url := range valid {
		assert.True(t, utils.IsURL(url), url)
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com",
		"just some text",
	}
	for _, url := range invalid {
		assert.False(t, utils.IsURL(url), url)
	}
}

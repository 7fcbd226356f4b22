package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeKey("  Hello   World  "))
	assert.Equal(t, "hello world", NormalizeKey("Hello\tWorld"))
	assert.Equal(t, "hello world", NormalizeKey("hello world"))
}

func TestNormalizeKey_Blank(t *testing.T) {
	assert.Equal(t, "", NormalizeKey(""))
	assert.Equal(t, "", NormalizeKey("   "))
	assert.Equal(t, "", NormalizeKey("\t\n"))
}

func TestNormalizeKey_Unicode(t *testing.T) {
	// Case folding, не просто ToLower: ß сворачивается в ss.
	assert.Equal(t, NormalizeKey("GRÜSSE"), NormalizeKey("Grüße"))
	assert.Equal(t, NormalizeKey("ПРИВЕТ"), NormalizeKey("привет"))
}

func TestNormalizeKey_LiteralTokens(t *testing.T) {
	// "None" и "N/A" - обычные ключи, не пропуски.
	assert.Equal(t, "none", NormalizeKey("None"))
	assert.Equal(t, "n/a", NormalizeKey("N/A"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSlug(t *testing.T) {
	assert.Equal(t, "basmati-rice-1121", ToSlug("Basmati Rice 1121"))
	assert.Equal(t, "basmati-special", ToSlug("  Bāsmatī  Special!! "))
	assert.Equal(t, "a-b", ToSlug("__a--b__"))
	assert.Equal(t, "", ToSlug("   "))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", Capitalize("hELLO"))
	assert.Equal(t, "Paddy", Capitalize("paddy"))
	assert.Equal(t, "", Capitalize(""))
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Sona Masoori Rice", ToTitleCase("sona masoori rice"))
	assert.Equal(t, "Hello World", ToTitleCase("HELLO world"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Hello...", Truncate("Hello World", 8))
	assert.Equal(t, "Hi", Truncate("Hi", 8))
	assert.Equal(t, "Hello World", Truncate("Hello World", 11))
	assert.Equal(t, "Hello~", Truncate("Hello World", 6, "~"))
	assert.Equal(t, "He", Truncate("Hello", 2))
	assert.Equal(t, "", Truncate("Hello", 0))
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CleanWhitespace("  a   b \n c "))
	assert.Equal(t, "", CleanWhitespace(" \t "))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "123****890", Mask("1234567890", 3, 3))
	assert.Equal(t, "12345", Mask("12345", 3, 3))
	assert.Equal(t, "******7890", Mask("1234567890", 0, 4))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("accounts@mill.co"))
	assert.False(t, IsValidEmail("accounts@mill"))
	assert.False(t, IsValidEmail("accounts mill@x.com"))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("9876543210"))
	assert.True(t, IsValidMobile("6000000000"))
	assert.False(t, IsValidMobile("5876543210"))
	assert.False(t, IsValidMobile("987654321"))
	assert.False(t, IsValidMobile("+919876543210"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ramesh kumar", NormalizeName("  Ramesh   KUMAR "))
}

func TestFormatNameForDisplay(t *testing.T) {
	assert.Equal(t, "Ramesh Kumar", FormatNameForDisplay("ramesh   kumar"))
	assert.Equal(t, "", FormatNameForDisplay("  "))
}

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "Sri_Lakshmi__Report_.xlsx", CleanFileName("Sri Lakshmi: Report?.xlsx"))
}

package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars  = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators    = regexp.MustCompile(`[\s_-]+`)
	fileNameInvalid   = regexp.MustCompile(`[<>:"/\\|?*]`)
	fileNameSpaces    = regexp.MustCompile(`\s+`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	indianMobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// foldDiacritics strips combining marks so "Bāsmatī" becomes "Basmati"
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// ToSlug converts text to a lowercase, dash-separated URL slug
func ToSlug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(foldDiacritics(s)))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Capitalize upper-cases the first letter and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// ToTitleCase capitalizes every word
func ToTitleCase(s string) string {
	// Casers keep state and must not be shared between goroutines.
	return cases.Title(language.English).String(s)
}

// Truncate shortens s to at most length runes including the suffix, which defaults to "..."
func Truncate(s string, length int, suffix ...string) string {
	ellipsis := "..."
	if len(suffix) > 0 {
		ellipsis = suffix[0]
	}
	if length <= 0 {
		return ""
	}

	chars := []rune(s)
	if len(chars) <= length {
		return s
	}

	keep := length - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return string(chars[:length])
	}
	return string(chars[:keep]) + ellipsis
}

// CleanWhitespace trims s and collapses internal runs of whitespace to single spaces
func CleanWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Mask hides the middle of s behind '*', keeping visibleStart leading and visibleEnd trailing runes.
// Strings no longer than visibleStart+visibleEnd are returned unchanged.
func Mask(s string, visibleStart, visibleEnd int) string {
	visibleStart = max(visibleStart, 0)
	visibleEnd = max(visibleEnd, 0)

	chars := []rune(s)
	if len(chars) <= visibleStart+visibleEnd {
		return s
	}

	hidden := len(chars) - visibleStart - visibleEnd
	return string(chars[:visibleStart]) + strings.Repeat("*", hidden) + string(chars[len(chars)-visibleEnd:])
}

// IsValidEmail checks the structural shape of an email address
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidMobile checks for a 10 digit Indian mobile number starting with 6-9
func IsValidMobile(mobile string) bool {
	return indianMobileRegex.MatchString(mobile)
}

// NormalizeName converts a party name to lowercase with single spaces for storage consistency
func NormalizeName(name string) string {
	return strings.ToLower(CleanWhitespace(name))
}

// FormatNameForDisplay converts a normalized name to title case for display
func FormatNameForDisplay(name string) string {
	name = CleanWhitespace(name)
	if name == "" {
		return ""
	}
	return ToTitleCase(name)
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	cleaned := fileNameInvalid.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return fileNameSpaces.ReplaceAllString(cleaned, "_")
}

package inflect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CasingPattern classifies how a word is capitalized.
type CasingPattern int

const (
	// PatternLower is an all-lowercase word such as "child".
	PatternLower CasingPattern = iota
	// PatternUpper is an all-uppercase word such as "CHILD".
	PatternUpper
	// PatternCapitalized has an uppercase first letter and a lowercase rest, such as "Child".
	PatternCapitalized
	// PatternMixed is any other casing, such as "ChilD".
	PatternMixed
)

// String returns the pattern name.
func (p CasingPattern) String() string {
	switch p {
	case PatternLower:
		return "lower"
	case PatternUpper:
		return "upper"
	case PatternCapitalized:
		return "capitalized"
	case PatternMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// DetectPattern classifies word. The empty string is PatternLower. A word
// without cased letters, such as "42", is PatternUpper because uppercasing
// leaves it unchanged.
func DetectPattern(word string) CasingPattern {
	if word == "" {
		return PatternLower
	}
	if word == strings.ToUpper(word) {
		return PatternUpper
	}
	first, size := utf8.DecodeRuneInString(word)
	rest := word[size:]
	if first == unicode.ToUpper(first) && rest == strings.ToLower(rest) {
		return PatternCapitalized
	}
	if word == strings.ToLower(word) {
		return PatternLower
	}
	return PatternMixed
}

// ApplyPattern returns target cased the way source is cased.
//
// For mixed sources each target rune is uppercased when the source rune at
// the same position is uppercase. Runes past the end of source are kept as
// they are in target.
func ApplyPattern(source, target string) string {
	switch DetectPattern(source) {
	case PatternUpper:
		return strings.ToUpper(target)
	case PatternCapitalized:
		if target == "" {
			return target
		}
		first, size := utf8.DecodeRuneInString(target)
		return string(unicode.ToUpper(first)) + strings.ToLower(target[size:])
	case PatternLower:
		return strings.ToLower(target)
	}

	src := []rune(source)
	var b strings.Builder
	b.Grow(len(target))
	i := 0
	for _, r := range target {
		if i < len(src) && src[i] != unicode.ToLower(src[i]) {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

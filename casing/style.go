package casing

import (
	"slices"
	"strings"

	"github.com/erraggy/wordcase/wcerrors"
)

// Style names an output convention.
type Style string

const (
	// StyleCamel renders camelCase.
	StyleCamel Style = "camel"
	// StylePascal renders PascalCase.
	StylePascal Style = "pascal"
	// StyleKebab renders kebab-case.
	StyleKebab Style = "kebab"
	// StyleSnake renders snake_case.
	StyleSnake Style = "snake"
	// StyleWords renders space-separated words.
	StyleWords Style = "words"
	// StyleTitle renders Title Case.
	StyleTitle Style = "title"
)

var allStyles = []Style{StyleCamel, StylePascal, StyleKebab, StyleSnake, StyleWords, StyleTitle}

// styleAliases is keyed by the normalized name: lowercase, punctuation and a
// trailing "case" removed.
var styleAliases = map[string]Style{
	"camel":      StyleCamel,
	"camelize":   StyleCamel,
	"lowercamel": StyleCamel,
	"pascal":     StylePascal,
	"pascalize":  StylePascal,
	"uppercamel": StylePascal,
	"kebab":      StyleKebab,
	"kebabify":   StyleKebab,
	"dash":       StyleKebab,
	"snake":      StyleSnake,
	"snakify":    StyleSnake,
	"underscore": StyleSnake,
	"words":      StyleWords,
	"word":       StyleWords,
	"verbalize":  StyleWords,
	"sentence":   StyleWords,
	"title":      StyleTitle,
	"titalize":   StyleTitle,
	"titleize":   StyleTitle,
}

// Styles returns every supported style in a stable order.
func Styles() []Style {
	return slices.Clone(allStyles)
}

// String returns the canonical style name.
func (s Style) String() string {
	return string(s)
}

// IsValid reports whether s is one of the supported styles.
func (s Style) IsValid() bool {
	return slices.Contains(allStyles, s)
}

// ParseStyle resolves a style name or alias such as "snake_case", "PascalCase"
// or "verbalize". Matching ignores case, dashes, underscores and spaces.
func ParseStyle(name string) (Style, error) {
	if style, ok := styleAliases[normalizeStyleName(name)]; ok {
		return style, nil
	}
	return "", &wcerrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: "unknown style, expected one of " + styleList(),
	}
}

func normalizeStyleName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case '-', '_', ' ', '.':
			continue
		}
		b.WriteRune(r)
	}
	key := b.String()
	if trimmed := strings.TrimSuffix(key, "case"); trimmed != "" {
		key = trimmed
	}
	return key
}

func styleList() string {
	names := make([]string, len(allStyles))
	for i, s := range allStyles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Aliases returns the other names ParseStyle accepts for s, sorted.
// Every name is also accepted with a "case" suffix.
func (s Style) Aliases() []string {
	var out []string
	for alias, target := range styleAliases {
		if target == s && alias != string(s) {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}

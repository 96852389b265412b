package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/wordcase/tokenizer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Caser renders strings in the supported styles.
type Caser struct {
	lang               language.Tag
	preserveAcronyms   bool
	collapseSeparators bool
}

// Option configures a Caser.
type Option func(*Caser)

// WithLanguage sets the language used for upper and lower case mapping.
// The default is language.Und, which applies the Unicode default mappings.
func WithLanguage(tag language.Tag) Option {
	return func(c *Caser) {
		c.lang = tag
	}
}

// WithPreserveAcronyms keeps fully uppercase words unchanged in camel and
// Pascal output, so "XMLHttpRequest" stays "XMLHttpRequest" in Pascal case.
// The first word of camel output is still lowercased.
func WithPreserveAcronyms(enabled bool) Option {
	return func(c *Caser) {
		c.preserveAcronyms = enabled
	}
}

// WithCollapseSeparators writes a single separator between kebab and snake
// words even when the input had a longer run of dashes or underscores.
func WithCollapseSeparators(enabled bool) Option {
	return func(c *Caser) {
		c.collapseSeparators = enabled
	}
}

// New returns a Caser configured by opts.
func New(opts ...Option) *Caser {
	c := &Caser{lang: language.Und}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCaser = New()

// Camel renders s in camelCase.
func (c *Caser) Camel(s string) string {
	var b strings.Builder
	for i, tok := range tokenizer.Tokenize(s) {
		text := compact(tok)
		if i == 0 {
			b.WriteString(c.lower(text))
			continue
		}
		b.WriteString(c.joinedWord(tok, text))
	}
	return b.String()
}

// Pascal renders s in PascalCase.
func (c *Caser) Pascal(s string) string {
	var b strings.Builder
	for _, tok := range tokenizer.Tokenize(s) {
		b.WriteString(c.joinedWord(tok, compact(tok)))
	}
	return b.String()
}

// Kebab renders s in kebab-case.
func (c *Caser) Kebab(s string) string {
	return c.delimited(s, "-")
}

// Snake renders s in snake_case.
func (c *Caser) Snake(s string) string {
	return c.delimited(s, "_")
}

// Words renders s as space-separated words with only the first letter of the
// phrase capitalized. Fully uppercase words are kept as acronyms.
func (c *Caser) Words(s string) string {
	tokens := tokenizer.Tokenize(s)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		switch {
		case tok.Kind == tokenizer.KindVersion:
			parts[i] = tok.Text
		case !hasLower(tok.Text):
			parts[i] = tok.Text
		default:
			parts[i] = c.lower(tok.Text)
		}
	}
	return c.capitalize(strings.Join(parts, " "))
}

// Title renders s in title case.
func (c *Caser) Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		switch {
		case hasUpper(w):
		case i > 0 && isSmallWord(w):
		default:
			words[i] = c.capitalize(w)
		}
	}
	return strings.Join(words, " ")
}

// Convert renders s in the given style. An unknown style returns s unchanged.
func (c *Caser) Convert(style Style, s string) string {
	switch style {
	case StyleCamel:
		return c.Camel(s)
	case StylePascal:
		return c.Pascal(s)
	case StyleKebab:
		return c.Kebab(s)
	case StyleSnake:
		return c.Snake(s)
	case StyleWords:
		return c.Words(s)
	case StyleTitle:
		return c.Title(s)
	default:
		return s
	}
}

// ConvertAll renders s in every style.
func (c *Caser) ConvertAll(s string) map[Style]string {
	out := make(map[Style]string, len(allStyles))
	for _, style := range allStyles {
		out[style] = c.Convert(style, s)
	}
	return out
}

// joinedWord renders a non-leading camel word, or any Pascal word.
func (c *Caser) joinedWord(tok tokenizer.Token, text string) string {
	if c.preserveAcronyms && tok.Kind == tokenizer.KindWord && !hasLower(text) {
		return text
	}
	return c.capitalize(c.lower(text))
}

func (c *Caser) delimited(s, sep string) string {
	var b strings.Builder
	for _, tok := range tokenizer.Tokenize(s) {
		n := tok.Sep
		if c.collapseSeparators && n > 1 {
			n = 1
		}
		b.WriteString(strings.Repeat(sep, n))

		text := tok.Text
		if tok.Kind == tokenizer.KindVersion {
			text = strings.ReplaceAll(text, ".", sep)
		}
		b.WriteString(c.lower(text))
	}
	return b.String()
}

func (c *Caser) lower(s string) string {
	return cases.Lower(c.lang).String(s)
}

func (c *Caser) upper(s string) string {
	return cases.Upper(c.lang).String(s)
}

// capitalize uppercases the first rune of s and leaves the rest untouched.
func (c *Caser) capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return c.upper(s[:size]) + s[size:]
}

// compact drops the dots of a version token for styles without separators.
func compact(tok tokenizer.Token) string {
	if tok.Kind == tokenizer.KindVersion {
		return strings.ReplaceAll(tok.Text, ".", "")
	}
	return tok.Text
}

func hasUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

// ToCamelCase converts s to camelCase.
// Example: "first_name" -> "firstName"
func ToCamelCase(s string) string {
	return defaultCaser.Camel(s)
}

// ToPascalCase converts s to PascalCase.
// Example: "api-response" -> "ApiResponse"
func ToPascalCase(s string) string {
	return defaultCaser.Pascal(s)
}

// ToKebabCase converts s to kebab-case.
// Example: "HTMLParser" -> "html-parser"
// Example: "apiV2.0.1Response" -> "api-v2-0-1-response"
func ToKebabCase(s string) string {
	return defaultCaser.Kebab(s)
}

// ToSnakeCase converts s to snake_case.
// Example: "ApiV3Response" -> "api_v3_response"
func ToSnakeCase(s string) string {
	return defaultCaser.Snake(s)
}

// ToWords converts s to space-separated words, capitalizing only the first
// letter of the phrase.
// Example: "XMLHttpRequest" -> "XML http request"
func ToWords(s string) string {
	return defaultCaser.Words(s)
}

// ToTitleCase converts s to title case.
// Example: "the wonderful world of mystery science" -> "The Wonderful World of Mystery Science"
func ToTitleCase(s string) string {
	return defaultCaser.Title(s)
}

// Convert converts s to the given style with the default Caser.
func Convert(style Style, s string) string {
	return defaultCaser.Convert(style, s)
}

// smallWords stay lowercase in title case unless they open the phrase.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "be": true,
	"but": true, "by": true, "for": true, "in": true, "of": true,
	"on": true, "the": true, "to": true,
}

func isSmallWord(w string) bool {
	return smallWords[w]
}

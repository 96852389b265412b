package inflect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/wordcase/wcerrors"
)

// Inflector pluralizes and singularizes words using the built-in tables
// merged with any extra rules it was built with. An Inflector is immutable
// and safe for concurrent use.
type Inflector struct {
	irregulars  map[string]string
	singulars   map[string]string
	acronyms    map[string]string
	uncountable map[string]struct{}
}

// Option configures the Inflector built by New.
type Option func(*inflectorConfig) error

type inflectorConfig struct {
	irregulars  map[string]string
	acronyms    map[string]string
	uncountable []string
}

// WithRules merges rules over the built-in tables.
func WithRules(rules *Rules) Option {
	return func(cfg *inflectorConfig) error {
		if rules == nil {
			return &wcerrors.ConfigError{Option: "rules", Message: "rules must not be nil"}
		}
		if err := rules.Validate(); err != nil {
			return err
		}
		for singular, plural := range rules.Irregulars {
			cfg.irregulars[strings.ToLower(singular)] = strings.ToLower(plural)
		}
		for acronym, plural := range rules.Acronyms {
			cfg.acronyms[acronym] = plural
		}
		cfg.uncountable = append(cfg.uncountable, rules.Uncountable...)
		return nil
	}
}

// WithIrregular adds or replaces an irregular noun. Both forms are stored
// lowercase; results take on the casing of the input word.
func WithIrregular(singular, plural string) Option {
	return func(cfg *inflectorConfig) error {
		if err := validateIrregular(singular, plural); err != nil {
			return err
		}
		cfg.irregulars[strings.ToLower(singular)] = strings.ToLower(plural)
		return nil
	}
}

// WithAcronym adds or replaces an acronym. The acronym must be fully
// uppercase; the plural is returned verbatim.
func WithAcronym(acronym, plural string) Option {
	return func(cfg *inflectorConfig) error {
		if err := validateAcronym(acronym, plural); err != nil {
			return err
		}
		cfg.acronyms[acronym] = plural
		return nil
	}
}

// WithUncountable marks words that both Pluralize and Singularize return
// unchanged, such as "sheep" or "metadata".
func WithUncountable(words ...string) Option {
	return func(cfg *inflectorConfig) error {
		for _, w := range words {
			if err := validateUncountable(w); err != nil {
				return err
			}
		}
		cfg.uncountable = append(cfg.uncountable, words...)
		return nil
	}
}

// New builds an Inflector from the built-in tables and opts.
func New(opts ...Option) (*Inflector, error) {
	cfg := &inflectorConfig{
		irregulars: copyTable(builtinIrregulars),
		acronyms:   copyTable(builtinAcronyms),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := checkUniquePlurals(cfg.irregulars); err != nil {
		return nil, err
	}

	in := &Inflector{
		irregulars:  cfg.irregulars,
		singulars:   invert(cfg.irregulars),
		acronyms:    cfg.acronyms,
		uncountable: make(map[string]struct{}, len(cfg.uncountable)),
	}
	for _, w := range cfg.uncountable {
		in.uncountable[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return in, nil
}

var defaultInflector = &Inflector{
	irregulars:  builtinIrregulars,
	singulars:   invert(builtinIrregulars),
	acronyms:    builtinAcronyms,
	uncountable: map[string]struct{}{},
}

// Default returns the Inflector used by the package-level functions.
func Default() *Inflector {
	return defaultInflector
}

// Pluralize returns the plural form of word.
func (in *Inflector) Pluralize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	if _, ok := in.uncountable[lower]; ok {
		return word
	}
	if plural, ok := in.irregulars[lower]; ok {
		return ApplyPattern(word, plural)
	}

	upper := word == strings.ToUpper(word)
	if upper {
		if plural, ok := in.acronyms[word]; ok {
			return plural
		}
	}

	switch {
	case endsInConsonantY(word):
		// The uppercase suffix is "EIS", not "IES".
		return word[:len(word)-1] + pick(upper, "EIS", "ies")
	case utf8.RuneCountInString(word) == 1:
		return word + "s"
	case hasAnySuffixFold(word, "s", "x", "z", "ch", "sh"):
		return word + pick(upper, "ES", "es")
	default:
		return word + pick(upper, "S", "s")
	}
}

// Singularize returns the singular form of word. Words that do not look
// plural are returned unchanged.
func (in *Inflector) Singularize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	if _, ok := in.uncountable[lower]; ok {
		return word
	}
	if singular, ok := in.singulars[lower]; ok {
		return ApplyPattern(word, singular)
	}

	upper := word == strings.ToUpper(word)
	switch {
	case hasAnySuffixFold(word, "ies") && utf8.RuneCountInString(word) > 3:
		return word[:len(word)-3] + pick(upper, "Y", "y")
	case hasAnySuffixFold(word, "ses", "xes", "zes", "ches", "shes"):
		return word[:len(word)-2]
	case hasAnySuffixFold(word, "s") && !hasAnySuffixFold(word, "ss"):
		return word[:len(word)-1]
	default:
		return word
	}
}

// Pluralize returns the plural form of word using the built-in tables.
func Pluralize(word string) string {
	return defaultInflector.Pluralize(word)
}

// Singularize returns the singular form of word using the built-in tables.
func Singularize(word string) string {
	return defaultInflector.Singularize(word)
}

// endsInConsonantY reports whether word ends in "y" or "Y" preceded by a
// rune other than a vowel.
func endsInConsonantY(word string) bool {
	last, size := utf8.DecodeLastRuneInString(word)
	if last != 'y' && last != 'Y' {
		return false
	}
	prev, n := utf8.DecodeLastRuneInString(word[:len(word)-size])
	if n == 0 {
		return false
	}
	switch unicode.ToLower(prev) {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}

// hasAnySuffixFold reports whether word ends in one of the ASCII suffixes,
// ignoring case.
func hasAnySuffixFold(word string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if len(word) >= len(suffix) && strings.EqualFold(word[len(word)-len(suffix):], suffix) {
			return true
		}
	}
	return false
}

func pick(upper bool, ifUpper, ifLower string) string {
	if upper {
		return ifUpper
	}
	return ifLower
}

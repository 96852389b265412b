package tokenizer

import (
	"strings"
	"unicode"
)

// Kind classifies a token.
type Kind int

const (
	// KindWord is a run of letters, possibly mixed case ("Parser", "HTML").
	KindWord Kind = iota
	// KindNumber is a run of digits ("42").
	KindNumber
	// KindVersion is a version literal such as "v2" or "v1.0".
	KindVersion
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindNumber:
		return "number"
	case KindVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Token is one semantic word extracted from an input string.
type Token struct {
	// Text is the raw substring for words and numbers, and the lowercased
	// literal (dots included) for versions. Never empty.
	Text string
	// Kind classifies the token.
	Kind Kind
	// Sep is the number of separators that precede this token: 0 for the first
	// token, the run length for runs made only of '-' and '_', otherwise 1.
	Sep int
}

// Tokenize splits s into word tokens. Empty input, or input with no letters or
// digits, yields an empty slice.
func Tokenize(s string) []Token {
	sc := &scanner{runes: []rune(s), start: -1, runPure: true}
	sc.scan()
	return sc.tokens
}

// Words returns the text of every token in s, in order.
func Words(s string) []string {
	tokens := Tokenize(s)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}

// IsVersion reports whether s is exactly a version literal: 'v' or 'V', one or
// more digits, then zero or more ".digits" groups.
func IsVersion(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || (runes[0] != 'v' && runes[0] != 'V') {
		return false
	}
	return matchVersion(runes, 0) == len(runes)
}

// scanner holds the state of a single Tokenize call.
type scanner struct {
	runes  []rune
	tokens []Token

	// start is the index where the open word began, or -1.
	start int

	// runLen counts delimiter characters since the last token; runPure is
	// false once the run contains anything other than '-' or '_'.
	runLen  int
	runPure bool
}

func (sc *scanner) scan() {
	n := len(sc.runes)
	for i := 0; i < n; {
		r := sc.runes[i]

		if !isAlnum(r) {
			sc.closeWord(i)
			sc.runLen++
			if r != '-' && r != '_' {
				sc.runPure = false
			}
			i++
			continue
		}

		if startsVersion(sc.runes, i) {
			end := matchVersion(sc.runes, i)
			sc.closeWord(i)
			sc.emit(strings.ToLower(string(sc.runes[i:end])), KindVersion)
			i = end
			continue
		}

		if sc.start >= 0 && isBoundary(sc.runes, i) {
			sc.closeWord(i)
		}
		if sc.start < 0 {
			sc.start = i
		}
		i++
	}
	sc.closeWord(n)
}

// closeWord emits the open word ending before end, if any.
func (sc *scanner) closeWord(end int) {
	if sc.start < 0 {
		return
	}
	text := string(sc.runes[sc.start:end])
	kind := KindWord
	if isDigits(text) {
		kind = KindNumber
	}
	sc.start = -1
	sc.emit(text, kind)
}

func (sc *scanner) emit(text string, kind Kind) {
	sep := 0
	if len(sc.tokens) > 0 {
		sep = 1
		if sc.runLen > 1 && sc.runPure {
			sep = sc.runLen
		}
	}
	sc.tokens = append(sc.tokens, Token{Text: text, Kind: kind, Sep: sep})
	sc.runLen = 0
	sc.runPure = true
}

// isBoundary reports whether a new word starts at runes[i], given that
// runes[i-1] belongs to the open word.
func isBoundary(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]
	switch {
	case isUpper(r) && (isLower(prev) || unicode.IsDigit(prev)):
		return true
	case isUpper(r) && isUpper(prev) && i+1 < len(runes) && isLower(runes[i+1]):
		// "APIv2" keeps "API" whole when the lowercase letter opens a version.
		return !startsVersion(runes, i+1)
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

// versionMayStart reports whether the 'v' at runes[i] can open a version
// token. A lowercase 'v' directly after a lowercase letter is part of a word
// ("dev2" is "dev", "2").
func versionMayStart(runes []rune, i int) bool {
	if i == 0 || runes[i] == 'V' {
		return true
	}
	return !isLower(runes[i-1])
}

// startsVersion reports whether a version literal begins at runes[i].
func startsVersion(runes []rune, i int) bool {
	return (runes[i] == 'v' || runes[i] == 'V') && versionMayStart(runes, i) && matchVersion(runes, i) > 0
}

// matchVersion returns the end index of the version literal starting at
// runes[i], or 0 if there is none. The literal must be followed by a
// non-alphanumeric character, an uppercase letter, or the end of input; when
// the longest dotted form is not, shorter forms are tried.
func matchVersion(runes []rune, i int) int {
	n := len(runes)
	j := i + 1
	if j >= n || !isASCIIDigit(runes[j]) {
		return 0
	}
	for j < n && isASCIIDigit(runes[j]) {
		j++
	}
	ends := []int{j}
	for j+1 < n && runes[j] == '.' && isASCIIDigit(runes[j+1]) {
		j++
		for j < n && isASCIIDigit(runes[j]) {
			j++
		}
		ends = append(ends, j)
	}
	for k := len(ends) - 1; k >= 0; k-- {
		end := ends[k]
		if end == n || !isAlnum(runes[end]) || isUpper(runes[end]) {
			return end
		}
	}
	return 0
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isUpper(r rune) bool {
	return unicode.IsUpper(r)
}

// isLower treats caseless letters as lowercase so they never open an acronym run.
func isLower(r rune) bool {
	return unicode.IsLetter(r) && !unicode.IsUpper(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

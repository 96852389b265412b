// Package tokenizer splits identifiers and phrases into word tokens.
//
// A single left-to-right scan classifies every character and places word
// boundaries in these situations:
//
//   - lowercase letter or digit followed by an uppercase letter ("fooBar" -> "foo", "Bar")
//   - an uppercase run followed by an uppercase+lowercase pair ("HTMLParser" -> "HTML", "Parser")
//   - letter followed by digit, or digit followed by letter ("html5Parser" -> "html", "5", "Parser")
//   - any character that is not a letter or digit (space, dash, underscore, punctuation)
//
// Version tokens such as "v2", "V1.0" or "v2.0.1" are recognised before any other
// boundary rule applies and are carried through as a single [KindVersion] token
// whose text is lowercased and keeps its dots. Renderers decide how the dots are
// written.
//
// Each token records in [Token.Sep] how many separators precede it. A run made only
// of dashes and underscores keeps its length ("foo__bar" gives "bar" a Sep of 2);
// every other boundary counts as one. Renderers that join with a separator use it to
// preserve repeated runs.
//
// The scan is stateless and allocation-light; all functions are safe for
// concurrent use.
package tokenizer

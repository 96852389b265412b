// Package casing renders identifiers and phrases in common lexical conventions.
//
// The renderers share the word boundaries produced by the tokenizer package:
//
//	ToCamelCase("first_name")        // "firstName"
//	ToPascalCase("api-response")     // "ApiResponse"
//	ToKebabCase("HTMLParser")        // "html-parser"
//	ToSnakeCase("ApiV3Response")     // "api_v3_response"
//	ToWords("XMLHttpRequest")        // "XML http request"
//	ToTitleCase("war and peace")     // "War and Peace"
//
// # Separators
//
// Kebab and snake output keeps runs of two or more dashes or underscores from the
// input ("foo__bar" becomes "foo--bar") and writes one separator for every other
// boundary. [WithCollapseSeparators] turns the run preservation off.
//
// # Version tokens
//
// Version literals such as "v2" or "v2.0.1" are never split by the digit rules.
// Kebab and snake output replace their dots with the separator ("v2-0-1"), spoken
// words keep the dots, and camel and Pascal output drop them.
//
// # Title case
//
// [ToTitleCase] splits on whitespace only. A word that already contains an
// uppercase letter is left exactly as written, so acronyms survive and so does
// deliberately mixed casing ("ThE gIrL" is unchanged). Small function words
// (a, an, and, at, be, but, by, for, in, of, on, the, to) stay lowercase unless
// they start the phrase.
//
// # Custom casers
//
// The package-level functions use a default [Caser]. [New] builds one with a
// different case-mapping language, acronym preservation for camel and Pascal
// output, or collapsed separators. A Caser is immutable and safe for concurrent
// use.
package casing

// Package wordcase converts identifiers and phrases between lexical conventions
// and inflects English nouns.
//
// # Overview
//
// The library consists of three packages:
//
//   - tokenizer: Split an identifier into words, keeping version literals such as "v2.0.1" intact
//   - casing: Render camelCase, PascalCase, kebab-case, snake_case, spoken words and Title Case
//   - inflect: Pluralize, singularize and quantify English nouns
//
// Every transform is a pure function of its input. All packages are safe for
// concurrent use.
//
// # Installation
//
//	go get github.com/erraggy/wordcase
//
// # Quick Start
//
// Convert between conventions:
//
//	import "github.com/erraggy/wordcase/casing"
//
//	casing.ToCamelCase("first_name")        // "firstName"
//	casing.ToKebabCase("apiV2.0.1Response") // "api-v2-0-1-response"
//	casing.ToWords("XMLHttpRequest")        // "XML http request"
//
// Resolve a style chosen at runtime:
//
//	style, err := casing.ParseStyle("snake_case")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(casing.Convert(style, "userProfileID")) // "user_profile_id"
//
// Pluralize and count:
//
//	import "github.com/erraggy/wordcase/inflect"
//
//	inflect.Pluralize("child")     // "children"
//	inflect.Singularize("CITIES")  // "CITY"
//	inflect.Quantify(3, "API")     // "3 APIs"
//
// Inspect word boundaries:
//
//	import "github.com/erraggy/wordcase/tokenizer"
//
//	tokenizer.Words("HTML5ApiV2") // ["HTML" "5" "Api" "v2"]
//
// # Custom Rules
//
// An inflect.Inflector can carry extra irregular nouns, acronyms and
// uncountable words loaded from a YAML file:
//
//	rules, err := inflect.LoadRules("rules.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	in, err := inflect.New(inflect.WithRules(rules))
//
// # Command-Line Tool
//
// The wordcase command exposes every transform:
//
//	wordcase convert -style kebab HTMLParser
//	wordcase plural child box API
//	wordcase quantify 3 child
//	wordcase serve -addr :8080 -rules rules.yaml -watch
//	wordcase mcp
//
// The serve command runs a JSON HTTP API, and mcp runs a Model Context Protocol
// server over stdio.
//
// # Errors
//
// Transforms never fail. Errors are reported only when loading rules or
// resolving style names, as the structured types in the wcerrors package.
package wordcase

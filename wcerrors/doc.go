// Package wcerrors provides structured error types for the wordcase library.
//
// Import path: github.com/erraggy/wordcase/wcerrors
//
// The transforms in tokenizer, casing and inflect are total functions and never
// return errors. Errors only arise at the edges: loading inflection rule files,
// validating rule entries, and resolving style names supplied by users of the CLI,
// MCP server or HTTP API.
//
// # Error Types
//
//   - [ParseError]: a rule file could not be decoded or has an unexpected shape
//   - [ConfigError]: an option or rule entry is invalid, or a style name is unknown
//
// # Sentinel Errors
//
//   - [ErrParse]: matches any [ParseError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage
//
//	rules, err := inflect.LoadRules("rules.yaml")
//	if err != nil {
//	    var parseErr *wcerrors.ParseError
//	    if errors.As(err, &parseErr) && parseErr.Line > 0 {
//	        fmt.Printf("rules.yaml:%d: %s\n", parseErr.Line, parseErr.Message)
//	    }
//	    if errors.Is(err, wcerrors.ErrConfig) {
//	        // an entry was rejected by validation
//	    }
//	}
package wcerrors

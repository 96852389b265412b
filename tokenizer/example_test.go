package tokenizer_test

import (
	"fmt"

	"github.com/erraggy/wordcase/tokenizer"
)

func ExampleWords() {
	fmt.Println(tokenizer.Words("XMLHttpRequest"))
	fmt.Println(tokenizer.Words("html5_parser"))
	// Output:
	// [XML Http Request]
	// [html 5 parser]
}

func ExampleTokenize() {
	for _, tok := range tokenizer.Tokenize("apiV1.2Build42") {
		fmt.Printf("%-7s %s\n", tok.Kind, tok.Text)
	}
	// Output:
	// word    api
	// version v1.2
	// word    Build
	// number  42
}

package casing

import (
	"errors"
	"testing"

	"github.com/erraggy/wordcase/wcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input string
		want  Style
	}{
		{input: "camel", want: StyleCamel},
		{input: "camelCase", want: StyleCamel},
		{input: "camel-case", want: StyleCamel},
		{input: "camelize", want: StyleCamel},
		{input: "pascal", want: StylePascal},
		{input: "PascalCase", want: StylePascal},
		{input: "pascalize", want: StylePascal},
		{input: "UpperCamelCase", want: StylePascal},
		{input: "kebab", want: StyleKebab},
		{input: "kebab-case", want: StyleKebab},
		{input: "KEBABIFY", want: StyleKebab},
		{input: "snake", want: StyleSnake},
		{input: "snake_case", want: StyleSnake},
		{input: "snakify", want: StyleSnake},
		{input: "words", want: StyleWords},
		{input: "verbalize", want: StyleWords},
		{input: "sentence case", want: StyleWords},
		{input: "title", want: StyleTitle},
		{input: "TitleCase", want: StyleTitle},
		{input: "titalize", want: StyleTitle},
		{input: "  title  ", want: StyleTitle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStyle_Unknown(t *testing.T) {
	for _, input := range []string{"", "case", "screaming", "camel-snake"} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseStyle(input)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, wcerrors.ErrConfig))

			var cfgErr *wcerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "style", cfgErr.Option)
			assert.Equal(t, input, cfgErr.Value)
			assert.Contains(t, err.Error(), "camel, pascal, kebab, snake, words, title")
		})
	}
}

func TestStyles(t *testing.T) {
	styles := Styles()
	assert.Equal(t, []Style{StyleCamel, StylePascal, StyleKebab, StyleSnake, StyleWords, StyleTitle}, styles)

	styles[0] = "mutated"
	assert.Equal(t, StyleCamel, Styles()[0])

	for _, s := range Styles() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, Style("upper").IsValid())
}

func TestStyle_Aliases(t *testing.T) {
	assert.Equal(t, []string{"camelize", "lowercamel"}, StyleCamel.Aliases())
	assert.Equal(t, []string{"sentence", "verbalize", "word"}, StyleWords.Aliases())
	assert.Empty(t, Style("upper").Aliases())

	for _, s := range Styles() {
		for _, alias := range s.Aliases() {
			got, err := ParseStyle(alias)
			require.NoError(t, err)
			assert.Equal(t, s, got, alias)
		}
	}
}

package interpreter

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lowercase rule names are elided by the lexer, so only words come back.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
	{Name: "Word", Pattern: `[^\s\v\x{85}\p{Z}]+`},
})

// Tokenize splits a line into its whitespace-delimited tokens.
// A blank line yields an empty slice.
func Tokenize(line string) []string {
	lex, err := lineLexer.LexString("input", line)
	if err != nil {
		return nil
	}
	var tokens []string
	for {
		tok, err := lex.Next()
		// the two rules cover every rune, so an error means the input was unusable
		if err != nil || tok.EOF() {
			return tokens
		}
		tokens = append(tokens, tok.Value)
	}
}

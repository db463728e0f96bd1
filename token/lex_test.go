package token_test

import (
	"testing"

	"github.com/semtexzv/graphql-parser/token"
)

type lexTestConfig struct {
	name     string
	input    string
	expected []token.Kind
}

func TestLex(t *testing.T) {
	tests := []lexTestConfig{
		{
			name:     "simple query",
			input:    "query { hello }",
			expected: []token.Kind{token.Name, token.Punctuator, token.Name, token.Punctuator, token.EOF},
		},
		{
			name:     "comments and commas are insignificant",
			input:    "{ a, # trailing comment\n b }",
			expected: []token.Kind{token.Punctuator, token.Name, token.Name, token.Punctuator, token.EOF},
		},
		{
			name:     "ellipsis is a single token",
			input:    "...Foo",
			expected: []token.Kind{token.Punctuator, token.Name, token.EOF},
		},
		{
			name:     "int, float, and negative numbers",
			input:    "1 -2 3.14 -1.5e10",
			expected: []token.Kind{token.IntValue, token.IntValue, token.FloatValue, token.FloatValue, token.EOF},
		},
		{
			name:     "single-line string",
			input:    `"hello \"world\""`,
			expected: []token.Kind{token.StringValue, token.EOF},
		},
		{
			name:     "block string",
			input:    `"""multi\nline"""`,
			expected: []token.Kind{token.BlockString, token.EOF},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := token.Lex(tc.input)
			if err != nil {
				t.Fatalf("unexpected lex error: %v", err)
			}
			if len(toks) != len(tc.expected) {
				t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tc.expected), toks)
			}
			for i, k := range tc.expected {
				if toks[i].Kind != k {
					t.Errorf("token %d: got kind %v, want %v (%q)", i, toks[i].Kind, k, toks[i].Value)
				}
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.LexKind
	}{
		{"leading zero", "0123", token.BadNumber},
		{"trailing dot with no digit", "1.", token.BadNumber},
		{"unterminated string", `"abc`, token.UnterminatedString},
		{"newline in single-line string", "\"abc\ndef\"", token.UnterminatedString},
		{"unterminated block string", `"""abc`, token.UnterminatedBlockString},
		{"stray character", "^", token.BadCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := token.Lex(tc.input)
			if err == nil {
				t.Fatalf("expected a lex error, got none")
			}
			if err.Kind != tc.kind {
				t.Errorf("got error kind %v, want %v (%s)", err.Kind, tc.kind, err.Message)
			}
		})
	}
}

func TestLexPositions(t *testing.T) {
	toks, err := token.Lex("a\nbb")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if toks[0].Start.Line != 1 || toks[0].Start.Column != 1 {
		t.Errorf("first token start = %v, want line 1 col 1", toks[0].Start)
	}
	if toks[1].Start.Line != 2 || toks[1].Start.Column != 1 {
		t.Errorf("second token start = %v, want line 2 col 1", toks[1].Start)
	}
}

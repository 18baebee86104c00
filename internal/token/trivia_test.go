package token_test

import (
	"testing"

	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

func TestTriviaShape(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaDocLine,
		Span: source.Span{Start: 0, End: 10},
		Text: "a friendly greeting",
	}
	tk := token.Token{
		Kind:    token.KwType,
		Span:    source.Span{Start: 42, End: 46},
		Text:    "type",
		Leading: []token.Trivia{tv},
	}
	if len(tk.Leading) != 1 || tk.Leading[0].Kind != token.TriviaDocLine || tk.Leading[0].Text != "a friendly greeting" {
		t.Fatalf("doc trivia must be present and structured, got %+v", tk.Leading)
	}
}

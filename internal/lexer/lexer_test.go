package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nezdolik/reproto/internal/diag"
	"github.com/nezdolik/reproto/internal/lexer"
	"github.com/nezdolik/reproto/internal/source"
	"github.com/nezdolik/reproto/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rp", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== identifiers and keywords ======

func TestIdentifiers_LowercaseLeading(t *testing.T) {
	tests := []string{"foo", "_bar", "__test", "x123", "camelCase", "_"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Identifier, input)
		})
	}
}

func TestIdentifiers_UppercaseLeadingAreTypeIdentifiers(t *testing.T) {
	tests := []string{"Foo", "User", "HTTPStatus", "A"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.TypeIdentifier, input)
		})
	}
}

func TestKeywords_Lowercase(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"use", token.KwUse},
		{"as", token.KwAs},
		{"enum", token.KwEnum},
		{"type", token.KwType},
		{"interface", token.KwInterface},
		{"tuple", token.KwTuple},
		{"service", token.KwService},
		{"stream", token.KwStream},
		{"any", token.KwAny},
		{"float", token.KwFloat},
		{"double", token.KwDouble},
		{"u32", token.KwU32},
		{"u64", token.KwU64},
		{"i32", token.KwI32},
		{"i64", token.KwI64},
		{"boolean", token.KwBoolean},
		{"string", token.KwString},
		{"datetime", token.KwDatetime},
		{"bytes", token.KwBytes},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, tok.Kind)
			}
		})
	}
}

func TestKeywords_CapitalizedAreTypeIdentifiers(t *testing.T) {
	tests := []string{"Use", "Type", "Enum", "Service", "Any", "String"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, _ := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.TypeIdentifier {
				t.Errorf("expected TypeIdentifier for %q, got %v", input, tok.Kind)
			}
			if tok.Text != input {
				t.Errorf("expected text %q, got %q", input, tok.Text)
			}
		})
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	tests := []string{"имя", "переменная", "λx", "変数"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, _ := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Identifier {
				t.Errorf("expected Identifier, got %v for %q", tok.Kind, input)
			}
			if tok.Text != input {
				t.Errorf("expected text %q, got %q", input, tok.Text)
			}
		})
	}
}

// ====== numbers ======

func TestNumbers_Integer(t *testing.T) {
	tests := []string{"0", "123", "456789", "-1", "-42"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Number, input)
		})
	}
}

func TestNumbers_Fractional(t *testing.T) {
	tests := []string{"1.0", "3.14", "0.5", "-2.5"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Number, input)
		})
	}
}

func TestNumbers_Exponent(t *testing.T) {
	tests := []string{"1e10", "1E10", "1e+10", "1e-10", "1.5e10", "3.14e-2"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Number, input)
		})
	}
}

func TestNumbers_InvalidExponent(t *testing.T) {
	tests := []string{"1e", "1e+", "1e-"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for %q, got %v", input, tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected error report for bad exponent")
			}
		})
	}
}

func TestNumbers_NoDigitSeparators(t *testing.T) {
	// '1_000' is not a number grammar in this dialect: '_' is not a digit,
	// so the lexer stops the number at '1' and starts a fresh identifier.
	expectTokens(t, "1_000", []token.Kind{
		token.Number,
		token.Identifier,
	})
}

func TestNumbers_DotFollowedByLetter(t *testing.T) {
	expectTokens(t, ".e10", []token.Kind{
		token.Dot,
		token.Identifier,
	})
}

// ====== strings ======

func TestString_Simple(t *testing.T) {
	tests := []string{`""`, `"hello"`, `"hello world"`, `"123"`}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.QuotedString, input)
		})
	}
}

func TestString_ValidEscapes(t *testing.T) {
	tests := []string{
		`"hello\nworld"`,
		`"tab\there"`,
		`"quote\"inside"`,
		`"backslash\\"`,
		`"\r\n"`,
		`"é"`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.QuotedString, input)
		})
	}
}

func TestString_InvalidEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"bad\qescape"`)
	lx.Next()
	if !reporter.HasErrors() {
		t.Error("expected error report for invalid escape")
	}
}

func TestString_InvalidUnicodeEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"\u12"`)
	lx.Next()
	if !reporter.HasErrors() {
		t.Error("expected error report for truncated \\u escape")
	}
}

func TestString_Unterminated(t *testing.T) {
	tests := []string{`"hello`, `"world`, `"unclosed string`}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for unterminated string, got %v", tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected error report for unterminated string")
			}
		})
	}
}

func TestString_NewlineInString(t *testing.T) {
	lx, reporter := makeTestLexer("\"hello\nworld\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid for newline in string, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report for newline in string")
	}
}

// ====== structural punctuation ======

func TestPunctuation_Single(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"(", token.LParen},
		{")", token.RParen},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{";", token.Semicolon},
		{":", token.Colon},
		{",", token.Comma},
		{".", token.Dot},
		{"?", token.Question},
		{"#", token.Hash},
		{"!", token.Bang},
		{"=", token.Eq},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestPunctuation_TwoByte(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"::", token.ColonColon},
		{"->", token.Arrow},
		{"{{", token.LDoubleBrace},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestPunctuation_Greedy(t *testing.T) {
	// ':' followed by ':' must lex as one ColonColon, not two Colon.
	expectTokens(t, ":::", []token.Kind{
		token.ColonColon,
		token.Colon,
	})
}

func TestUnknownCharacter(t *testing.T) {
	tests := []string{"$", "§", "€", "@"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid for unknown char %q, got %v", input, tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected error report for unknown character")
			}
		})
	}
}

// ====== code blocks ======

func TestCodeBlock_Simple(t *testing.T) {
	expectTokens(t, "{{ return 1; }}", []token.Kind{
		token.LDoubleBrace,
		token.CodeContent,
		token.RDoubleBrace,
	})
}

func TestCodeBlock_Empty(t *testing.T) {
	expectTokens(t, "{{}}", []token.Kind{
		token.LDoubleBrace,
		token.CodeContent,
		token.RDoubleBrace,
	})
}

func TestCodeBlock_ContentIsVerbatim(t *testing.T) {
	lx, _ := makeTestLexer(`{{ let s = "a/*not a comment*/b"; }}`)
	open := lx.Next()
	if open.Kind != token.LDoubleBrace {
		t.Fatalf("expected LDoubleBrace, got %v", open.Kind)
	}
	content := lx.Next()
	if content.Kind != token.CodeContent {
		t.Fatalf("expected CodeContent, got %v", content.Kind)
	}
	if content.Text != ` let s = "a/*not a comment*/b"; ` {
		t.Fatalf("unexpected code content: %q", content.Text)
	}
	closeTok := lx.Next()
	if closeTok.Kind != token.RDoubleBrace {
		t.Fatalf("expected RDoubleBrace, got %v", closeTok.Kind)
	}
}

func TestCodeBlock_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("{{ no closer here")
	lx.Next() // LDoubleBrace
	tok := lx.Next()
	if tok.Kind != token.CodeContent {
		t.Fatalf("expected CodeContent, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report for unterminated code block")
	}
}

// ====== trivia ======

func TestTrivia_Spaces(t *testing.T) {
	lx, _ := makeTestLexer("  \t  foo")
	tok := lx.Next()
	if tok.Kind != token.Identifier {
		t.Fatalf("expected Identifier, got %v", tok.Kind)
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaSpace {
		t.Fatalf("expected a single TriviaSpace, got %v", tok.Leading)
	}
}

func TestTrivia_Newlines(t *testing.T) {
	lx, _ := makeTestLexer("\n\n\nfoo")
	tok := lx.Next()
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaNewline {
		t.Fatalf("expected a single TriviaNewline, got %v", tok.Leading)
	}
}

func TestTrivia_LineComment(t *testing.T) {
	lx, _ := makeTestLexer("// plain comment\nfoo")
	tok := lx.Next()
	if len(tok.Leading) != 2 {
		t.Fatalf("expected 2 leading trivia, got %d", len(tok.Leading))
	}
	if tok.Leading[0].Kind != token.TriviaLineComment {
		t.Errorf("expected TriviaLineComment, got %v", tok.Leading[0].Kind)
	}
}

func TestTrivia_DocComment_StripsMarkerAndOneSpace(t *testing.T) {
	lx, _ := makeTestLexer("/// a doc comment\nfoo")
	tok := lx.Next()
	docs := tok.DocComments()
	if len(docs) != 1 {
		t.Fatalf("expected 1 doc comment, got %d", len(docs))
	}
	if docs[0].Text != "a doc comment" {
		t.Errorf("expected stripped text %q, got %q", "a doc comment", docs[0].Text)
	}
}

func TestTrivia_PackageDocComment(t *testing.T) {
	lx, _ := makeTestLexer("//! module-level doc\nfoo")
	tok := lx.Next()
	docs := tok.PackageDocComments()
	if len(docs) != 1 {
		t.Fatalf("expected 1 package doc comment, got %d", len(docs))
	}
	if docs[0].Text != "module-level doc" {
		t.Errorf("expected stripped text %q, got %q", "module-level doc", docs[0].Text)
	}
}

func TestTrivia_BlockComment(t *testing.T) {
	lx, _ := makeTestLexer("/* block comment */foo")
	tok := lx.Next()
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("expected a single TriviaBlockComment, got %v", tok.Leading)
	}
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* unterminated\nfoo")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("expected EOF after unterminated block comment consuming all input, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report for unterminated block comment")
	}
}

func TestTrivia_Mixed(t *testing.T) {
	input := "\n\t// comment\n\t/* block */\n\t/// doc\n\tfoo"
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if len(tok.Leading) < 3 {
		t.Errorf("expected at least 3 trivia, got %d", len(tok.Leading))
	}
}

// ====== integration ======

func TestLexer_UseDeclaration(t *testing.T) {
	input := `use foo::bar as baz;`
	expectTokens(t, input, []token.Kind{
		token.KwUse,
		token.Identifier,
		token.ColonColon,
		token.Identifier,
		token.KwAs,
		token.Identifier,
		token.Semicolon,
	})
}

func TestLexer_TypeDeclaration(t *testing.T) {
	input := `type User { name: string, age: u32 }`
	expectTokens(t, input, []token.Kind{
		token.KwType,
		token.TypeIdentifier,
		token.LBrace,
		token.Identifier,
		token.Colon,
		token.KwString,
		token.Comma,
		token.Identifier,
		token.Colon,
		token.KwU32,
		token.RBrace,
	})
}

func TestLexer_Endpoint(t *testing.T) {
	input := `get_user(id: u32) -> User;`
	expectTokens(t, input, []token.Kind{
		token.Identifier,
		token.LParen,
		token.Identifier,
		token.Colon,
		token.KwU32,
		token.RParen,
		token.Arrow,
		token.TypeIdentifier,
		token.Semicolon,
	})
}

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b c")

	peek1 := lx.Peek()
	if peek1.Kind != token.Identifier || peek1.Text != "a" {
		t.Errorf("first peek: expected Identifier 'a', got %v %q", peek1.Kind, peek1.Text)
	}

	peek2 := lx.Peek()
	if peek2.Text != peek1.Text {
		t.Error("second peek should return the same token")
	}

	next1 := lx.Next()
	if next1.Text != peek1.Text {
		t.Error("Next should return the peeked token")
	}

	next2 := lx.Next()
	if next2.Text != "b" {
		t.Errorf("expected 'b', got %q", next2.Text)
	}
}

func TestLexer_EOF(t *testing.T) {
	lx, _ := makeTestLexer("x")

	if tok := lx.Next(); tok.Kind != token.Identifier {
		t.Fatalf("expected Identifier, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF again, got %v", tok.Kind)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF for empty input, got %v", tok.Kind)
	}
}

func TestLexer_OnlyWhitespace(t *testing.T) {
	lx, _ := makeTestLexer("   \t\n  ")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF for whitespace-only input, got %v", tok.Kind)
	}
}

func BenchmarkLexer_TypeDeclaration(b *testing.B) {
	input := "type User { name: string, age: u32, email: string }"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.rp", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for b.Loop() {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	var sb strings.Builder
	for i := range 100 {
		sb.WriteString("type Model")
		sb.WriteString(fmt.Sprintf("%d", i))
		sb.WriteString(" { id: u64, name: string }\n")
	}
	input := sb.String()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.rp", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for b.Loop() {
		lx := lexer.New(file, lexer.Options{})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}

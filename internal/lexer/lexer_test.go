package lexer

import (
	"testing"

	"github.com/gowalk/tlox/internal/token"
)

func scanTypes(t *testing.T, source string) []token.Type {
	t.Helper()
	lx := New(source)
	tokens := lx.ScanTokens()
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	types := scanTypes(t, "(){},.-+;*!= == <= >=/")
	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.SLASH, token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i, typ := range want {
		if types[i] != typ {
			t.Errorf("token %d: got %s, want %s", i, types[i], typ)
		}
	}
}

func TestScanTokensSkipsLineComments(t *testing.T) {
	lx := New("var a = 1; // trailing comment\nvar b = 2;")
	tokens := lx.ScanTokens()
	if lx.HadError() {
		t.Fatalf("unexpected errors: %v", lx.Errors())
	}
	for _, tok := range tokens {
		if tok.Lexeme == "//" {
			t.Fatalf("comment leaked into token stream: %+v", tok)
		}
	}
}

func TestScanNumberLiteral(t *testing.T) {
	lx := New("3.14")
	tokens := lx.ScanTokens()
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2 (NUMBER, EOF): %v", len(tokens), tokens)
	}
	if tokens[0].Type != token.NUMBER {
		t.Fatalf("got %s, want NUMBER", tokens[0].Type)
	}
	if tokens[0].Literal.(float64) != 3.14 {
		t.Errorf("got literal %v, want 3.14", tokens[0].Literal)
	}
}

func TestScanNumberTrailingDotIsNotConsumed(t *testing.T) {
	lx := New("123.")
	tokens := lx.ScanTokens()
	if tokens[0].Type != token.NUMBER || tokens[0].Lexeme != "123" {
		t.Fatalf("expected NUMBER '123', got %+v", tokens[0])
	}
	if tokens[1].Type != token.DOT {
		t.Fatalf("expected a trailing DOT token, got %s", tokens[1].Type)
	}
}

func TestScanStringLiteral(t *testing.T) {
	lx := New(`"hello world"`)
	tokens := lx.ScanTokens()
	if tokens[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "hello world" {
		t.Errorf("got literal %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	lx := New(`"oops`)
	lx.ScanTokens()
	if !lx.HadError() {
		t.Fatal("expected a lexical error for an unterminated string")
	}
	if lx.Errors()[0].Message != "Unterminated string." {
		t.Errorf("got message %q", lx.Errors()[0].Message)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	types := scanTypes(t, "foo and bar or nil")
	want := []token.Type{token.IDENTIFIER, token.AND, token.IDENTIFIER, token.OR, token.NIL, token.EOF}
	for i, typ := range want {
		if types[i] != typ {
			t.Errorf("token %d: got %s, want %s", i, types[i], typ)
		}
	}
}

func TestScanUnexpectedCharacterContinuesScanning(t *testing.T) {
	lx := New("var a = 1; @ var b = 2;")
	tokens := lx.ScanTokens()
	if !lx.HadError() {
		t.Fatal("expected a lexical error for '@'")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		t.Fatal("scanning did not continue to EOF after the bad character")
	}
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	lx := New("var a = 1;\nvar b = 2;\nvar c = 3;")
	tokens := lx.ScanTokens()
	var cLine int
	for _, tok := range tokens {
		if tok.Type == token.IDENTIFIER && tok.Lexeme == "c" {
			cLine = tok.Line
		}
	}
	if cLine != 3 {
		t.Errorf("got line %d for 'c', want 3", cLine)
	}
}

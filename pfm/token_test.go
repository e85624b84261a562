package pfm

import (
	"bytes"
	"errors"
	"testing"
)

func TestNextToken(t *testing.T) {
	buf := []byte(" token1   token2 token3")

	tok, rest, err := nextToken(buf)
	if err != nil {
		t.Fatalf("nextToken: %v", err)
	}
	if !bytes.Equal(tok, []byte("token1")) {
		t.Errorf("tok = %q, want token1", tok)
	}
	if !bytes.Equal(rest, []byte("   token2 token3")) {
		t.Errorf("rest = %q, want %q", rest, "   token2 token3")
	}

	tok, rest, err = nextToken(rest)
	if err != nil {
		t.Fatalf("nextToken: %v", err)
	}
	if !bytes.Equal(tok, []byte("token2")) {
		t.Errorf("tok = %q, want token2", tok)
	}
	if !bytes.Equal(rest, []byte(" token3")) {
		t.Errorf("rest = %q, want %q", rest, " token3")
	}

	tok, rest, err = nextToken(rest)
	if err != nil {
		t.Fatalf("nextToken: %v", err)
	}
	if !bytes.Equal(tok, []byte("token3")) {
		t.Errorf("tok = %q, want token3", tok)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %q, want empty", rest)
	}
}

func TestNextTokenTerminatorNotConsumed(t *testing.T) {
	tok, rest, err := nextToken([]byte("abc\ndef"))
	if err != nil {
		t.Fatalf("nextToken: %v", err)
	}
	if !bytes.Equal(tok, []byte("abc")) {
		t.Errorf("tok = %q, want abc", tok)
	}
	if len(rest) == 0 || rest[0] != '\n' {
		t.Errorf("rest = %q, want leading newline kept", rest)
	}
}

func TestNextTokenEOF(t *testing.T) {
	for _, buf := range [][]byte{nil, []byte(""), []byte("  \t\r\n ")} {
		if _, _, err := nextToken(buf); !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("nextToken(%q) error = %v, want %v", buf, err, ErrUnexpectedEOF)
		}
	}
}

func TestNextTokenAllASCIIWhitespace(t *testing.T) {
	// Every byte of the ASCII whitespace set terminates a token.
	for _, ws := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		buf := append([]byte("tok"), ws, 'x')
		tok, rest, err := nextToken(buf)
		if err != nil {
			t.Fatalf("nextToken: %v", err)
		}
		if !bytes.Equal(tok, []byte("tok")) {
			t.Errorf("tok = %q, want tok (ws 0x%02x)", tok, ws)
		}
		if len(rest) != 2 || rest[0] != ws {
			t.Errorf("rest = %q, want terminator 0x%02x kept", rest, ws)
		}
	}
}

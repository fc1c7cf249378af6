package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown component kind: %s", "hexagon")
	want := "INVALID_KIND: unknown component kind: hexagon"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidDocument, cause, "decode %s", "doc.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if got := err.Error(); got != "INVALID_DOCUMENT: decode doc.json: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidViewport, "unknown viewport")

	if !Is(err, ErrCodeInvalidViewport) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Code survives fmt wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidViewport) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidTree, "dup")); got != ErrCodeInvalidTree {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidTree)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "screen count must be positive")
	if got := UserMessage(err); got != "screen count must be positive" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "header", wantErr: false},
		{name: "uuid-ish", id: "3f2a9c1e-0b6d-4e8f-9a2b-7c5d1e3f4a5b", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "control char", id: "head\x01er", wantErr: true},
		{name: "too long", id: string(make([]byte, 300)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocumentPath(t *testing.T) {
	if err := ValidateDocumentPath("designs/login.json"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := ValidateDocumentPath(""); err == nil {
		t.Error("empty path should fail")
	}
	if err := ValidateDocumentPath("a\x00b"); err == nil {
		t.Error("null byte should fail")
	}
}

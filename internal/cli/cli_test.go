package cli

import (
	"io"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"layout":     false,
		"canvas":     false,
		"validate":   false,
		"preview":    false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunCanvasRejectsBadInput(t *testing.T) {
	if err := runCanvas("huge", "side-by-side", 1); err == nil {
		t.Error("expected error for unknown viewport")
	}
	if err := runCanvas("narrow", "diagonal", 1); err == nil {
		t.Error("expected error for unknown arrangement")
	}
	if err := runCanvas("narrow", "side-by-side", 0); err == nil {
		t.Error("expected error for zero screens")
	}
}

func TestRunCanvasValid(t *testing.T) {
	if err := runCanvas("wide", "stacked", 2); err != nil {
		t.Errorf("runCanvas() error: %v", err)
	}
}

package cmd

import (
	"slices"
	"testing"
)

func TestEditorFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "visual before editor", env: map[string]string{"VISUAL": "code --wait", "EDITOR": "nano"}, want: "code --wait"},
		{name: "editor when visual unset", env: map[string]string{"EDITOR": "nano"}, want: "nano"},
		{name: "blank visual skipped", env: map[string]string{"VISUAL": "  ", "EDITOR": "nano"}, want: "nano"},
		{name: "fallback", env: map[string]string{}, want: fallbackEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := editorFromEnv(func(key string) string { return tt.env[key] })
			if got != tt.want {
				t.Fatalf("editorFromEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEditorCommand(t *testing.T) {
	t.Parallel()

	cmd, err := editorCommand("jobaudit-editor --wait", "/tmp/cfg.yaml")
	if err != nil {
		t.Fatalf("editorCommand() error = %v", err)
	}
	want := []string{"jobaudit-editor", "--wait", "/tmp/cfg.yaml"}
	if !slices.Equal(cmd.Args, want) {
		t.Fatalf("editorCommand() args = %#v, want %#v", cmd.Args, want)
	}

	if _, err := editorCommand(" \t", "/tmp/cfg.yaml"); err == nil {
		t.Fatalf("editorCommand() expected error for blank editor")
	}
}

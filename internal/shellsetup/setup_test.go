package shellsetup

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		parent        func() string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "falls back to parent shell",
			goos:          "linux",
			parent:        func() string { return "/usr/bin/bash" },
			expectedShell: "bash",
		},
		{
			name:          "login shell dash prefix",
			goos:          "darwin",
			parent:        func() string { return "-fish" },
			expectedShell: "fish",
		},
		{
			name:          "powershell is canonicalised",
			goos:          "windows",
			parent:        func() string { return `"C:\Windows\powershell.exe" -NoLogo` },
			expectedShell: "pwsh",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
		{
			name:          "unix fallback",
			goos:          "linux",
			expectedShell: "bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				if key == "SHELL" {
					return tt.envShell
				}
				return ""
			}
			got := detectShellInternal(tt.goos, env, tt.parent)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestScriptPosix(t *testing.T) {
	script, err := Script("zsh", "/opt/it's/rtree")
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	for _, want := range []string{
		"rtree() {",
		`config|shell|help|-h|--help|--version)`,
		`command '/opt/it'\''s/rtree' --print-cwd "$@"`,
		`cd -- "$_rtree_dest"`,
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("expected %q in:\n%s", want, script)
		}
	}
}

func TestScriptFishAndPwsh(t *testing.T) {
	fish, err := Script("fish", "/usr/bin/rtree")
	if err != nil {
		t.Fatalf("fish: %v", err)
	}
	if !strings.Contains(fish, "function rtree") || !strings.Contains(fish, "command '/usr/bin/rtree' --print-cwd $argv") {
		t.Fatalf("unexpected fish script:\n%s", fish)
	}

	pwsh, err := Script("powershell", `C:\Tools\rtree.exe`)
	if err != nil {
		t.Fatalf("pwsh: %v", err)
	}
	if !strings.Contains(pwsh, `& 'C:\Tools\rtree.exe' --print-cwd @args`) {
		t.Fatalf("unexpected pwsh script:\n%s", pwsh)
	}
}

func TestScriptUnsupportedShell(t *testing.T) {
	if _, err := Script("tcsh", "rtree"); err == nil {
		t.Fatalf("expected error for tcsh")
	}
}

func TestWriteUsesOverride(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		DetectParent: func() string { return "bash" },
		Executable:   "/bin/rtree",
	}
	if err := Write(&buf, "fish", cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "function rtree") {
		t.Fatalf("expected fish function, got:\n%s", buf.String())
	}
}

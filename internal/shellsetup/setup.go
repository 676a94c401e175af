// Package shellsetup prints shell functions that cd into the directory rtree
// was showing when it exited.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// ParentShellFunc names the shell that launched the process, or "".
type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable overrides the binary path baked into the function.
	Executable string
}

// passthrough lists first arguments that must not be captured.
var passthrough = []string{"config", "shell", "help", "-h", "--help", "--version"}

const posixTemplate = `rtree() {
    case "$1" in
        %[2]s)
            command %[1]s "$@"
            return $?
            ;;
    esac

    _rtree_dest="$(command %[1]s --print-cwd "$@")" || return $?
    if [ -n "$_rtree_dest" ] && [ -d "$_rtree_dest" ]; then
        cd -- "$_rtree_dest"
    fi
    unset _rtree_dest
}
`

const fishTemplate = `function rtree
    switch "$argv[1]"
        case %[2]s
            command %[1]s $argv
            return $status
    end

    set -l dest (command %[1]s --print-cwd $argv)
    or return $status
    if test -n "$dest"; and test -d "$dest"
        builtin cd -- "$dest"
    end
end
`

const pwshTemplate = `function rtree {
    if ($args.Count -gt 0 -and @(%[2]s) -contains $args[0]) {
        & %[1]s @args
        return
    }

    $dest = & %[1]s --print-cwd @args
    if ($LASTEXITCODE -eq 0 -and $dest -and (Test-Path -LiteralPath $dest -PathType Container)) {
        Set-Location -LiteralPath $dest
    }
}
`

// Write prints the integration snippet for shellOverride, or for the detected
// shell when shellOverride is empty.
func Write(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "rtree"
		}
	}

	script, err := Script(shell, exe)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return errors.Wrap(err, "write shell snippet")
}

// Script renders the wrapper function for shell.
func Script(shell, exe string) (string, error) {
	switch canonicalShellName(shell) {
	case "bash", "zsh", "sh", "ksh", "dash":
		return fmt.Sprintf(posixTemplate, quotePOSIX(exe), strings.Join(passthrough, "|")), nil
	case "fish":
		words := make([]string, len(passthrough))
		for i, p := range passthrough {
			words[i] = quoteFish(p)
		}
		return fmt.Sprintf(fishTemplate, quoteFish(exe), strings.Join(words, " ")), nil
	case "pwsh":
		words := make([]string, len(passthrough))
		for i, p := range passthrough {
			words[i] = quotePwsh(p)
		}
		return fmt.Sprintf(pwshTemplate, quotePwsh(exe), strings.Join(words, ",")), nil
	default:
		return "", errors.Errorf("unsupported shell %q (want bash, zsh, sh, ksh, fish or pwsh)", shell)
	}
}

func quotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func quotePwsh(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

func canonicalShellName(name string) string {
	if name == "powershell" {
		return "pwsh"
	}
	return name
}

// normalizeShellName reduces a path or command line to a lower-case binary
// name without extension.
func normalizeShellName(value string) string {
	value = firstWord(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimPrefix(base, "-") // login shells: "-zsh"
	return strings.TrimSuffix(base, ".exe")
}

// firstWord returns the executable part of a command line, honouring a
// leading quoted path.
func firstWord(value string) string {
	for _, q := range []string{`"`, "'"} {
		if strings.HasPrefix(value, q) {
			value = value[1:]
			if idx := strings.Index(value, q); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}

package main

// Notes:
// - GenerateCompletion: we test that shell scripts carry the expected markers.
//   Running them in real shells is out of scope.
// - getCommands: flags are read from the FlagSets, so new flags appear here
//   without edits.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_md2adoc()",
				"complete -o filenames -F _md2adoc md2adoc",
				"compgen -W \"convert lint doctor completion version help\"",
				"-o|--output)",
				"compgen -f -X '!*.@(yaml|yml)'",
				"--auto-columns",
				"--no-readme",
				"*.@(md|markdown)",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef md2adoc",
				"_describe 'command' commands",
				"_arguments -s",
				"'(-o --output)'{-o,--output}'[output directory]:directory:_files -/'",
				"'--json[output findings as JSON]'",
				"'1:argument:(bash zsh fish)'",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c md2adoc -f",
				"-n '__fish_use_subcommand' -a convert",
				"-n '__fish_seen_subcommand_from convert' -s w -l workers",
				"-l asset-path -d 'custom asset directory' -r -a '(__fish_complete_directories)'",
				"-s c -l config -d 'config file name or path' -r -F",
				"__fish_complete_suffix .md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error = %v", tt.shell, err)
			}
			assertContains(t, buf.String(), tt.wantContains...)
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GenerateCompletion(powershell) error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for unsupported shell", buf.Len())
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	byName := map[string]commandDef{}
	for _, c := range getCommands() {
		byName[c.Name] = c
	}

	for _, name := range []string{"convert", "lint", "doctor", "completion", "version", "help"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("command %q missing", name)
		}
	}

	flags := map[string]flagDef{}
	for _, f := range byName["convert"].Flags {
		flags[f.Long] = f
	}
	checks := []struct {
		long  string
		short string
		typ   flagType
	}{
		{long: "output", short: "o", typ: flagDir},
		{long: "workers", short: "w", typ: flagInt},
		{long: "recursive", short: "r", typ: flagBool},
		{long: "config", short: "c", typ: flagFile},
		{long: "asset-path", typ: flagDir},
		{long: "no-readme", typ: flagBool},
	}
	for _, c := range checks {
		f, ok := flags[c.long]
		if !ok {
			t.Errorf("convert flag --%s missing", c.long)
			continue
		}
		if f.Short != c.short || f.Type != c.typ {
			t.Errorf("--%s = {short %q type %d}, want {short %q type %d}", c.long, f.Short, f.Type, c.short, c.typ)
		}
	}

	help := strings.Join(byName["help"].Args, " ")
	if help != "convert lint doctor completion version" {
		t.Errorf("help args = %q", help)
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion(nil) error = %v", err)
	}
	assertContains(t, stdout.String(), "Usage: md2adoc completion <shell>", "Supported shells: bash, fish, zsh")

	env, stdout, _ = testEnv(nil)
	if err := runCompletion([]string{"fish"}, env); err != nil {
		t.Fatalf("runCompletion(fish) error = %v", err)
	}
	assertContains(t, stdout.String(), "complete -c md2adoc")
}

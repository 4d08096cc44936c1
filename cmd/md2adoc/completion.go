package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	Args       []string // fixed argument values (completion shells, help topics)
	TakesFiles bool     // accepts Markdown files or directories
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// markdownGlob matches completion candidates for input arguments.
const markdownGlob = "*.md,*.markdown"

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	commands := []commandDef{
		{
			Name:       "convert",
			Desc:       "Convert markdown files to AsciiDoc",
			Flags:      extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles: true,
		},
		{
			Name:       "lint",
			Desc:       "Report markdown the converter does not translate",
			Flags:      extractFlagsFromFlagSet(newLintFlagSet(&lintFlags{})),
			TakesFiles: true,
		},
		{
			Name:  "doctor",
			Desc:  "Check renderers, config and environment",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "output as JSON"}},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}

	for _, c := range commands {
		if c.Name != "help" {
			commands[len(commands)-1].Args = append(commands[len(commands)-1].Args, c.Name)
		}
	}
	return commands
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

// generateBash renders a bash completion function.
func generateBash(commands []commandDef) string {
	var b strings.Builder

	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}

	b.WriteString("# bash completion for md2adoc\n\n")
	b.WriteString("_md2adoc() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(names, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		var valueCases []string
		for _, f := range c.Flags {
			var action string
			switch f.Type {
			case flagDir:
				action = "COMPREPLY=( $(compgen -d -- \"$cur\") )"
			case flagFile:
				action = fmt.Sprintf("COMPREPLY=( $(compgen -f -X '!%s' -- \"$cur\") )", bashExtglob(f.FileGlob))
			case flagEnum:
				action = fmt.Sprintf("COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )", strings.Join(f.Values, " "))
			case flagString, flagInt:
				action = ":"
			default:
				continue
			}
			valueCases = append(valueCases, fmt.Sprintf("        %s)\n            %s\n            return\n            ;;\n", bashFlagPattern(f), action))
		}
		if len(valueCases) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, vc := range valueCases {
				b.WriteString(vc)
			}
			b.WriteString("        esac\n")
		}

		if len(c.Flags) > 0 {
			var words []string
			for _, f := range c.Flags {
				words = append(words, "--"+f.Long)
				if f.Short != "" {
					words = append(words, "-"+f.Short)
				}
			}
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(words, " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}

		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -d -- \"$cur\") $(compgen -f -X '!%s' -- \"$cur\") )\n", bashExtglob(markdownGlob))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -F _md2adoc md2adoc\n")
	return b.String()
}

// bashFlagPattern returns the case pattern matching a flag's spellings.
func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

// bashExtglob converts "*.yaml,*.yml" to the extglob "*.@(yaml|yml)".
func bashExtglob(globs string) string {
	var exts []string
	for _, g := range strings.Split(globs, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
	}
	return "*.@(" + strings.Join(exts, "|") + ")"
}

// generateZsh renders a zsh completion function.
func generateZsh(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef md2adoc\n\n")
	b.WriteString("_md2adoc() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    words=(${words[2,-1]})\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $words[1] in\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        _arguments -s")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, " \\\n            %s", zshFlagSpec(f))
		}
		switch {
		case c.TakesFiles:
			b.WriteString(" \\\n            '1:input:_files -g \"*.(md|markdown)\"'")
		case len(c.Args) > 0:
			fmt.Fprintf(&b, " \\\n            '1:argument:(%s)'", strings.Join(c.Args, " "))
		}
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2adoc md2adoc\n")
	return b.String()
}

// zshFlagSpec returns the _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"

	var arg string
	switch f.Type {
	case flagBool:
	case flagDir:
		arg = ":directory:_files -/"
	case flagFile:
		var exts []string
		for _, g := range strings.Split(f.FileGlob, ",") {
			exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
		}
		arg = ":file:_files -g \"*.(" + strings.Join(exts, "|") + ")\""
	case flagEnum:
		arg = ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagInt:
		arg = ":number: "
	default:
		arg = ":value: "
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, arg)
	}
	return fmt.Sprintf("'--%s%s%s'", f.Long, desc, arg)
}

// zshEscape escapes characters special in _arguments descriptions.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// generateFish renders fish completion commands.
func generateFish(commands []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for md2adoc\n\n")
	b.WriteString("complete -c md2adoc -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c md2adoc -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range commands {
		cond := "__fish_seen_subcommand_from " + c.Name
		b.WriteString("\n")

		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2adoc -n '%s'", cond)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + " -d '" + fishEscape(f.Desc) + "'"

			switch f.Type {
			case flagDir:
				line += " -r -a '(__fish_complete_directories)'"
			case flagFile:
				line += " -r -F"
			case flagEnum:
				line += " -r -a '" + strings.Join(f.Values, " ") + "'"
			case flagString, flagInt:
				line += " -r"
			}
			b.WriteString(line + "\n")
		}

		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c md2adoc -n '%s' -a '(__fish_complete_suffix .md)'\n", cond)
			fmt.Fprintf(&b, "complete -c md2adoc -n '%s' -a '(__fish_complete_directories)'\n", cond)
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c md2adoc -n '%s' -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}

	return b.String()
}

// fishEscape escapes single quotes for fish single-quoted strings.
func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// supportedShells returns the shell names in sorted order.
func supportedShells() []string {
	shells := []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
	sort.Strings(shells)
	return shells
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2adoc completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a completion script for the given shell.")
	fmt.Fprintf(w, "Supported shells: %s\n", strings.Join(supportedShells(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2adoc completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2adoc completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2adoc completion fish > ~/.config/fish/completions/md2adoc.fish")
}

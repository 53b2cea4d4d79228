package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: grocerylist [generate] <input>... [flags]")
	fmt.Fprintln(w, "       grocerylist <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Turn grocery lists into LaTeX documents (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'grocerylist help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: grocerylist generate <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Turn plain-text grocery lists (one item per line) into LaTeX documents.")
	fmt.Fprintln(w, "groceries.txt becomes groceries.tex next to it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    List file or directory of .txt/.list files")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: tex, md")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --watch               Regenerate when an input changes")
	fmt.Fprintln(w, "      --skip-blank          Drop empty and whitespace-only lines")
	fmt.Fprintln(w, "      --raw                 Do not escape LaTeX special characters")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split:")
	fmt.Fprintln(w, "  -m, --mode <s>            single (default) or split-two")
	fmt.Fprintln(w, "      --names <a,b>         Names of the two split-two sections (default A,B)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Heading text (default \"Grocery List\")")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DDDD, DDD, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): compact, iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Week of] D MMM")
	fmt.Fprintln(w, "      --font <s>            Main font (default Andika)")
	fmt.Fprintln(w, "      --font-size <n>       10, 11 or 12 points (default 12)")
	fmt.Fprintln(w, "      --columns <n>         List columns 1-4 (default 2)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --template <name>     Template set: default, compact")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom sets in <dir>/templates/<name>/document.tex")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GROCERYLIST_CONFIG, GROCERYLIST_MODE, GROCERYLIST_FORMAT, GROCERYLIST_NAMES,")
	fmt.Fprintln(w, "  GROCERYLIST_TEMPLATE, GROCERYLIST_OUTPUT_DIR, GROCERYLIST_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 error, 2 usage, 3 input, 4 output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: grocerylist version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: grocerylist help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

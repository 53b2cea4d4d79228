package pipeline

import "strings"

// latexEscaper replaces LaTeX special characters in a single pass, so the
// braces it introduces are never escaped again.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`%`, `\%`,
)

// EscapeLaTeX makes s safe to place in LaTeX body text.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

package rendering

import "strings"

// latexReplacer escapes the LaTeX special characters \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// urlReplacer escapes the characters hyperref cannot take verbatim in \href
var urlReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`%`, `\%`,
	`#`, `\#`,
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// EscapeLines escapes text and turns each line break into a forced LaTeX line break
func EscapeLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = EscapeLaTeX(line)
	}
	return strings.Join(lines, "\\newline%\n")
}

// EscapeURL escapes a link target for use as the first argument of \href
func EscapeURL(url string) string {
	return urlReplacer.Replace(url)
}

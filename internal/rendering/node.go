package rendering

import "strings"

// Node is one element of a LaTeX document. Nodes are immutable values; composite
// nodes hold their children by value and never modify them.
type Node interface {
	WriteLaTeX(sb *strings.Builder)
}

// Text is user content. It is escaped when written and line breaks are forced.
type Text string

// WriteLaTeX implements Node
func (t Text) WriteLaTeX(sb *strings.Builder) {
	sb.WriteString(EscapeLines(string(t)))
}

// Raw is trusted LaTeX written verbatim
type Raw string

// WriteLaTeX implements Node
func (r Raw) WriteLaTeX(sb *strings.Builder) {
	sb.WriteString(string(r))
}

// Command is a macro call: \name[options]{arg1}{arg2}...
type Command struct {
	Name    string
	Options []string
	Args    []Node
}

// WriteLaTeX implements Node
func (c Command) WriteLaTeX(sb *strings.Builder) {
	sb.WriteString(`\`)
	sb.WriteString(c.Name)
	if len(c.Options) > 0 {
		sb.WriteString("[")
		sb.WriteString(strings.Join(c.Options, ","))
		sb.WriteString("]")
	}
	for _, arg := range c.Args {
		sb.WriteString("{")
		arg.WriteLaTeX(sb)
		sb.WriteString("}")
	}
}

// Fragment is a run of inline nodes written back to back
type Fragment []Node

// WriteLaTeX implements Node
func (f Fragment) WriteLaTeX(sb *strings.Builder) {
	for _, n := range f {
		n.WriteLaTeX(sb)
	}
}

// Environment is a \begin{name}...\end{name} block. Each body node is written on
// its own line.
type Environment struct {
	Name string
	Args []string
	Body []Node
}

// WriteLaTeX implements Node
func (e Environment) WriteLaTeX(sb *strings.Builder) {
	sb.WriteString(`\begin{`)
	sb.WriteString(e.Name)
	sb.WriteString("}")
	for _, arg := range e.Args {
		sb.WriteString("{")
		sb.WriteString(arg)
		sb.WriteString("}")
	}
	sb.WriteString("%\n")
	writeBlock(sb, e.Body)
	sb.WriteString(`\end{`)
	sb.WriteString(e.Name)
	sb.WriteString("}")
}

// Tabular is a table with a column spec and rows of cells
type Tabular struct {
	ColumnSpec string
	Rows       [][]Node
}

// WriteLaTeX implements Node
func (t Tabular) WriteLaTeX(sb *strings.Builder) {
	sb.WriteString(`\begin{tabular}{`)
	sb.WriteString(t.ColumnSpec)
	sb.WriteString("}%\n")
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("&")
			}
			cell.WriteLaTeX(sb)
		}
		sb.WriteString(`\\%`)
		sb.WriteString("\n")
	}
	sb.WriteString(`\end{tabular}`)
}

// writeBlock writes nodes one per line, each line ending in a comment so that no
// stray whitespace reaches the output.
func writeBlock(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		n.WriteLaTeX(sb)
		sb.WriteString("%\n")
	}
}

// Dumps returns the LaTeX for a sequence of block-level nodes
func Dumps(nodes ...Node) string {
	var sb strings.Builder
	writeBlock(&sb, nodes)
	return sb.String()
}

// Inline returns the LaTeX for a single node without a trailing line break
func Inline(n Node) string {
	var sb strings.Builder
	n.WriteLaTeX(&sb)
	return sb.String()
}

// Cmd returns an argument-less command such as \hfill
func Cmd(name string) Command {
	return Command{Name: name}
}

// Bold returns \textbf{text}
func Bold(text string) Command {
	return Command{Name: "textbf", Args: []Node{Text(text)}}
}

// Italic returns \textit{text}
func Italic(text string) Command {
	return Command{Name: "textit", Args: []Node{Text(text)}}
}

// HSpace returns \hspace{length}
func HSpace(length string) Command {
	return Command{Name: "hspace", Args: []Node{Raw(length)}}
}

// VSpace returns \vspace{length}
func VSpace(length string) Command {
	return Command{Name: "vspace", Args: []Node{Raw(length)}}
}

// TextColor returns \textcolor{color}{content}
func TextColor(color string, content Node) Command {
	return Command{Name: "textcolor", Args: []Node{Raw(color), content}}
}

// Href returns \href{url}{label}
func Href(url string, label Node) Command {
	return Command{Name: "href", Args: []Node{Raw(EscapeURL(url)), label}}
}

// Itemize returns an itemize environment with one \item per entry, order preserved
func Itemize(items []string) Environment {
	body := make([]Node, 0, len(items))
	for _, item := range items {
		body = append(body, Fragment{Raw(`\item `), Text(item)})
	}
	return Environment{Name: "itemize", Body: body}
}

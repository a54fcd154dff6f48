package layout

import (
	"github.com/jonathan/resumetex/internal/rendering"
	"github.com/jonathan/resumetex/internal/types"
)

const (
	detailIndent = "0.25in"
	inlineGap    = "6pt"
	linkColor    = "blue"
)

// Link is a hyperlink with display text
type Link struct {
	Text   string
	Target string
}

// EntryOptions holds the optional parts of an entry. The zero value means every
// part is absent.
type EntryOptions struct {
	Context    *string
	Location   *types.Location
	EndDate    *types.Date
	Link       *Link
	Summary    *string
	Highlights []string
	IsInstant  bool
}

// Entry is one dated item of a section: a job, a degree, a project or an award
type Entry struct {
	Title string
	Start types.Date
	EntryOptions
}

// NewEntry returns an entry with the given options
func NewEntry(title string, start types.Date, opts EntryOptions) Entry {
	return Entry{Title: title, Start: start, EntryOptions: opts}
}

// Render returns the entry's heading line followed by its indented details, if any.
//
// The heading is: bold title, optional ", " and italic context, optional colored
// link, a fill, optional bold location, then the italic date range.
func (e Entry) Render() ([]rendering.Node, error) {
	heading := rendering.Fragment{rendering.Bold(e.Title)}
	if e.Context != nil {
		heading = append(heading, rendering.Text(", "), rendering.Italic(*e.Context))
	}
	if e.Link != nil {
		heading = append(heading,
			rendering.HSpace(inlineGap),
			rendering.TextColor(linkColor, rendering.Href(e.Link.Target, rendering.Text(e.Link.Text))),
		)
	}
	heading = append(heading, rendering.Cmd("hfill"))
	if e.Location != nil {
		loc, err := FormatLocation(e.Location)
		if err != nil {
			return nil, err
		}
		heading = append(heading, rendering.Bold(loc), rendering.HSpace(inlineGap))
	}
	heading = append(heading,
		rendering.Italic(FormatTimeRange(e.Start, e.EndDate, e.IsInstant)),
		rendering.Cmd("par"),
	)

	nodes := []rendering.Node{heading}
	if details := e.details(); details != nil {
		nodes = append(nodes, details)
	}
	return nodes, nil
}

// details returns the indented summary and bullet list, or nil when there is neither.
// An empty highlight list produces no itemize; LaTeX rejects a list without items.
func (e Entry) details() rendering.Node {
	if e.Summary == nil && len(e.Highlights) == 0 {
		return nil
	}

	var body []rendering.Node
	if e.Summary != nil {
		body = append(body, rendering.Text(*e.Summary))
	}
	if len(e.Highlights) > 0 {
		body = append(body, rendering.Itemize(e.Highlights))
	}
	return rendering.Environment{
		Name: "adjustwidth",
		Args: []string{detailIndent, "0in"},
		Body: body,
	}
}

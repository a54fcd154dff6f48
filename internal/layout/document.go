package layout

import (
	"strings"

	"github.com/jonathan/resumetex/internal/rendering"
	"github.com/jonathan/resumetex/internal/types"
)

// Assembler builds the complete document for a résumé
type Assembler struct {
	ResourceDir string
}

// NewAssembler returns an Assembler that references icons under resourceDir
func NewAssembler(resourceDir string) *Assembler {
	if resourceDir == "" {
		resourceDir = DefaultResourceDir
	}
	return &Assembler{ResourceDir: resourceDir}
}

// Assemble returns the moderncv document: preamble, header, then the body sections
func (a *Assembler) Assemble(r *types.Resume) (*rendering.Document, error) {
	if r == nil {
		return nil, &InvariantViolation{Message: "cannot assemble an absent resume"}
	}

	header, err := a.Header(r.Basics)
	if err != nil {
		return nil, err
	}
	body, err := Body(r)
	if err != nil {
		return nil, err
	}

	return &rendering.Document{
		Class:        "moderncv",
		ClassOptions: []string{"10pt", "letterpaper"},
		Packages: []rendering.Package{
			{Name: "fontenc", Options: []string{"T1"}},
			{Name: "inputenc", Options: []string{"utf8"}},
			{Name: "lmodern"},
			{Name: "textcomp"},
			{Name: "lastpage"},
			{Name: "geometry"},
			{Name: "changepage"},
			{Name: "graphicx"},
			{Name: "xcolor"},
			{Name: "hyperref"},
		},
		Geometry: []string{"lmargin=0.5in", "rmargin=0.5in", "tmargin=0.5in", "bmargin=0.5in"},
		Preamble: []rendering.Node{
			rendering.Command{Name: "moderncvstyle", Args: []rendering.Node{rendering.Raw("empty")}},
			rendering.Command{Name: "moderncvcolor", Args: []rendering.Node{rendering.Raw("black")}},
			nameCommand(r.Basics.Name),
		},
		Body: append(header, body...),
	}, nil
}

// nameCommand splits the full name into moderncv's first and last name arguments
func nameCommand(name string) rendering.Command {
	first, last := "", ""
	if parts := strings.Fields(name); len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}
	return rendering.Command{
		Name: "name",
		Args: []rendering.Node{rendering.Text(first), rendering.Text(last)},
	}
}

// Header returns the title, the contact table and the profile table
func (a *Assembler) Header(b types.Basics) ([]rendering.Node, error) {
	contact, err := a.ContactTable(b)
	if err != nil {
		return nil, err
	}

	center := []rendering.Node{
		rendering.Environment{Name: "huge", Body: []rendering.Node{rendering.Bold(b.Name)}},
		rendering.Cmd("break"),
		contact,
		rendering.Cmd("break"),
	}
	if b.Profiles != nil {
		center = append(center, a.ProfileTable(b.Profiles))
	}

	return []rendering.Node{
		rendering.Cmd("makecvtitle"),
		rendering.Environment{Name: "center", Body: center},
	}, nil
}

// ContactTable returns phone, email and home location each preceded by an icon.
// The location column is left out when the location is absent.
func (a *Assembler) ContactTable(b types.Basics) (rendering.Tabular, error) {
	row := []rendering.Node{
		rendering.Fragment{
			InlineIcon(a.ResourceDir, IconPhone),
			rendering.Text(" " + b.Phone),
		},
		rendering.Fragment{
			InlineIcon(a.ResourceDir, IconMail),
			rendering.Text(" "),
			rendering.Href("mailto:"+b.Email, rendering.Text(b.Email)),
		},
	}
	if b.Location != nil {
		loc, err := FormatLocation(b.Location)
		if err != nil {
			return rendering.Tabular{}, err
		}
		row = append(row, rendering.Fragment{
			InlineIcon(a.ResourceDir, IconHome),
			rendering.Text(" " + loc),
		})
	}

	return rendering.Tabular{
		ColumnSpec: columns(len(row)),
		Rows:       [][]rendering.Node{row},
	}, nil
}

// ProfileTable returns one column per profile, each an icon and network/username link.
// No profiles gives an empty table.
func (a *Assembler) ProfileTable(profiles []types.Profile) rendering.Tabular {
	if len(profiles) == 0 {
		return rendering.Tabular{}
	}

	row := make([]rendering.Node, 0, len(profiles))
	for _, p := range profiles {
		row = append(row, rendering.Href(p.URL, rendering.Fragment{
			InlineIcon(a.ResourceDir, ResolveIcon(p.Network)),
			rendering.Text(" " + p.Network + "/" + p.Username),
		}))
	}
	return rendering.Tabular{
		ColumnSpec: columns(len(row)),
		Rows:       [][]rendering.Node{row},
	}
}

func columns(n int) string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = "c"
	}
	return strings.Join(cols, " | ")
}

// Body returns the sections in fixed order. A section appears when its list is
// present, even if the list is empty.
func Body(r *types.Resume) ([]rendering.Node, error) {
	var body []rendering.Node

	if r.HasEducation() {
		nodes, err := EducationSection(r.Education)
		if err != nil {
			return nil, err
		}
		body = append(body, nodes...)
	}
	if r.HasWork() {
		nodes, err := ExperienceSection(r.Work)
		if err != nil {
			return nil, err
		}
		body = append(body, nodes...)
	}
	if r.HasProjects() {
		nodes, err := ProjectsSection(r.Projects)
		if err != nil {
			return nil, err
		}
		body = append(body, nodes...)
	}
	if r.HasCertificates() || r.HasAwards() {
		nodes, err := CertificationsAndAwardsSection(r.Certificates, r.Awards)
		if err != nil {
			return nil, err
		}
		body = append(body, nodes...)
	}
	if r.HasSkills() {
		body = append(body, SkillsSection(r.Skills)...)
	}

	return body, nil
}

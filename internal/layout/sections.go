package layout

import (
	"fmt"
	"strings"

	"github.com/jonathan/resumetex/internal/rendering"
	"github.com/jonathan/resumetex/internal/types"
)

// Section titles
const (
	TitleEducation      = "Education"
	TitleExperience     = "Experience"
	TitleProjects       = "Projects"
	TitleCertifications = "Certifications"
	TitleAwards         = "Awards"
	TitleCertsAndAwards = "Certifications & Awards"
	TitleSkills         = "Skills"

	defaultLinkText = "(link)"
)

// SectionTitle returns the heading block that opens every section
func SectionTitle(title string) []rendering.Node {
	return []rendering.Node{
		rendering.VSpace(".1in"),
		rendering.Environment{Name: "large", Body: []rendering.Node{rendering.Bold(title)}},
		rendering.VSpace(".05in"),
		rendering.Cmd("hrule"),
		rendering.VSpace("0.05in"),
	}
}

// renderEntries appends every entry to the section title block
func renderEntries(title string, entries []Entry) ([]rendering.Node, error) {
	nodes := SectionTitle(title)
	for _, e := range entries {
		rendered, err := e.Render()
		if err != nil {
			return nil, fmt.Errorf("%s entry %q: %w", strings.ToLower(title), e.Title, err)
		}
		nodes = append(nodes, rendered...)
	}
	return nodes, nil
}

// EducationSection lists degrees with a synthesized summary of area, concentration,
// result and coursework.
func EducationSection(education []types.Education) ([]rendering.Node, error) {
	entries := make([]Entry, 0, len(education))
	for _, ed := range education {
		summary := educationSummary(ed)
		entries = append(entries, NewEntry(ed.StudyType, ed.StartDate, EntryOptions{
			Context:  &ed.Institution,
			Location: ed.Location,
			EndDate:  ed.EndDate,
			Summary:  &summary,
		}))
	}
	return renderEntries(TitleEducation, entries)
}

func educationSummary(ed types.Education) string {
	lines := []string{"Area of study: " + ed.Area}
	if ed.SubArea != nil {
		lines = append(lines, "Concentration: "+*ed.SubArea)
	}
	if ed.Score != nil {
		lines = append(lines, "Final result: "+*ed.Score)
	}
	if len(ed.Courses) > 0 {
		lines = append(lines, "Relevant coursework: "+strings.Join(ed.Courses, ", "))
	}
	return strings.Join(lines, "\n")
}

// ExperienceSection lists positions with their highlights in input order
func ExperienceSection(work []types.Work) ([]rendering.Node, error) {
	entries := make([]Entry, 0, len(work))
	for _, w := range work {
		entries = append(entries, NewEntry(w.Position, w.StartDate, EntryOptions{
			Context:    &w.Name,
			Location:   w.Location,
			EndDate:    w.EndDate,
			Highlights: w.Highlights,
		}))
	}
	return renderEntries(TitleExperience, entries)
}

// ProjectsSection lists projects, linking those with a URL
func ProjectsSection(projects []types.Project) ([]rendering.Node, error) {
	entries := make([]Entry, 0, len(projects))
	for _, p := range projects {
		opts := EntryOptions{
			EndDate: p.EndDate,
			Summary: p.Summary,
		}
		if p.URL != nil {
			text := defaultLinkText
			if p.URLText != nil {
				text = *p.URLText
			}
			opts.Link = &Link{Text: text, Target: *p.URL}
		}
		entries = append(entries, NewEntry(p.Name, p.StartDate, opts))
	}
	return renderEntries(TitleProjects, entries)
}

// CertificationsTitle names the combined section after the lists that are present
func CertificationsTitle(hasCertificates, hasAwards bool) string {
	switch {
	case hasCertificates && hasAwards:
		return TitleCertsAndAwards
	case hasAwards:
		return TitleAwards
	default:
		return TitleCertifications
	}
}

// CertificationsAndAwardsSection lists certificates then awards, each in input order.
// Items are single-date entries; a nil list counts as absent for the title.
func CertificationsAndAwardsSection(certificates []types.Certificate, awards []types.Award) ([]rendering.Node, error) {
	entries := make([]Entry, 0, len(certificates)+len(awards))
	for _, c := range certificates {
		entries = append(entries, NewEntry(c.Name, c.Date, EntryOptions{
			Context:   &c.Issuer,
			Summary:   &c.Summary,
			IsInstant: true,
		}))
	}
	for _, a := range awards {
		entries = append(entries, NewEntry(a.Name, a.Date, EntryOptions{
			Context:   &a.Awarder,
			Summary:   &a.Summary,
			IsInstant: true,
		}))
	}
	return renderEntries(CertificationsTitle(certificates != nil, awards != nil), entries)
}

// SkillsSection lists one line per skill: italic name, then its keywords
func SkillsSection(skills []types.Skill) []rendering.Node {
	nodes := SectionTitle(TitleSkills)
	for _, s := range skills {
		nodes = append(nodes, rendering.Fragment{
			rendering.Italic(s.Name),
			rendering.Text(": "),
			rendering.Text(strings.Join(s.Keywords, ", ")),
			rendering.Cmd("newline"),
		})
	}
	return nodes
}

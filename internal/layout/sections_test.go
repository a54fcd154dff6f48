package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resumetex/internal/rendering"
	"github.com/jonathan/resumetex/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionTitle(t *testing.T) {
	out := rendering.Dumps(SectionTitle("Skills")...)
	expected := "\\vspace{.1in}%\n" +
		"\\begin{large}%\n\\textbf{Skills}%\n\\end{large}%\n" +
		"\\vspace{.05in}%\n\\hrule%\n\\vspace{0.05in}%\n"
	assert.Equal(t, expected, out)
}

func TestEducationSection(t *testing.T) {
	nodes, err := EducationSection([]types.Education{{
		Institution: "State University",
		Area:        "Computer Science",
		SubArea:     strPtr("Systems"),
		StudyType:   "B.S.",
		StartDate:   types.NewDate(2014, time.September, 1),
		EndDate:     datePtr(types.NewDate(2018, time.May, 15)),
		Score:       strPtr("3.9"),
		Courses:     []string{"Operating Systems", "Compilers"},
		Location:    &types.Location{City: "Springfield", Region: "CA", CountryCode: "US"},
	}})
	require.NoError(t, err)
	out := rendering.Dumps(nodes...)

	assert.Contains(t, out, "\\textbf{Education}")
	assert.Contains(t, out, "\\textbf{B.S.}, \\textit{State University}")
	assert.Contains(t, out, "\\textbf{Springfield, CA}")
	assert.Contains(t, out, "\\textit{09/2014 - 05/2018}")
	assert.Contains(t, out,
		"Area of study: Computer Science\\newline%\n"+
			"Concentration: Systems\\newline%\n"+
			"Final result: 3.9\\newline%\n"+
			"Relevant coursework: Operating Systems, Compilers")
}

func TestEducationSummary_OmitsAbsentFields(t *testing.T) {
	summary := educationSummary(types.Education{Area: "Math", Courses: []string{}})
	assert.Equal(t, "Area of study: Math", summary)
}

func TestExperienceSection_Scenario(t *testing.T) {
	nodes, err := ExperienceSection([]types.Work{{
		Name:       "Acme",
		Position:   "Engineer",
		StartDate:  types.NewDate(2020, time.January, 1),
		Highlights: []string{"Shipped X"},
	}})
	require.NoError(t, err)
	out := rendering.Dumps(nodes...)

	assert.Contains(t, out, "\\textbf{Experience}")
	assert.Contains(t, out, "\\textbf{Engineer}")
	assert.Contains(t, out, "\\textit{Acme}")
	assert.Contains(t, out, "\\textit{01/2020 - present}")
	assert.Equal(t, 1, strings.Count(out, "\\item "))
	assert.Contains(t, out, "\\item Shipped X")
}

func TestExperienceSection_Empty(t *testing.T) {
	nodes, err := ExperienceSection([]types.Work{})
	require.NoError(t, err)
	assert.Equal(t, rendering.Dumps(SectionTitle(TitleExperience)...), rendering.Dumps(nodes...))
}

func TestExperienceSection_HighlightOrder(t *testing.T) {
	nodes, err := ExperienceSection([]types.Work{{
		Name: "Acme", Position: "Engineer",
		StartDate:  types.NewDate(2020, time.January, 1),
		Highlights: []string{"zeta", "alpha", "mu"},
	}})
	require.NoError(t, err)
	out := rendering.Dumps(nodes...)

	assert.Less(t, strings.Index(out, "zeta"), strings.Index(out, "alpha"))
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "mu"))
}

func TestProjectsSection_Links(t *testing.T) {
	nodes, err := ProjectsSection([]types.Project{
		{Name: "Labelled", StartDate: types.NewDate(2022, time.February, 1), URL: strPtr("https://a.test"), URLText: strPtr("source")},
		{Name: "Default", StartDate: types.NewDate(2022, time.March, 1), URL: strPtr("https://b.test")},
		{Name: "Unlinked", StartDate: types.NewDate(2022, time.April, 1), Summary: strPtr("no link")},
	})
	require.NoError(t, err)
	out := rendering.Dumps(nodes...)

	assert.Contains(t, out, "\\href{https://a.test}{source}")
	assert.Contains(t, out, "\\href{https://b.test}{(link)}")
	assert.Equal(t, 2, strings.Count(out, "\\href"))
	assert.Contains(t, out, "no link")
}

func TestProjectsSection_HighlightsNotRendered(t *testing.T) {
	nodes, err := ProjectsSection([]types.Project{{
		Name: "P", StartDate: types.NewDate(2022, time.February, 1),
		Highlights: []string{"hidden"},
	}})
	require.NoError(t, err)
	assert.NotContains(t, rendering.Dumps(nodes...), "hidden")
}

func TestProjectsSection_EndBeforeStart(t *testing.T) {
	nodes, err := ProjectsSection([]types.Project{{
		Name:      "Backwards",
		StartDate: types.NewDate(2022, time.February, 1),
		EndDate:   datePtr(types.NewDate(2021, time.January, 1)),
	}})
	require.NoError(t, err)
	assert.Contains(t, rendering.Dumps(nodes...), "\\textit{02/2022 - 01/2021}")
}

func TestCertificationsTitle(t *testing.T) {
	assert.Equal(t, "Certifications", CertificationsTitle(true, false))
	assert.Equal(t, "Awards", CertificationsTitle(false, true))
	assert.Equal(t, "Certifications & Awards", CertificationsTitle(true, true))
}

func TestCertificationsAndAwardsSection_CertificatesOnly(t *testing.T) {
	nodes, err := CertificationsAndAwardsSection([]types.Certificate{{
		Name: "AWS", Date: types.NewDate(2021, time.June, 1), Issuer: "Amazon", Summary: "Solutions Architect",
	}}, nil)
	require.NoError(t, err)
	out := rendering.Dumps(nodes...)

	assert.Contains(t, out, "\\textbf{Certifications}%\n")
	assert.NotContains(t, out, "Awards")
	assert.Contains(t, out, "\\textit{06/2021}\\par")
	assert.Contains(t, out, "\\textit{Amazon}")
	assert.Contains(t, out, "Solutions Architect")
}

func TestCertificationsAndAwardsSection_AwardsOnly(t *testing.T) {
	nodes, err := CertificationsAndAwardsSection(nil, []types.Award{})
	require.NoError(t, err)
	assert.Contains(t, rendering.Dumps(nodes...), "\\textbf{Awards}%\n")
}

func TestCertificationsAndAwardsSection_ConcatenatesInSourceOrder(t *testing.T) {
	certs := []types.Certificate{
		{Name: "cert1", Date: types.NewDate(2023, time.January, 1), Issuer: "I", Summary: "s"},
		{Name: "cert2", Date: types.NewDate(2010, time.January, 1), Issuer: "I", Summary: "s"},
	}
	awards := []types.Award{
		{Name: "award1", Date: types.NewDate(2001, time.January, 1), Awarder: "A", Summary: "s"},
		{Name: "award2", Date: types.NewDate(2030, time.January, 1), Awarder: "A", Summary: "s"},
	}

	nodes, err := CertificationsAndAwardsSection(certs, awards)
	require.NoError(t, err)
	out := rendering.Dumps(nodes...)

	assert.Contains(t, out, "\\textbf{Certifications \\& Awards}")
	order := []string{"cert1", "cert2", "award1", "award2"}
	for i := 1; i < len(order); i++ {
		assert.Less(t, strings.Index(out, order[i-1]), strings.Index(out, order[i]),
			"%s should precede %s", order[i-1], order[i])
	}
}

func TestSkillsSection(t *testing.T) {
	nodes := SkillsSection([]types.Skill{
		{Name: "Languages", Keywords: []string{"Go", "C#"}},
		{Name: "Empty", Keywords: []string{}},
	})
	out := rendering.Dumps(nodes...)

	assert.Contains(t, out, "\\textbf{Skills}")
	assert.Contains(t, out, "\\textit{Languages}: Go, C\\#\\newline%\n")
	assert.Contains(t, out, "\\textit{Empty}: \\newline%\n")
}

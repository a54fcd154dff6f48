// Package types provides type definitions for the résumé document model.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the root of a résumé document.
//
// Optional lists use nil to mean "absent". A non-nil empty slice is a list that was
// present in the input with no items; the two render differently.
type Resume struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
}

// HasWork reports whether the work list was present in the input.
func (r *Resume) HasWork() bool { return r.Work != nil }

// HasEducation reports whether the education list was present in the input.
func (r *Resume) HasEducation() bool { return r.Education != nil }

// HasCertificates reports whether the certificates list was present in the input.
func (r *Resume) HasCertificates() bool { return r.Certificates != nil }

// HasAwards reports whether the awards list was present in the input.
func (r *Resume) HasAwards() bool { return r.Awards != nil }

// HasSkills reports whether the skills list was present in the input.
func (r *Resume) HasSkills() bool { return r.Skills != nil }

// HasProjects reports whether the projects list was present in the input.
func (r *Resume) HasProjects() bool { return r.Projects != nil }

// Location is a postal location. City, region and country code are always set.
type Location struct {
	Address     *string `json:"address,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	City        string  `json:"city"`
	CountryCode string  `json:"country_code"`
	Region      string  `json:"region"`
}

// Profile is a social or professional network account
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Basics holds the contact block of a résumé
type Basics struct {
	Name     string    `json:"name"`
	Label    *string   `json:"label,omitempty"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	URL      *string   `json:"url,omitempty"`
	Summary  *string   `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"` // nil when absent
}

// Work is one position held at an organization
type Work struct {
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	URL        *string   `json:"url,omitempty"`
	StartDate  Date      `json:"start_date"`
	EndDate    *Date     `json:"end_date,omitempty"`
	Summary    *string   `json:"summary,omitempty"`
	Highlights []string  `json:"highlights"`
	Location   *Location `json:"location,omitempty"`
}

// Education is one degree or program of study
type Education struct {
	Institution string    `json:"institution"`
	URL         *string   `json:"url,omitempty"`
	Area        string    `json:"area"`
	SubArea     *string   `json:"sub_area,omitempty"`
	StudyType   string    `json:"study_type"`
	StartDate   Date      `json:"start_date"`
	EndDate     *Date     `json:"end_date,omitempty"`
	Score       *string   `json:"score,omitempty"`
	Courses     []string  `json:"courses"`
	Location    *Location `json:"location,omitempty"`
}

// Certificate is a certification received on a single date
type Certificate struct {
	Name    string  `json:"name"`
	Date    Date    `json:"date"`
	Issuer  string  `json:"issuer"`
	Summary string  `json:"summary"`
	URL     *string `json:"url,omitempty"`
}

// Award is an award received on a single date
type Award struct {
	Name    string  `json:"name"`
	Date    Date    `json:"date"`
	Awarder string  `json:"awarder"`
	Summary string  `json:"summary"`
	URL     *string `json:"url,omitempty"`
}

// Skill is a named group of keywords
type Skill struct {
	Name     string   `json:"name"`
	Level    *string  `json:"level,omitempty"`
	Keywords []string `json:"keywords"`
}

// Language is a spoken language. It is part of the schema but not rendered.
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Interest is a personal interest. It is part of the schema but not rendered.
type Interest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Project is a personal or professional project
type Project struct {
	Name       string   `json:"name"`
	StartDate  Date     `json:"start_date"`
	EndDate    *Date    `json:"end_date,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"` // nil when absent
	URLText    *string  `json:"url_text,omitempty"`
	URL        *string  `json:"url,omitempty"`
}

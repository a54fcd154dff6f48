package parsing

import (
	"github.com/jonathan/resumetex/internal/types"
)

// ParseResume validates a decoded document and builds the typed résumé.
// It stops at the first violation and returns a *ValidationError naming its field.
func ParseResume(raw map[string]any) (*types.Resume, error) {
	if raw == nil {
		return nil, &ValidationError{Message: "document is empty"}
	}
	root := fields{m: raw}

	basicsFields, err := root.requiredObject("basics")
	if err != nil {
		return nil, err
	}
	basics, err := parseBasics(basicsFields)
	if err != nil {
		return nil, err
	}

	r := &types.Resume{Basics: basics}

	if r.Work, err = optionalList(root, "work", parseWork); err != nil {
		return nil, err
	}
	if r.Education, err = optionalList(root, "education", parseEducation); err != nil {
		return nil, err
	}
	if r.Certificates, err = optionalList(root, "certificates", parseCertificate); err != nil {
		return nil, err
	}
	if r.Awards, err = optionalList(root, "awards", parseAward); err != nil {
		return nil, err
	}
	if r.Skills, err = optionalList(root, "skills", parseSkill); err != nil {
		return nil, err
	}
	if r.Languages, err = optionalList(root, "languages", parseLanguage); err != nil {
		return nil, err
	}
	if r.Interests, err = optionalList(root, "interests", parseInterest); err != nil {
		return nil, err
	}
	if r.Projects, err = optionalList(root, "projects", parseProject); err != nil {
		return nil, err
	}

	return r, nil
}

func parseLocation(f fields) (types.Location, error) {
	var (
		loc types.Location
		err error
	)
	if loc.Address, err = f.optionalString("address"); err != nil {
		return loc, err
	}
	if loc.PostalCode, err = f.optionalString("postal_code"); err != nil {
		return loc, err
	}
	if loc.City, err = f.requiredString("city"); err != nil {
		return loc, err
	}
	if loc.CountryCode, err = f.requiredString("country_code"); err != nil {
		return loc, err
	}
	if loc.Region, err = f.requiredString("region"); err != nil {
		return loc, err
	}
	return loc, nil
}

// optionalLocation returns nil when the location key is absent
func optionalLocation(f fields) (*types.Location, error) {
	obj, ok, err := f.optionalObject("location")
	if err != nil || !ok {
		return nil, err
	}
	loc, err := parseLocation(obj)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func parseProfile(f fields) (types.Profile, error) {
	var (
		p   types.Profile
		err error
	)
	if p.Network, err = f.requiredString("network"); err != nil {
		return p, err
	}
	if p.Username, err = f.requiredString("username"); err != nil {
		return p, err
	}
	if p.URL, err = f.requiredString("url"); err != nil {
		return p, err
	}
	return p, nil
}

func parseBasics(f fields) (types.Basics, error) {
	var (
		b   types.Basics
		err error
	)
	if b.Name, err = f.requiredString("name"); err != nil {
		return b, err
	}
	if b.Label, err = f.optionalString("label"); err != nil {
		return b, err
	}
	if b.Email, err = f.requiredString("email"); err != nil {
		return b, err
	}
	if b.Phone, err = f.requiredString("phone"); err != nil {
		return b, err
	}
	if b.URL, err = f.optionalString("url"); err != nil {
		return b, err
	}
	if b.Summary, err = f.optionalString("summary"); err != nil {
		return b, err
	}
	if b.Location, err = optionalLocation(f); err != nil {
		return b, err
	}
	if b.Profiles, err = optionalList(f, "profiles", parseProfile); err != nil {
		return b, err
	}
	return b, nil
}

func parseWork(f fields) (types.Work, error) {
	var (
		w   types.Work
		err error
	)
	if w.Name, err = f.requiredString("name"); err != nil {
		return w, err
	}
	if w.Position, err = f.requiredString("position"); err != nil {
		return w, err
	}
	if w.URL, err = f.optionalString("url"); err != nil {
		return w, err
	}
	if w.StartDate, err = f.requiredDate("start_date"); err != nil {
		return w, err
	}
	if w.EndDate, err = f.optionalDate("end_date"); err != nil {
		return w, err
	}
	if w.Summary, err = f.optionalString("summary"); err != nil {
		return w, err
	}
	if w.Highlights, err = f.requiredStrings("highlights"); err != nil {
		return w, err
	}
	if w.Location, err = optionalLocation(f); err != nil {
		return w, err
	}
	return w, nil
}

func parseEducation(f fields) (types.Education, error) {
	var (
		e   types.Education
		err error
	)
	if e.Institution, err = f.requiredString("institution"); err != nil {
		return e, err
	}
	if e.URL, err = f.optionalString("url"); err != nil {
		return e, err
	}
	if e.Area, err = f.requiredString("area"); err != nil {
		return e, err
	}
	if e.SubArea, err = f.optionalString("sub_area"); err != nil {
		return e, err
	}
	if e.StudyType, err = f.requiredString("study_type"); err != nil {
		return e, err
	}
	if e.StartDate, err = f.requiredDate("start_date"); err != nil {
		return e, err
	}
	if e.EndDate, err = f.optionalDate("end_date"); err != nil {
		return e, err
	}
	if e.Score, err = f.optionalString("score"); err != nil {
		return e, err
	}
	if e.Courses, err = f.requiredStrings("courses"); err != nil {
		return e, err
	}
	if e.Location, err = optionalLocation(f); err != nil {
		return e, err
	}
	return e, nil
}

func parseCertificate(f fields) (types.Certificate, error) {
	var (
		c   types.Certificate
		err error
	)
	if c.Name, err = f.requiredString("name"); err != nil {
		return c, err
	}
	if c.Date, err = f.requiredDate("date"); err != nil {
		return c, err
	}
	if c.Issuer, err = f.requiredString("issuer"); err != nil {
		return c, err
	}
	if c.Summary, err = f.requiredString("summary"); err != nil {
		return c, err
	}
	if c.URL, err = f.optionalString("url"); err != nil {
		return c, err
	}
	return c, nil
}

func parseAward(f fields) (types.Award, error) {
	var (
		a   types.Award
		err error
	)
	if a.Name, err = f.requiredString("name"); err != nil {
		return a, err
	}
	if a.Date, err = f.requiredDate("date"); err != nil {
		return a, err
	}
	if a.Awarder, err = f.requiredString("awarder"); err != nil {
		return a, err
	}
	if a.Summary, err = f.requiredString("summary"); err != nil {
		return a, err
	}
	if a.URL, err = f.optionalString("url"); err != nil {
		return a, err
	}
	return a, nil
}

func parseSkill(f fields) (types.Skill, error) {
	var (
		s   types.Skill
		err error
	)
	if s.Name, err = f.requiredString("name"); err != nil {
		return s, err
	}
	if s.Level, err = f.optionalString("level"); err != nil {
		return s, err
	}
	if s.Keywords, err = f.requiredStrings("keywords"); err != nil {
		return s, err
	}
	return s, nil
}

func parseLanguage(f fields) (types.Language, error) {
	var (
		l   types.Language
		err error
	)
	if l.Language, err = f.requiredString("language"); err != nil {
		return l, err
	}
	if l.Fluency, err = f.requiredString("fluency"); err != nil {
		return l, err
	}
	return l, nil
}

func parseInterest(f fields) (types.Interest, error) {
	var (
		i   types.Interest
		err error
	)
	if i.Name, err = f.requiredString("name"); err != nil {
		return i, err
	}
	if i.Keywords, err = f.requiredStrings("keywords"); err != nil {
		return i, err
	}
	return i, nil
}

func parseProject(f fields) (types.Project, error) {
	var (
		p   types.Project
		err error
	)
	if p.Name, err = f.requiredString("name"); err != nil {
		return p, err
	}
	if p.StartDate, err = f.requiredDate("start_date"); err != nil {
		return p, err
	}
	if p.EndDate, err = f.optionalDate("end_date"); err != nil {
		return p, err
	}
	if p.Summary, err = f.optionalString("summary"); err != nil {
		return p, err
	}
	if p.Highlights, err = f.optionalStrings("highlights"); err != nil {
		return p, err
	}
	if p.URLText, err = f.optionalString("url_text"); err != nil {
		return p, err
	}
	if p.URL, err = f.optionalString("url"); err != nil {
		return p, err
	}
	return p, nil
}

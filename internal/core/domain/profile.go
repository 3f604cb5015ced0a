package domain

import (
	"strings"
	"time"
)

// Social groups the profile's external links.
type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a job entry on a profile.
type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Validate checks the required fields.
func (e Experience) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(e.Title) == "" {
		verr.Add("title", "Title is required")
	}
	if strings.TrimSpace(e.Company) == "" {
		verr.Add("company", "Company is required")
	}
	if e.From.IsZero() {
		verr.Add("from", "From date is required")
	}
	return verr.OrNil()
}

// Education is a school entry on a profile.
type Education struct {
	ID           string     `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Validate checks the required fields.
func (e Education) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(e.School) == "" {
		verr.Add("school", "School is required")
	}
	if strings.TrimSpace(e.Degree) == "" {
		verr.Add("degree", "Degree is required")
	}
	if strings.TrimSpace(e.FieldOfStudy) == "" {
		verr.Add("fieldofstudy", "Field of study is required")
	}
	if e.From.IsZero() {
		verr.Add("from", "From date is required")
	}
	return verr.OrNil()
}

// Profile is the aggregate root for a user's public profile. Experience and
// Education are ordered most recent first.
type Profile struct {
	ID             string       `json:"_id"`
	User           UserRef      `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GitHubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Date           time.Time    `json:"date"`
	Version        int64        `json:"-"`
}

// ProfileUpdate carries the fields of a create-or-update request. Empty
// strings mean "not provided".
type ProfileUpdate struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GitHubUsername string
	Skills         string
	Social         Social
}

// Apply merges the provided fields into p, leaving absent ones untouched.
func (p *Profile) Apply(u ProfileUpdate) {
	setIf(&p.Company, u.Company)
	setIf(&p.Website, u.Website)
	setIf(&p.Location, u.Location)
	setIf(&p.Bio, u.Bio)
	setIf(&p.Status, u.Status)
	setIf(&p.GitHubUsername, u.GitHubUsername)
	if u.Skills != "" {
		p.Skills = ParseSkills(u.Skills)
	}
	setIf(&p.Social.YouTube, u.Social.YouTube)
	setIf(&p.Social.Twitter, u.Social.Twitter)
	setIf(&p.Social.Facebook, u.Social.Facebook)
	setIf(&p.Social.LinkedIn, u.Social.LinkedIn)
	setIf(&p.Social.Instagram, u.Social.Instagram)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ParseSkills splits a comma-separated list, trimming items and dropping empty ones.
func ParseSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// AddExperience inserts e at the head of the experience list.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// RemoveExperience drops the entry with the given id. The list is left
// unchanged when no entry matches.
func (p *Profile) RemoveExperience(id string) error {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return ErrExperienceNotFound
}

// AddEducation inserts e at the head of the education list.
func (p *Profile) AddEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// RemoveEducation drops the entry with the given id. The list is left
// unchanged when no entry matches.
func (p *Profile) RemoveEducation(id string) error {
	for i, e := range p.Education {
		if e.ID == id {
			p.Education = append(p.Education[:i:i], p.Education[i+1:]...)
			return nil
		}
	}
	return ErrEducationNotFound
}

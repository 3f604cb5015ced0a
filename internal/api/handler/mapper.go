package handler

import (
	"strings"
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// dateLayouts are the accepted formats for from/to dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// --- Request → Service input ---

func toProfileUpdate(req profileRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GitHubUsername: req.GitHubUsername,
		Skills:         req.Skills,
		Social: domain.Social{
			YouTube:   req.YouTube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			LinkedIn:  req.LinkedIn,
			Instagram: req.Instagram,
		},
	}
}

func toExperienceInput(req experienceRequest) (ports.ExperienceInput, error) {
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return ports.ExperienceInput{}, err
	}
	return ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	}, nil
}

func toEducationInput(req educationRequest) (ports.EducationInput, error) {
	from, to, err := parsePeriod(req.From, req.To)
	if err != nil {
		return ports.EducationInput{}, err
	}
	return ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	}, nil
}

func parsePeriod(fromRaw, toRaw string) (time.Time, *time.Time, error) {
	verr := &domain.ValidationError{}

	from, ok := parseDate(fromRaw)
	if !ok {
		verr.Add("from", "From date is invalid")
	}

	var to *time.Time
	if strings.TrimSpace(toRaw) != "" {
		t, ok := parseDate(toRaw)
		if !ok {
			verr.Add("to", "To date is invalid")
		} else {
			to = &t
		}
	}

	if err := verr.OrNil(); err != nil {
		return time.Time{}, nil, err
	}
	return from, to, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

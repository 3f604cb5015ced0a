package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

func TestProfileHandler_Upsert(t *testing.T) {
	stub := &stubProfileService{
		upsertFn: func(ctx context.Context, userID string, fields domain.ProfileUpdate) (*domain.Profile, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user %q", userID)
			}
			if fields.Status != "Developer" || fields.Skills != "Go, Rust" || fields.Social.Twitter != "https://twitter.com/alice" {
				t.Fatalf("unexpected fields: %+v", fields)
			}
			p := &domain.Profile{ID: "p1", User: domain.UserRef{ID: userID}, Status: fields.Status}
			p.Apply(fields)
			return p, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/profile",
		`{"status":"Developer","skills":"Go, Rust","twitter":"https://twitter.com/alice"}`, "u1")
	if err := h.Upsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp domain.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Skills) != 2 || resp.Skills[0] != "Go" || resp.Skills[1] != "Rust" {
		t.Fatalf("unexpected skills %v", resp.Skills)
	}
}

func TestProfileHandler_Upsert_RequiresStatusAndSkills(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newContext(http.MethodPost, "/api/profile", `{"company":"Acme"}`, "u1")
	assertValidationFields(t, h.Upsert(c), "status", "skills")
}

func TestProfileHandler_Me_NoProfile(t *testing.T) {
	stub := &stubProfileService{
		getMineFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
			return nil, domain.ErrNoProfile
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newContext(http.MethodGet, "/api/profile/me", "", "u1")
	if err := h.Me(c); !errors.Is(err, domain.ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestProfileHandler_GetByUser(t *testing.T) {
	stub := &stubProfileService{
		getByUserIDFn: func(ctx context.Context, userID string) (*domain.Profile, error) {
			if userID != "abc" {
				return nil, domain.ErrProfileNotFound
			}
			return &domain.Profile{ID: "p1", User: domain.UserRef{ID: "abc", Name: "Alice"}}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(http.MethodGet, "/", "", "")
	c.SetPath("/api/profile/user/:user_id")
	c.SetParamNames("user_id")
	c.SetParamValues("abc")
	if err := h.GetByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"name":"Alice"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	c, _ = newContext(http.MethodGet, "/", "", "")
	c.SetParamNames("user_id")
	c.SetParamValues("nope")
	if err := h.GetByUser(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_List(t *testing.T) {
	stub := &stubProfileService{
		listFn: func(ctx context.Context) ([]*domain.Profile, error) {
			return []*domain.Profile{{ID: "p1"}, {ID: "p2"}}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(http.MethodGet, "/api/profile", "", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(resp))
	}
}

func TestProfileHandler_Delete(t *testing.T) {
	var deleted string
	stub := &stubProfileService{
		deleteAccountFn: func(ctx context.Context, userID string) error {
			deleted = userID
			return nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(http.MethodDelete, "/api/profile", "", "u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "u1" {
		t.Fatalf("expected account u1 deleted, got %q", deleted)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"msg":"User deleted"}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestProfileHandler_AddExperience(t *testing.T) {
	stub := &stubProfileService{
		addExperienceFn: func(ctx context.Context, userID string, in ports.ExperienceInput) (*domain.Profile, error) {
			if in.Title != "Engineer" || in.Company != "Acme" || !in.Current {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.From.Equal(time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)) || in.To != nil {
				t.Fatalf("unexpected period: %v %v", in.From, in.To)
			}
			return &domain.Profile{Experience: []domain.Experience{{ID: "e1", Title: in.Title}}}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(http.MethodPut, "/api/profile/experience",
		`{"title":"Engineer","company":"Acme","from":"2020-01-15","current":true}`, "u1")
	if err := h.AddExperience(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"title":"Engineer"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestProfileHandler_AddExperience_Validation(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newContext(http.MethodPut, "/api/profile/experience", `{"company":"Acme"}`, "u1")
	assertValidationFields(t, h.AddExperience(c), "title", "from")

	c, _ = newContext(http.MethodPut, "/api/profile/experience",
		`{"title":"Engineer","company":"Acme","from":"last spring"}`, "u1")
	assertValidationFields(t, h.AddExperience(c), "from")
}

func TestProfileHandler_RemoveExperience(t *testing.T) {
	stub := &stubProfileService{
		removeExperienceFn: func(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
			if experienceID != "e1" {
				return nil, domain.ErrExperienceNotFound
			}
			return &domain.Profile{Experience: []domain.Experience{}}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newContext(http.MethodDelete, "/", "", "u1")
	c.SetParamNames("exp_id")
	c.SetParamValues("e1")
	if err := h.RemoveExperience(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	c, _ = newContext(http.MethodDelete, "/", "", "u1")
	c.SetParamNames("exp_id")
	c.SetParamValues("e2")
	if err := h.RemoveExperience(c); !errors.Is(err, domain.ErrExperienceNotFound) {
		t.Fatalf("expected ErrExperienceNotFound, got %v", err)
	}
}

func TestProfileHandler_AddEducation(t *testing.T) {
	stub := &stubProfileService{
		addEducationFn: func(ctx context.Context, userID string, in ports.EducationInput) (*domain.Profile, error) {
			if in.School != "MIT" || in.FieldOfStudy != "CS" || in.To == nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Profile{Education: []domain.Education{{ID: "ed1", School: in.School}}}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newContext(http.MethodPut, "/api/profile/education",
		`{"school":"MIT","degree":"BSc","fieldofstudy":"CS","from":"2012-09-01","to":"2016-06-01T00:00:00Z"}`, "u1")
	if err := h.AddEducation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	c, _ = newContext(http.MethodPut, "/api/profile/education", `{"school":"MIT"}`, "u1")
	assertValidationFields(t, h.AddEducation(c), "degree", "fieldofstudy", "from")
}

func TestProfileHandler_RemoveEducation(t *testing.T) {
	stub := &stubProfileService{
		removeEducationFn: func(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
			return nil, domain.ErrEducationNotFound
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newContext(http.MethodDelete, "/", "", "u1")
	c.SetParamNames("edu_id")
	c.SetParamValues("missing")
	if err := h.RemoveEducation(c); !errors.Is(err, domain.ErrEducationNotFound) {
		t.Fatalf("expected ErrEducationNotFound, got %v", err)
	}
}

func TestProfileHandler_GitHubRepos(t *testing.T) {
	stub := &stubProfileService{
		gitHubReposFn: func(ctx context.Context, username string) ([]domain.Repo, error) {
			if username != "octocat" {
				return nil, domain.ErrGitHubProfileNotFound
			}
			return []domain.Repo{{Name: "hello-world", Stars: 3}}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(http.MethodGet, "/", "", "")
	c.SetParamNames("username")
	c.SetParamValues("octocat")
	if err := h.GitHubRepos(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"stargazers_count":3`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	c, _ = newContext(http.MethodGet, "/", "", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost")
	if err := h.GitHubRepos(c); !errors.Is(err, domain.ErrGitHubProfileNotFound) {
		t.Fatalf("expected ErrGitHubProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_PrivateRoutesRequireUser(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	routes := map[string]echo.HandlerFunc{
		"me":                h.Me,
		"upsert":            h.Upsert,
		"delete":            h.Delete,
		"add experience":    h.AddExperience,
		"remove experience": h.RemoveExperience,
		"add education":     h.AddEducation,
		"remove education":  h.RemoveEducation,
	}
	for name, fn := range routes {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(http.MethodGet, "/", "", "")
			var he *echo.HTTPError
			if err := fn(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
		})
	}
}

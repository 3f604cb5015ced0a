package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/api/middleware"
	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

var errStubNotConfigured = errors.New("stub: not configured")

// newContext builds an echo context for a JSON request. userID, when set, is
// injected the way the Auth middleware does it.
func newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(middleware.UserIDKey, userID)
	}
	return c, rec
}

func assertValidationFields(t *testing.T, err error, want ...string) {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	got := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		got[f.Field] = true
	}
	for _, field := range want {
		if !got[field] {
			t.Fatalf("expected error on %q, got %+v", field, verr.Fields)
		}
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d field errors, got %+v", len(want), verr.Fields)
	}
}

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	meFn       func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if s.registerFn == nil {
		return nil, errStubNotConfigured
	}
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if s.loginFn == nil {
		return nil, errStubNotConfigured
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	if s.meFn == nil {
		return nil, errStubNotConfigured
	}
	return s.meFn(ctx, userID)
}

type stubProfileService struct {
	getMineFn          func(ctx context.Context, userID string) (*domain.Profile, error)
	upsertFn           func(ctx context.Context, userID string, fields domain.ProfileUpdate) (*domain.Profile, error)
	listFn             func(ctx context.Context) ([]*domain.Profile, error)
	getByUserIDFn      func(ctx context.Context, userID string) (*domain.Profile, error)
	deleteAccountFn    func(ctx context.Context, userID string) error
	addExperienceFn    func(ctx context.Context, userID string, in ports.ExperienceInput) (*domain.Profile, error)
	removeExperienceFn func(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
	addEducationFn     func(ctx context.Context, userID string, in ports.EducationInput) (*domain.Profile, error)
	removeEducationFn  func(ctx context.Context, userID, educationID string) (*domain.Profile, error)
	gitHubReposFn      func(ctx context.Context, username string) ([]domain.Repo, error)
}

func (s *stubProfileService) GetMine(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.getMineFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getMineFn(ctx, userID)
}

func (s *stubProfileService) Upsert(ctx context.Context, userID string, fields domain.ProfileUpdate) (*domain.Profile, error) {
	if s.upsertFn == nil {
		return nil, errStubNotConfigured
	}
	return s.upsertFn(ctx, userID, fields)
}

func (s *stubProfileService) List(ctx context.Context) ([]*domain.Profile, error) {
	if s.listFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listFn(ctx)
}

func (s *stubProfileService) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.getByUserIDFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if s.deleteAccountFn == nil {
		return errStubNotConfigured
	}
	return s.deleteAccountFn(ctx, userID)
}

func (s *stubProfileService) AddExperience(ctx context.Context, userID string, in ports.ExperienceInput) (*domain.Profile, error) {
	if s.addExperienceFn == nil {
		return nil, errStubNotConfigured
	}
	return s.addExperienceFn(ctx, userID, in)
}

func (s *stubProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	if s.removeExperienceFn == nil {
		return nil, errStubNotConfigured
	}
	return s.removeExperienceFn(ctx, userID, experienceID)
}

func (s *stubProfileService) AddEducation(ctx context.Context, userID string, in ports.EducationInput) (*domain.Profile, error) {
	if s.addEducationFn == nil {
		return nil, errStubNotConfigured
	}
	return s.addEducationFn(ctx, userID, in)
}

func (s *stubProfileService) RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
	if s.removeEducationFn == nil {
		return nil, errStubNotConfigured
	}
	return s.removeEducationFn(ctx, userID, educationID)
}

func (s *stubProfileService) GitHubRepos(ctx context.Context, username string) ([]domain.Repo, error) {
	if s.gitHubReposFn == nil {
		return nil, errStubNotConfigured
	}
	return s.gitHubReposFn(ctx, username)
}

type stubPostService struct {
	createFn        func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error)
	listFn          func(ctx context.Context) ([]*domain.Post, error)
	getFn           func(ctx context.Context, id string) (*domain.Post, error)
	deleteFn        func(ctx context.Context, id, requesterID string) error
	likeFn          func(ctx context.Context, id, userID string) ([]domain.Like, error)
	unlikeFn        func(ctx context.Context, id, userID string) ([]domain.Like, error)
	addCommentFn    func(ctx context.Context, id, authorID, text string) ([]domain.Comment, error)
	removeCommentFn func(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error)
}

func (s *stubPostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if s.createFn == nil {
		return nil, errStubNotConfigured
	}
	return s.createFn(ctx, in)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) {
	if s.listFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listFn(ctx)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	if s.getFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getFn(ctx, id)
}

func (s *stubPostService) Delete(ctx context.Context, id, requesterID string) error {
	if s.deleteFn == nil {
		return errStubNotConfigured
	}
	return s.deleteFn(ctx, id, requesterID)
}

func (s *stubPostService) Like(ctx context.Context, id, userID string) ([]domain.Like, error) {
	if s.likeFn == nil {
		return nil, errStubNotConfigured
	}
	return s.likeFn(ctx, id, userID)
}

func (s *stubPostService) Unlike(ctx context.Context, id, userID string) ([]domain.Like, error) {
	if s.unlikeFn == nil {
		return nil, errStubNotConfigured
	}
	return s.unlikeFn(ctx, id, userID)
}

func (s *stubPostService) AddComment(ctx context.Context, id, authorID, text string) ([]domain.Comment, error) {
	if s.addCommentFn == nil {
		return nil, errStubNotConfigured
	}
	return s.addCommentFn(ctx, id, authorID, text)
}

func (s *stubPostService) RemoveComment(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error) {
	if s.removeCommentFn == nil {
		return nil, errStubNotConfigured
	}
	return s.removeCommentFn(ctx, id, commentID, requesterID)
}

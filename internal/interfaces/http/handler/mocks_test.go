package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	contentapp "github.com/portfolio/backend/internal/application/content"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/portfolio/backend/internal/domain/identity"
	"github.com/portfolio/backend/internal/infrastructure/auth"
	"github.com/portfolio/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-needs-32-characters",
		Expiration: time.Hour,
		Issuer:     "portfolio-test",
	})
}

// multipartBody builds a multipart form with text fields and optional
// file parts, returning the body and its content type.
func multipartBody(fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		writer.WriteField(name, value)
	}
	for field, data := range files {
		part, _ := writer.CreateFormFile(field, field+".png")
		part.Write(data)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func doRequest(engine *gin.Engine, method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	engine.ServeHTTP(w, req)
	return w
}

func jsonHeader() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// allowAll stands in for the auth middleware on tests that are not
// about authentication.
func allowAll(c *gin.Context) {
	c.Next()
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Get(ctx context.Context) (*identity.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, namespace string, upload *contentapp.FileUpload) (string, error) {
	args := m.Called(ctx, namespace, upload)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, namespace, filename string) error {
	args := m.Called(ctx, namespace, filename)
	return args.Error(0)
}

type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) FindAll(ctx context.Context) ([]content.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Skill), args.Error(1)
}

func (m *MockSkillRepository) Save(ctx context.Context, skill *content.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) FindAll(ctx context.Context) ([]content.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Experience), args.Error(1)
}

func (m *MockExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Save(ctx context.Context, experience *content.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHeroRepository struct {
	mock.Mock
}

func (m *MockHeroRepository) Get(ctx context.Context) (*content.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Hero), args.Error(1)
}

func (m *MockHeroRepository) Upsert(ctx context.Context, hero *content.Hero) error {
	args := m.Called(ctx, hero)
	return args.Error(0)
}

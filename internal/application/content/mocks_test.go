package content

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/domain/content"
	"github.com/stretchr/testify/mock"
)

// pngHeader is a minimal valid PNG signature for sniffing tests
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newPNGUpload(name string) *FileUpload {
	data := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	return &FileUpload{
		Name:    name,
		Size:    int64(len(data)),
		Content: bytes.NewReader(data),
	}
}

func newTextUpload(name string) *FileUpload {
	data := []byte("plain text, not an image")
	return &FileUpload{
		Name:    name,
		Size:    int64(len(data)),
		Content: bytes.NewReader(data),
	}
}

// MockFileStore is a mock implementation of FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, namespace string, upload *FileUpload) (string, error) {
	args := m.Called(ctx, namespace, upload)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, namespace, filename string) error {
	args := m.Called(ctx, namespace, filename)
	return args.Error(0)
}

// MockSkillRepository is a mock implementation of SkillRepository
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

// MockHeroRepository is a mock implementation of HeroRepository
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

// MockAboutRepository is a mock implementation of AboutRepository
type MockAboutRepository struct {
	mock.Mock
}

func (m *MockAboutRepository) Get(ctx context.Context) (*content.About, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.About), args.Error(1)
}

func (m *MockAboutRepository) Upsert(ctx context.Context, about *content.About) error {
	args := m.Called(ctx, about)
	return args.Error(0)
}

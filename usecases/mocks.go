package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fileanissue/models"
)

// MockWorkplaceUseCase is a mock implementation of WorkplaceUseCaseInterface
type MockWorkplaceUseCase struct {
	mock.Mock
}

func (m *MockWorkplaceUseCase) ProcessMentionEvent(ctx context.Context, event models.MentionEvent) {
	m.Called(ctx, event)
}

func (m *MockWorkplaceUseCase) EnsureSubscriptions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGitHubUseCase is a mock implementation of GitHubUseCaseInterface
type MockGitHubUseCase struct {
	mock.Mock
}

func (m *MockGitHubUseCase) ProcessIssueEvent(ctx context.Context, event models.IssueEvent) {
	m.Called(ctx, event)
}

package github

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fileanissue/models"
)

// MockGitHubClient is a mock implementation of the IssueTrackerClient interface
type MockGitHubClient struct {
	mock.Mock
}

// CreateIssue mocks filing an issue
func (m *MockGitHubClient) CreateIssue(ctx context.Context, title, body string) (*models.CreatedIssue, error) {
	args := m.Called(ctx, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatedIssue), args.Error(1)
}

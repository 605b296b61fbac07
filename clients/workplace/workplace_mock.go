package workplace

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fileanissue/models"
)

// MockWorkplaceClient is a mock implementation of the WorkplaceClient interface
type MockWorkplaceClient struct {
	mock.Mock
}

func (m *MockWorkplaceClient) GetContent(ctx context.Context, id string, fields []string) (*models.FetchedContent, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FetchedContent), args.Error(1)
}

func (m *MockWorkplaceClient) Like(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkplaceClient) Comment(ctx context.Context, id, message string) error {
	args := m.Called(ctx, id, message)
	return args.Error(0)
}

func (m *MockWorkplaceClient) EnableSubscriptions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkplaceClient) SubscribeWebhook(ctx context.Context, callbackURL, verifyToken string) error {
	args := m.Called(ctx, callbackURL, verifyToken)
	return args.Error(0)
}

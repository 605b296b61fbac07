package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubclient "fileanissue/clients/github"
	workplaceclient "fileanissue/clients/workplace"
	"fileanissue/models"
)

func TestActionsService_Like(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(*workplaceclient.MockWorkplaceClient)
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(m *workplaceclient.MockWorkplaceClient) {
				m.On("Like", mock.Anything, "C1").Return(nil)
			},
		},
		{
			name: "client failure",
			mockSetup: func(m *workplaceclient.MockWorkplaceClient) {
				m.On("Like", mock.Anything, "C1").Return(errors.New("status 500"))
			},
			expectedError: "failed to like C1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkplace := &workplaceclient.MockWorkplaceClient{}
			mockGitHub := &githubclient.MockGitHubClient{}
			tt.mockSetup(mockWorkplace)

			service := NewActionsService(mockWorkplace, mockGitHub)
			err := service.Like(context.Background(), "C1")

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			mockWorkplace.AssertExpectations(t)
			mockGitHub.AssertExpectations(t)
		})
	}
}

func TestActionsService_Reply(t *testing.T) {
	mockWorkplace := &workplaceclient.MockWorkplaceClient{}
	mockWorkplace.On("Comment", mock.Anything, "789", "Issue closed by @[Jane].").Return(nil)

	service := NewActionsService(mockWorkplace, &githubclient.MockGitHubClient{})

	require.NoError(t, service.Reply(context.Background(), "789", "Issue closed by @[Jane]."))
	mockWorkplace.AssertExpectations(t)
}

func TestActionsService_CreateIssue(t *testing.T) {
	const permalink = "https://acme.facebook.com/groups/1/permalink/2"
	expectedBody := "parent text\n\n[View on Workplace](" + permalink + ")"
	createdIssue := &models.CreatedIssue{ID: 1, Number: 5, HTMLURL: "https://github.com/o/r/issues/5"}

	tests := []struct {
		name          string
		mockSetup     func(*workplaceclient.MockWorkplaceClient, *githubclient.MockGitHubClient)
		expectedIssue *models.CreatedIssue
		expectedError string
	}{
		{
			name: "creates issue and replies with its url",
			mockSetup: func(w *workplaceclient.MockWorkplaceClient, g *githubclient.MockGitHubClient) {
				g.On("CreateIssue", mock.Anything, "hi", expectedBody).Return(createdIssue, nil)
				w.On("Comment", mock.Anything, "C1", "Created issue: https://github.com/o/r/issues/5").Return(nil)
			},
			expectedIssue: createdIssue,
		},
		{
			name: "reply failure does not fail creation",
			mockSetup: func(w *workplaceclient.MockWorkplaceClient, g *githubclient.MockGitHubClient) {
				g.On("CreateIssue", mock.Anything, "hi", expectedBody).Return(createdIssue, nil)
				w.On("Comment", mock.Anything, "C1", mock.Anything).Return(errors.New("status 403"))
			},
			expectedIssue: createdIssue,
		},
		{
			name: "creation failure skips reply",
			mockSetup: func(w *workplaceclient.MockWorkplaceClient, g *githubclient.MockGitHubClient) {
				g.On("CreateIssue", mock.Anything, "hi", expectedBody).Return(nil, errors.New("bad credentials"))
			},
			expectedError: "failed to create issue for C1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkplace := &workplaceclient.MockWorkplaceClient{}
			mockGitHub := &githubclient.MockGitHubClient{}
			tt.mockSetup(mockWorkplace, mockGitHub)

			service := NewActionsService(mockWorkplace, mockGitHub)
			issue, err := service.CreateIssue(context.Background(), "hi", "parent text", "C1", permalink)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, issue)
				mockWorkplace.AssertNotCalled(t, "Comment", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedIssue, issue)
			}
			mockWorkplace.AssertExpectations(t)
			mockGitHub.AssertExpectations(t)
		})
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPermalinkID(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		expectedID string
		found      bool
	}{
		{
			name:       "generated footer",
			text:       "Printer is on fire" + PermalinkFooter("https://acme.facebook.com/groups/123456/permalink/789"),
			expectedID: "789",
			found:      true,
		},
		{
			name:       "bare url",
			text:       "see https://acme.facebook.com/groups/42/permalink/1001/ for details",
			expectedID: "1001",
			found:      true,
		},
		{
			name:       "case insensitive",
			text:       "HTTPS://ACME.FACEBOOK.COM/GROUPS/42/PERMALINK/555",
			expectedID: "555",
			found:      true,
		},
		{
			name:       "first match wins",
			text:       "https://a.facebook.com/groups/1/permalink/11 https://b.facebook.com/groups/2/permalink/22",
			expectedID: "11",
			found:      true,
		},
		{
			name:  "manually created issue",
			text:  "Steps to reproduce: open the app",
			found: false,
		},
		{
			name:  "empty body",
			text:  "",
			found: false,
		},
		{
			name:  "non numeric post id",
			text:  "https://acme.facebook.com/groups/123/permalink/abc",
			found: false,
		},
		{
			name:  "plain http",
			text:  "http://acme.facebook.com/groups/123/permalink/789",
			found: false,
		},
		{
			name:  "other domain",
			text:  "https://acme.example.com/groups/123/permalink/789",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractPermalinkID(tt.text).Get()
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestPermalinkFooter(t *testing.T) {
	assert.Equal(t,
		"\n\n[View on Workplace](https://acme.facebook.com/groups/1/permalink/2)",
		PermalinkFooter("https://acme.facebook.com/groups/1/permalink/2"),
	)
}

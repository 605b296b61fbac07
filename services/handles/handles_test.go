package handles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandles(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected map[string]string
	}{
		{
			name:     "json document",
			data:     `{"janedoe": "Jane", "jsmith": "John Smith"}`,
			expected: map[string]string{"janedoe": "Jane", "jsmith": "John Smith"},
		},
		{
			name:     "yaml document",
			data:     "janedoe: Jane\njsmith: John Smith\n",
			expected: map[string]string{"janedoe": "Jane", "jsmith": "John Smith"},
		},
		{
			name:     "json escaped solidus",
			data:     `{"octocat": "Jane\/Doe"}`,
			expected: map[string]string{"octocat": "Jane/Doe"},
		},
		{
			name:     "json repeated key keeps last value",
			data:     `{"octocat": "Old Name", "octocat": "Jane"}`,
			expected: map[string]string{"octocat": "Jane"},
		},
		{
			name:     "json unicode escape",
			data:     `{"jose": "Jos\u00e9"}`,
			expected: map[string]string{"jose": "José"},
		},
		{
			name:     "empty document",
			data:     "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := ParseHandles([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, len(tt.expected), service.Len())
			for login, name := range tt.expected {
				got, ok := service.DisplayName(login).Get()
				assert.True(t, ok)
				assert.Equal(t, name, got)
			}
		})
	}
}

func TestParseHandles_Malformed(t *testing.T) {
	_, err := ParseHandles([]byte(`["not", "a", "mapping"]`))
	assert.Error(t, err)
}

func TestHandlesService_DisplayName_Unknown(t *testing.T) {
	service := NewHandlesService(map[string]string{"janedoe": "Jane"})
	assert.True(t, service.DisplayName("someone-else").IsAbsent())
}

func TestNewHandlesService_CopiesInput(t *testing.T) {
	input := map[string]string{"janedoe": "Jane"}
	service := NewHandlesService(input)
	input["janedoe"] = "Changed"

	assert.Equal(t, "Jane", service.DisplayName("janedoe").OrEmpty())
}

func TestLoadHandlesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "githubhandles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"janedoe":"Jane"}`), 0o600))

	service, err := LoadHandlesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", service.DisplayName("janedoe").OrEmpty())
}

func TestLoadHandlesFile_Missing(t *testing.T) {
	service, err := LoadHandlesFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, service.Len())
}

func TestLoadHandlesFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "githubhandles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"janedoe": [`), 0o600))

	_, err := LoadHandlesFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse handles file")
}

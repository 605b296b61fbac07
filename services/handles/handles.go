package handles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"

	"fileanissue/core/log"
)

// HandlesService maps GitHub logins to Workplace display names. It is read-only after load.
type HandlesService struct {
	handles map[string]string
}

func NewHandlesService(handles map[string]string) *HandlesService {
	copied := make(map[string]string, len(handles))
	for login, name := range handles {
		copied[login] = name
	}
	return &HandlesService{handles: copied}
}

// LoadHandlesFile reads a login -> display name mapping from a JSON or YAML file.
// A missing file yields an empty mapping.
func LoadHandlesFile(path string) (*HandlesService, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("⚠️ Handles file not found, replies will not resolve display names", "path", path)
		return NewHandlesService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read handles file %s: %w", path, err)
	}

	service, err := ParseHandles(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse handles file %s: %w", path, err)
	}

	log.Info("📋 Loaded GitHub handles", "path", path, "count", service.Len())
	return service, nil
}

// ParseHandles decodes a flat mapping. JSON is tried first so any valid JSON document
// loads (escapes like \/ and repeated keys, last one wins); YAML is the fallback.
func ParseHandles(data []byte) (*HandlesService, error) {
	var handles map[string]string
	jsonErr := json.Unmarshal(data, &handles)
	if jsonErr == nil {
		return NewHandlesService(handles), nil
	}

	handles = nil
	if err := yaml.Unmarshal(data, &handles); err != nil {
		return nil, fmt.Errorf("not a JSON (%v) or YAML (%w) mapping", jsonErr, err)
	}
	return NewHandlesService(handles), nil
}

// DisplayName returns the display name registered for login
func (s *HandlesService) DisplayName(login string) mo.Option[string] {
	name, ok := s.handles[login]
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(name)
}

func (s *HandlesService) Len() int {
	return len(s.handles)
}

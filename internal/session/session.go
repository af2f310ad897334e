package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Session holds the admin bearer token and persists it to a small JSON file,
// so a login survives across invocations the way the browser app kept it in
// local storage.
type Session struct {
	path  string
	token string
}

type stored struct {
	Token string `json:"token"`
}

func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the persisted token. A missing file means logged out, not an
// error.
func (s *Session) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.token = ""
			return nil
		}
		return fmt.Errorf("read session: %w", err)
	}
	var parsed stored
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	s.token = parsed.Token
	return nil
}

func (s *Session) Save(token string) error {
	data, err := json.Marshal(stored{Token: token})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	s.token = token
	return nil
}

func (s *Session) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) LoggedIn() bool {
	return s.token != ""
}

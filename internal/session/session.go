package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const sessionFileName = "session.json"

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// Session is the locally stored identity for the console.
type Session struct {
	User      string    `json:"user"`
	Role      string    `json:"role"`
	Source    string    `json:"source"` // "env" | "file"
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }

func sessionDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".courtside"), nil
}

func sessionFilePath() (string, error) {
	dir, err := sessionDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFileName), nil
}

// Current resolves the active session: the COURTSIDE_USER env var
// ("name" or "name:role") wins over the session file. A nil session with
// a nil error means nobody is logged in.
func Current() (*Session, error) {
	// 1) env override
	if env := strings.TrimSpace(os.Getenv("COURTSIDE_USER")); env != "" {
		user, role := splitUserRole(env)
		return &Session{User: user, Role: role, Source: "env"}, nil
	}

	// 2) file
	p, err := sessionFilePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // not logged in
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if s.Role == "" {
		s.Role = RolePlayer
	}
	return &s, nil
}

// Login stores a session file for user. An empty role means player.
func Login(user, role string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return fmt.Errorf("empty user")
	}
	role = normalizeRole(role)
	dir, err := sessionDir()
	if err != nil {
		return err
	}
	// ensure ~/.courtside exists with 0700
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	s := Session{
		User:      user,
		Role:      role,
		Source:    "file",
		CreatedAt: time.Now(),
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	p, _ := sessionFilePath()
	// write with 0600 (owner-only)
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Logout removes the session file. Not being logged in is not an error.
func Logout() error {
	p, err := sessionFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func splitUserRole(s string) (user, role string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return strings.TrimSpace(s[:i]), normalizeRole(s[i+1:])
	}
	return s, RolePlayer
}

func normalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), RoleAdmin) {
		return RoleAdmin
	}
	return RolePlayer
}

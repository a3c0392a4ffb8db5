package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"courtside/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user console.

const dataFileName = "matches.json"

func dataPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

func Load() ([]model.Match, error) {
	p, err := dataPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Match{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var matches []model.Match
	if err := json.Unmarshal(b, &matches); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return matches, nil
}

func Save(matches []model.Match) error {
	p, err := dataPath()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Package project handles persistence: board files, application
// configuration, templates, and full-data backups. Everything is stored
// as indented JSON under the user's home directory.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/driftboard/internal/model"
)

// DefaultBoardsDir returns the default directory for saved boards,
// ~/.driftboard/boards on all platforms.
func DefaultBoardsDir() string {
	return filepath.Join(DefaultConfigDir(), "boards")
}

// SaveBoard persists a board to the given path as JSON. It creates any
// missing parent directories automatically.
func SaveBoard(path string, board model.Board) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadBoard reads a board from the given path.
func LoadBoard(path string) (model.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Board{}, err
	}
	var board model.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return model.Board{}, fmt.Errorf("failed to parse board file: %w", err)
	}
	if board.Items == nil {
		board.Items = []model.Item{}
	}
	if board.Containers == nil {
		board.Containers = []model.Container{}
	}
	return board, nil
}

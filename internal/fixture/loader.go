package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/kanban/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrEmptyBoard is returned for a fixture file without any columns
var ErrEmptyBoard = errors.New("fixture board has no columns")

// Load returns the board at path, or the built-in board when path is empty
func Load(path string) (*models.Board, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML board from path and checks its invariants
func LoadFile(path string) (*models.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML board from r and checks its invariants.
// Missing sequences are normalized to empty ones.
func Decode(r io.Reader) (*models.Board, error) {
	var board models.Board
	if err := yaml.NewDecoder(r).Decode(&board); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if len(board.Columns) == 0 {
		return nil, ErrEmptyBoard
	}

	if err := checkNullEntries(&board); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	for _, col := range board.Columns {
		for _, t := range col.Tasks {
			normalizeTask(t, col)
		}
	}

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &board, nil
}

// Encode writes the board to w as YAML
func Encode(w io.Writer, board *models.Board) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(board); err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}
	return enc.Close()
}

// checkNullEntries rejects YAML null items ("- ~") before anything dereferences them
func checkNullEntries(board *models.Board) error {
	for i, col := range board.Columns {
		if col == nil {
			return fmt.Errorf("%w: column %d", models.ErrNullEntry, i)
		}
		for j, t := range col.Tasks {
			if t == nil {
				return fmt.Errorf("%w: task %d of column %s", models.ErrNullEntry, j, col.ID)
			}
		}
	}
	for i, u := range board.Users {
		if u == nil {
			return fmt.Errorf("%w: user %d", models.ErrNullEntry, i)
		}
	}
	for i, t := range board.Tags {
		if t == nil {
			return fmt.Errorf("%w: tag %d", models.ErrNullEntry, i)
		}
	}
	return nil
}

// normalizeTask fills fields a hand-written fixture is likely to leave out
func normalizeTask(t *models.Task, col *models.Column) {
	if t.Status == "" {
		t.Status = col.Title
	}
	if t.Priority == "" {
		t.Priority = models.DefaultPriority
	}
	if t.Assignees == nil {
		t.Assignees = []string{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Comments == nil {
		t.Comments = []models.Comment{}
	}
	if t.Attachments == nil {
		t.Attachments = []string{}
	}
}

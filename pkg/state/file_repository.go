package state

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
)

// FileRepository implements Repository using one JSON file per followed path,
// so several tailers can share a directory.
type FileRepository struct {
	dir  string
	name string
}

// NewFileRepository creates a FileRepository in dir for the cursor of followed.
func NewFileRepository(dir, followed string) *FileRepository {
	h := fnv.New64a()
	_, _ = h.Write([]byte(followed))
	return &FileRepository{
		dir:  dir,
		name: fmt.Sprintf("cursor-%016x.json", h.Sum64()),
	}
}

// Load retrieves the last saved state from disk.
// Returns an empty state and nil error if no state file exists.
func (r *FileRepository) Load(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	path := filepath.Join(r.dir, r.name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return state, nil
}

// Save persists the current state atomically.
// The file is written to a temporary name and renamed into place.
func (r *FileRepository) Save(ctx context.Context, state State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := filepath.Join(r.dir, r.name)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Path returns the full path to the state file.
func (r *FileRepository) Path() string {
	return filepath.Join(r.dir, r.name)
}

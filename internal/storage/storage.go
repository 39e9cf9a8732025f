package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/habibrosyad/pocketbase-go-sdk"

	"github.com/dacci/sudoku-solver/internal/types"
)

const collection = "solutions"

// ErrNotConfigured is returned when the PocketBase endpoint is not set
// in the environment.
var ErrNotConfigured = errors.New("storage: POCKETBASE_URL not set")

// Archive persists solved puzzles in a PocketBase collection.
type Archive struct {
	client *pocketbase.Client
}

// NewFromEnv builds an archive from POCKETBASE_URL, POCKETBASE_EMAIL
// and POCKETBASE_PASSWORD and authorizes the client.
func NewFromEnv() (*Archive, error) {
	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return nil, ErrNotConfigured
	}

	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("storage: authorization failed: %w", err)
	}

	return &Archive{client: client}, nil
}

// Upload stores a solved puzzle and returns the record ID.
func (a *Archive) Upload(p *types.Puzzle) (string, error) {
	payload, err := p.ToJSON()
	if err != nil {
		return "", fmt.Errorf("storage: failed to marshal puzzle: %w", err)
	}

	data := map[string]any{
		"puzzle": string(payload),
		"size":   fmt.Sprintf("%dx%d", p.Size, p.Size),
	}

	record, err := a.client.Create(collection, data)
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload solution: %w", err)
	}
	return record.ID, nil
}

// Get loads a previously uploaded puzzle by record ID.
func (a *Archive) Get(id string) (*types.Puzzle, error) {
	record, err := a.client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load solution %s: %w", id, err)
	}

	raw, ok := record["puzzle"].(string)
	if !ok {
		return nil, fmt.Errorf("storage: record %s has no puzzle payload", id)
	}

	var p types.Puzzle
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("storage: failed to unmarshal solution %s: %w", id, err)
	}
	return &p, nil
}

// List pages through stored solutions, optionally filtered by grid
// size (e.g. "9x9").
func (a *Archive) List(page, perPage int, size string) (*pocketbase.ResponseList[map[string]any], error) {
	var filters string
	if size != "" {
		filters = fmt.Sprintf("size = %q", size)
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: filters,
	}

	result, err := a.client.List(collection, params)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

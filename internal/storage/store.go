package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store keeps trained models on disk, one directory per model with the
// serialized network next to a metadata file.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// DefaultDir is the per-user model directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".neurosketch", "models")
	}
	return filepath.Join(home, ".neurosketch", "models")
}

type ModelMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Hidden1   int       `json:"hidden1"`
	Hidden2   int       `json:"hidden2"`
	Epochs    int       `json:"epochs"`
	Samples   int       `json:"samples"`
	FinalLoss float64   `json:"final_loss"`
	Accuracy  float64   `json:"accuracy"`
}

// ModelPath returns the location of the serialized network inside a model
// directory. Save hands this path to the caller so the network writer and
// the metadata always land in the same place.
func (s *Store) ModelPath(modelID string) string {
	return filepath.Join(s.baseDir, modelID, "model.json")
}

// Save creates the model directory, writes the metadata, and returns the
// model ID plus the path the serialized network should be written to.
func (s *Store) Save(meta ModelMetadata) (string, string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("mlp_%d", time.Now().Unix())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", err
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", "", err
	}

	return meta.ID, s.ModelPath(meta.ID), nil
}

// List returns metadata for every stored model.
func (s *Store) List() ([]ModelMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ModelMetadata{}, nil
		}
		return nil, err
	}

	models := make([]ModelMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta ModelMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		models = append(models, meta)
	}

	return models, nil
}

// Load returns the metadata for one model.
func (s *Store) Load(modelID string) (*ModelMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, modelID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta ModelMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// Latest returns the most recently saved model, or nil if the store is
// empty.
func (s *Store) Latest() (*ModelMetadata, error) {
	models, err := s.List()
	if err != nil {
		return nil, err
	}

	var latest *ModelMetadata
	for i := range models {
		if latest == nil || models[i].Timestamp.After(latest.Timestamp) {
			latest = &models[i]
		}
	}
	return latest, nil
}

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/prepqhq/prepq-cli/config"
	"github.com/prepqhq/prepq-cli/model"
)

const defaultDBFilename = "questions.local"

// DefaultPath is a variable so tests can point the store at a temp file.
var DefaultPath = filepath.Join(config.DefaultConfigDir, defaultDBFilename)

// Write replaces the stored question list. Order is preserved: the slice is
// the same ordered sequence the local client serves back.
func Write(questions []*model.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(DefaultPath), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(DefaultPath, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return nil
}

// Read returns the stored question list. A missing or empty file is an empty
// collection, not an error.
func Read() ([]*model.Question, error) {
	data, err := os.ReadFile(DefaultPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var questions []*model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

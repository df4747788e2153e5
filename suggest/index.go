package suggest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/prepqhq/prepq-cli/config"
	"gopkg.in/yaml.v3"
)

const indexFileName = "tags.yaml"

// DefaultIndex is the built-in tag vocabulary, used when no tags.yaml exists
// in the config dir.
var DefaultIndex = Index{
	"golang",
	"sql",
	"linux",
	"algorithms",
	"data-structures",
	"networking",
	"http",
	"docker",
	"kubernetes",
	"git",
	"concurrency",
	"databases",
	"testing",
	"security",
	"system-design",
	"behavioral",
}

// IndexFilePath is where LoadIndex looks for a user-defined vocabulary.
func IndexFilePath() string {
	return filepath.Join(config.DefaultConfigDir, indexFileName)
}

// LoadIndex reads the user's tag vocabulary from tags.yaml, falling back to
// DefaultIndex when the file does not exist or lists no tags.
func LoadIndex() (Index, error) {
	data, err := os.ReadFile(IndexFilePath())
	if errors.Is(err, os.ErrNotExist) {
		return DefaultIndex, nil
	}
	if err != nil {
		return nil, err
	}

	var file struct {
		Tags []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	var index Index
	for _, tag := range file.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			index = append(index, tag)
		}
	}
	if len(index) == 0 {
		return DefaultIndex, nil
	}
	return index, nil
}

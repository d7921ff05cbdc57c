package songs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/star-catcher/internal/registry"
	"gopkg.in/yaml.v3"
)

// songFile is the on-disk layout: either one song or a list under "songs".
type songFile struct {
	registry.Song `yaml:",inline"`
	Songs         []registry.Song `yaml:"songs"`
}

// Parse decodes songs from YAML data.
func Parse(data []byte) ([]registry.Song, error) {
	var f songFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("songs: parse: %w", err)
	}
	out := f.Songs
	if f.ID != "" {
		out = append([]registry.Song{f.Song}, out...)
	}
	if len(out) == 0 {
		return nil, errors.New("songs: file defines no songs")
	}
	for _, s := range out {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("songs: %w", err)
		}
	}
	return out, nil
}

// LoadDir registers every song found in *.yaml and *.yml files of dir. A
// missing directory is not an error. Files that fail to parse or clash with
// an existing ID are reported together after the rest have loaded.
func LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("songs: read dir %s: %w", dir, err)
	}

	var errs []error
	loaded := 0
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("songs: read %s: %w", path, err))
			continue
		}
		list, err := Parse(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		for _, s := range list {
			if err := registry.Add(s); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
				continue
			}
			loaded++
		}
	}
	return loaded, errors.Join(errs...)
}

// UserDir returns ~/.starcatcher/songs, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatcher", "songs")
}

package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for layout files that are not JSON, YAML or TOML.
var ErrUnsupportedFormat = errors.New("unsupported layout file format")

// Store persists a Config.
type Store interface {
	Load() (Config, error)
	Save(cfg Config) error
}

// FileStore keeps the layout in a single file. The codec is chosen by
// extension: .json, .yaml/.yml or .toml.
type FileStore struct {
	Path string
}

func (s FileStore) format() (string, error) {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s.Path)
	}
}

// Load reads the file. A missing file yields DefaultConfig. Fields absent
// from the file keep their default values.
func (s FileStore) Load() (Config, error) {
	cfg := DefaultConfig()
	format, err := s.format()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read layout: %w", err)
	}

	switch format {
	case "json":
		err = json.Unmarshal(data, &cfg)
	case "yaml":
		err = yaml.Unmarshal(data, &cfg)
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("decode layout %s: %w", s.Path, err)
	}
	return cfg, nil
}

func (s FileStore) Save(cfg Config) error {
	format, err := s.format()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// LoadOrInit loads the layout, fills unset fields for s and writes the
// result back when anything was filled in.
func LoadOrInit(store Store, s Screen) (cfg Config, err error) {
	cfg, err = store.Load()
	if err != nil {
		return cfg, err
	}
	if InitDefaults(&cfg, s) {
		if err := store.Save(cfg); err != nil {
			return cfg, fmt.Errorf("persist layout defaults: %w", err)
		}
	}
	return cfg, nil
}

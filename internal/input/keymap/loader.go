package keymap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/keyscope/internal/input/key"
)

// Loader loads keymaps from configuration files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a JSON file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := l.LoadReader(f)
	if err != nil {
		return nil, err
	}
	km.Source = path
	return km, nil
}

// LoadReader loads a keymap from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Keymap, error) {
	var config keymapConfig
	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return config.keymap()
}

// LoadAll loads all keymaps from the search paths. Files that fail to
// load are skipped; their failures come back joined in the error while
// the returned keymaps remain usable.
func (l *Loader) LoadAll() ([]*Keymap, error) {
	keymaps := make([]*Keymap, 0)
	var errs []error

	for _, dir := range l.searchPaths {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			errs = append(errs, fmt.Errorf("scanning %s: %w", dir, err))
			continue
		}

		for _, path := range matches {
			km, err := l.LoadFile(path)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
				continue
			}
			keymaps = append(keymaps, km)
		}
	}

	return keymaps, errors.Join(errs...)
}

// keymapConfig is the JSON structure for keymap files.
type keymapConfig struct {
	Name        string          `json:"name"`
	DefaultKind string          `json:"defaultKind,omitempty"`
	Bindings    []bindingConfig `json:"bindings"`
}

type bindingConfig struct {
	Keys        string `json:"keys"`
	Action      string `json:"action"`
	Kind        string `json:"kind,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *keymapConfig) keymap() (*Keymap, error) {
	defaultKind, err := key.ParseKind(c.DefaultKind)
	if err != nil {
		return nil, fmt.Errorf("keymap %q: %w", c.Name, err)
	}

	km := &Keymap{
		Name:        c.Name,
		DefaultKind: defaultKind,
		Bindings:    make([]Binding, 0, len(c.Bindings)),
	}

	for i, bc := range c.Bindings {
		kind, err := key.ParseKind(bc.Kind)
		if err != nil {
			return nil, fmt.Errorf("keymap %q binding %d: %w", c.Name, i, err)
		}
		km.Bindings = append(km.Bindings, Binding{
			Keys:        bc.Keys,
			Action:      bc.Action,
			Kind:        kind,
			Description: bc.Description,
		})
	}

	return km, nil
}

// MarshalJSON converts a keymap to JSON.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	config := keymapConfig{
		Name:     k.Name,
		Bindings: make([]bindingConfig, 0, len(k.Bindings)),
	}
	if k.DefaultKind != key.KindNone {
		config.DefaultKind = k.DefaultKind.String()
	}

	for _, b := range k.Bindings {
		bc := bindingConfig{
			Keys:        b.Keys,
			Action:      b.Action,
			Description: b.Description,
		}
		if b.Kind != key.KindNone {
			bc.Kind = b.Kind.String()
		}
		config.Bindings = append(config.Bindings, bc)
	}

	return json.MarshalIndent(config, "", "  ")
}

// SaveFile saves a keymap to a JSON file.
func (k *Keymap) SaveFile(path string) error {
	data, err := k.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}

	return nil
}

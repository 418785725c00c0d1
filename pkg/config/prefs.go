package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
)

// Prefs are the values remembered between runs.
type Prefs struct {
	RollCount     int          `toml:"roll_count"`
	Force         box.RowForce `toml:"force_rows"`
	WoodThickness string       `toml:"wood_thickness"` // fraction string, e.g. "1/2"
	Machine       string       `toml:"machine,omitempty"`
}

// DefaultPrefs are used before anything is saved.
func DefaultPrefs() Prefs {
	return Prefs{
		RollCount:     box.SixRolls,
		Force:         box.RowForce{Enabled: false, Count: 1},
		WoodThickness: "1/2",
	}
}

// Thickness parses WoodThickness.
func (p Prefs) Thickness() (float64, error) {
	return fraction.Parse(p.WoodThickness)
}

// Validate checks that the prefs would produce valid inputs.
func (p Prefs) Validate() error {
	if p.RollCount != box.SixRolls && p.RollCount != box.TenRolls {
		return fmt.Errorf("roll_count must be 6 or 10, got %d", p.RollCount)
	}
	if p.Force.Enabled && p.Force.Count != 1 && p.Force.Count != 2 {
		return fmt.Errorf("force_rows.count must be 1 or 2, got %d", p.Force.Count)
	}
	if _, err := p.Thickness(); err != nil {
		return fmt.Errorf("wood_thickness: %w", err)
	}
	return nil
}

// PrefsStore reads and writes prefs.toml.
type PrefsStore struct {
	mu   sync.Mutex
	path string
}

// NewPrefsStore stores prefs in dir. An empty dir means Dir().
func NewPrefsStore(dir string) (*PrefsStore, error) {
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &PrefsStore{path: filepath.Join(dir, PrefsFile)}, nil
}

// Path returns the prefs file path.
func (s *PrefsStore) Path() string { return s.path }

// Load returns the stored prefs, or DefaultPrefs when none are stored.
// Fields absent from the file keep their defaults.
func (s *PrefsStore) Load() (Prefs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := DefaultPrefs()
	if _, err := toml.DecodeFile(s.path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultPrefs(), nil
		}
		return DefaultPrefs(), fmt.Errorf("read prefs: %w", err)
	}
	if err := p.Validate(); err != nil {
		return DefaultPrefs(), fmt.Errorf("prefs: %w", err)
	}
	return p, nil
}

// Save validates and writes p.
func (s *PrefsStore) Save(p Prefs) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		f.Close()
		return fmt.Errorf("encode prefs: %w", err)
	}
	return f.Close()
}

// Reset removes the stored prefs.
func (s *PrefsStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove prefs: %w", err)
	}
	return nil
}

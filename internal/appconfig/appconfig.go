// Package appconfig holds the branding, theme and UI settings that admins
// can edit at runtime. The settings live in a single JSON file; partial
// updates are merged field by field so an update never erases keys it does
// not mention.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Config struct {
	Branding Branding `json:"branding"`
	Theme    Theme    `json:"theme"`
	UI       UI       `json:"ui"`
}

type Branding struct {
	AppTitle     string `json:"appTitle"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logoUrl"`
	HeroImageURL string `json:"heroImageUrl"`
}

type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	SurfaceColor   string `json:"surfaceColor"`
}

type UI struct {
	ShowActivitySidebar     bool `json:"showActivitySidebar"`
	EnableBackgroundPattern bool `json:"enableBackgroundPattern"`
}

// Default returns the configuration shipped with a fresh install.
func Default() Config {
	return Config{
		Branding: Branding{
			AppTitle: "Photoshoot Calendar",
			Tagline:  "Plan and track your shoots with Bangkok precision",
		},
		Theme: Theme{
			PrimaryColor:   "#6366f1",
			SecondaryColor: "#0f172a",
			AccentColor:    "#f97316",
			SurfaceColor:   "#f8fafc",
		},
		UI: UI{
			ShowActivitySidebar:     true,
			EnableBackgroundPattern: true,
		},
	}
}

// Patch is a partial configuration update. Nil fields leave the stored
// value untouched.
type Patch struct {
	Branding *BrandingPatch `json:"branding"`
	Theme    *ThemePatch    `json:"theme"`
	UI       *UIPatch       `json:"ui"`
}

type BrandingPatch struct {
	AppTitle     *string `json:"appTitle"`
	Tagline      *string `json:"tagline"`
	LogoURL      *string `json:"logoUrl"`
	HeroImageURL *string `json:"heroImageUrl"`
}

type ThemePatch struct {
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
	AccentColor    *string `json:"accentColor"`
	SurfaceColor   *string `json:"surfaceColor"`
}

type UIPatch struct {
	ShowActivitySidebar     *bool `json:"showActivitySidebar"`
	EnableBackgroundPattern *bool `json:"enableBackgroundPattern"`
}

func (c *Config) apply(p Patch) {
	if p.Branding != nil {
		if p.Branding.AppTitle != nil {
			c.Branding.AppTitle = *p.Branding.AppTitle
		}
		if p.Branding.Tagline != nil {
			c.Branding.Tagline = *p.Branding.Tagline
		}
		if p.Branding.LogoURL != nil {
			c.Branding.LogoURL = *p.Branding.LogoURL
		}
		if p.Branding.HeroImageURL != nil {
			c.Branding.HeroImageURL = *p.Branding.HeroImageURL
		}
	}
	if p.Theme != nil {
		if p.Theme.PrimaryColor != nil {
			c.Theme.PrimaryColor = *p.Theme.PrimaryColor
		}
		if p.Theme.SecondaryColor != nil {
			c.Theme.SecondaryColor = *p.Theme.SecondaryColor
		}
		if p.Theme.AccentColor != nil {
			c.Theme.AccentColor = *p.Theme.AccentColor
		}
		if p.Theme.SurfaceColor != nil {
			c.Theme.SurfaceColor = *p.Theme.SurfaceColor
		}
	}
	if p.UI != nil {
		if p.UI.ShowActivitySidebar != nil {
			c.UI.ShowActivitySidebar = *p.UI.ShowActivitySidebar
		}
		if p.UI.EnableBackgroundPattern != nil {
			c.UI.EnableBackgroundPattern = *p.UI.EnableBackgroundPattern
		}
	}
}

// Store persists the configuration file. A mutex serializes the
// read-modify-write cycle across concurrent admin updates.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get reads the stored configuration, creating the file with defaults on
// first use. Fields missing from the file keep their default values, so
// settings added in later releases appear without a migration.
func (s *Store) Get() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update merges a partial update into the stored configuration and writes
// it back, returning the merged result.
func (s *Store) Update(p Patch) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return Config{}, err
	}

	cfg.apply(p)

	if err := s.save(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (s *Store) load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if saveErr := s.save(cfg); saveErr != nil {
			return Config{}, saveErr
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read app config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse app config: %w", err)
	}

	return cfg, nil
}

func (s *Store) save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write app config: %w", err)
	}

	return nil
}

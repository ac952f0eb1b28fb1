// Package config loads inkwell's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrInvalid = errors.New("invalid config")

// Icon set names.
const (
	IconsUnicode = "unicode"
	IconsASCII   = "ascii"
)

type Config struct {
	Placeholder  string `toml:"placeholder"`
	HistoryLimit int    `toml:"history_limit"` // negative disables undo
	Icons        string `toml:"icons"`
	ShowPreview  bool   `toml:"show_preview"`
	PreviewStyle string `toml:"preview_style"`

	Theme  Theme  `toml:"theme"`
	Store  Store  `toml:"store"`
	Export Export `toml:"export"`
}

// Theme holds lipgloss color strings.
type Theme struct {
	ActiveBG    string `toml:"active_bg"`
	ActiveFG    string `toml:"active_fg"`
	Button      string `toml:"button"`
	Placeholder string `toml:"placeholder"`
	Selection   string `toml:"selection"`
}

type Store struct {
	Path  string `toml:"path"`
	Draft string `toml:"draft"`
}

type Export struct {
	Path string `toml:"path"`
}

func Default() Config {
	return Config{
		Placeholder:  "Type something...",
		HistoryLimit: 1000,
		Icons:        IconsUnicode,
		ShowPreview:  true,
		PreviewStyle: "dark",
		Theme: Theme{
			ActiveBG:    "#c8c9ff",
			ActiveFG:    "#000000",
			Button:      "250",
			Placeholder: "241",
			Selection:   "238",
		},
		Store: Store{
			Path:  filepath.Join(baseDir(), "drafts.db"),
			Draft: "default",
		},
		Export: Export{Path: "inkwell.html"},
	}
}

func baseDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "inkwell")
	}
	return ".inkwell"
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(baseDir(), "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Icons {
	case IconsUnicode, IconsASCII:
	default:
		return fmt.Errorf("%w: icons must be %q or %q, got %q", ErrInvalid, IconsUnicode, IconsASCII, c.Icons)
	}
	if strings.TrimSpace(c.Store.Draft) == "" {
		return fmt.Errorf("%w: store.draft must not be empty", ErrInvalid)
	}
	return nil
}

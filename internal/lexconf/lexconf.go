// Package lexconf loads the lexer's TOML configuration file, in the shape
// TunaQuest's internal/tqw package loads TOML-based resource files.
package lexconf

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPageSize is the slab size of each half of the lexer's double
// buffer, per design note §4.1.1.
const DefaultPageSize = 4096

// Config is the lexer's tunable behavior. The zero value is not valid for
// direct use; call Default() or Load() to obtain one.
type Config struct {
	// PageSize is the size in bytes of each of the two buffer slabs.
	PageSize int `toml:"page_size"`

	// RejectUnderscoreIdents, if true, emits an Error token for any
	// identifier that is a single "_" followed by further identifier
	// characters. design note §4.1.3 names this as a caller-relaxable rule and
	// chooses "do not reject" as the default (design note §9 Open Questions).
	RejectUnderscoreIdents bool `toml:"reject_underscore_idents"`

	// OutDir is the directory output.txt and the five symbol-table files
	// are written into.
	OutDir string `toml:"out_dir"`
}

// Default returns the Config a lexer uses when none is supplied: the full
// PAGESIZE from design note §4.1.1, underscore identifiers accepted, and output
// written to the current directory.
func Default() Config {
	return Config{
		PageSize:               DefaultPageSize,
		RejectUnderscoreIdents: false,
		OutDir:                 ".",
	}
}

// Load reads a TOML configuration file and overlays it onto Default(). A
// zero PageSize or empty OutDir in the file falls back to the default value
// instead of producing an unusable Config.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load lexer config %q: %w", path, err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}

	return cfg, nil
}

// EnsureOutDir creates Config.OutDir if it does not already exist.
func (c Config) EnsureOutDir() error {
	return os.MkdirAll(c.OutDir, 0o755)
}

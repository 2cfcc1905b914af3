package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config controls the pretty-printer; it is pure CLI convenience, not part
// of the lex/parse contract.
type config struct {
	IndentWidth int  `toml:"indent_width"`
	ShowTrivia  bool `toml:"show_trivia"`
}

func defaultConfig() config {
	return config{IndentWidth: 2, ShowTrivia: false}
}

// loadConfig looks for a trace-config file at $COROGLL_CONFIG, falling back
// to ".corogll.toml" in the working directory. A missing file is not an
// error — the CLI just keeps the defaults.
func loadConfig() config {
	cfg := defaultConfig()

	path := os.Getenv("COROGLL_CONFIG")
	if path == "" {
		path = ".corogll.toml"
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(abs, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}

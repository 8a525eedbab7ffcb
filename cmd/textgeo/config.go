package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/textgeo/words"
)

// config holds the settings that can come from a TOML file.
type config struct {
	Language  string `toml:"language"`
	Normalize string `toml:"normalize"`
}

// loadConfig reads the TOML file at path. An empty path yields the zero
// configuration.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// newTokenizer validates the configuration and builds a tokenizer from it.
func (c config) newTokenizer() (*words.Tokenizer, error) {
	tk := words.New()

	if c.Language != "" {
		tag, err := language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", c.Language, err)
		}
		tk = tk.Language(tag)
	}

	if c.Normalize != "" {
		form, err := parseForm(c.Normalize)
		if err != nil {
			return nil, err
		}
		tk = tk.Normalize(form)
	}

	return tk, nil
}

func parseForm(name string) (norm.Form, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nfc":
		return norm.NFC, nil
	case "nfd":
		return norm.NFD, nil
	case "nfkc":
		return norm.NFKC, nil
	case "nfkd":
		return norm.NFKD, nil
	default:
		return 0, fmt.Errorf("invalid normalization form %q (want nfc, nfd, nfkc, or nfkd)", name)
	}
}

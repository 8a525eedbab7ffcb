package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/tsawler/textgeo/words"
)

type globalFlags struct {
	configPath string
	language   string
	normalize  string
	verbose    bool
}

type commandContext struct {
	flags *globalFlags

	logOutput io.Writer

	configOnce sync.Once
	config     config
	tokenizer  *words.Tokenizer
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags:     flags,
		logOutput: os.Stderr,
	}
}

func (c *commandContext) setLogOutput(w io.Writer) {
	c.logOutput = w
}

func (c *commandContext) logger() *slog.Logger {
	return newLogger(c.logOutput, c.flags.verbose)
}

// ensureConfig loads the configuration file, applies flag overrides, and
// builds the tokenizer. It runs once per command execution.
func (c *commandContext) ensureConfig() (config, error) {
	c.configOnce.Do(func() {
		cfg, err := loadConfig(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if v := strings.TrimSpace(c.flags.language); v != "" {
			cfg.Language = v
		}
		if v := strings.TrimSpace(c.flags.normalize); v != "" {
			cfg.Normalize = v
		}

		tk, err := cfg.newTokenizer()
		if err != nil {
			c.configErr = err
			return
		}

		c.config = cfg
		c.tokenizer = tk
		c.logger().Debug("configuration resolved",
			slog.String("path", c.flags.configPath),
			slog.String("language", cfg.Language),
			slog.String("normalize", cfg.Normalize),
		)
	})
	return c.config, c.configErr
}

func (c *commandContext) wordTokenizer() (*words.Tokenizer, error) {
	if _, err := c.ensureConfig(); err != nil {
		return nil, err
	}
	return c.tokenizer, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

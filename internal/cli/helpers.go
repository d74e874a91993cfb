package cli

import (
	"io"
	"os"

	"github.com/NikitaCOEUR/prefixgender/internal/config"
	"github.com/NikitaCOEUR/prefixgender/internal/converter"
	"github.com/NikitaCOEUR/prefixgender/internal/logger"
	"github.com/NikitaCOEUR/prefixgender/internal/prompt"
	"github.com/NikitaCOEUR/prefixgender/internal/store"
)

// GlobalParams carries the options shared by every command. Empty DBPath and
// LogLevel defer to the configuration file.
type GlobalParams struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	Out        io.Writer
	In         io.Reader
}

func (p GlobalParams) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p GlobalParams) in() io.Reader {
	if p.In == nil {
		return os.Stdin
	}
	return p.In
}

// components holds initialized prefixgender components
type components struct {
	cfg   *config.Config
	log   *logger.Logger
	store *store.Store
}

// initializeComponents loads configuration, then opens the customer store
func initializeComponents(p GlobalParams) (*components, error) {
	cfg, err := config.New().Load(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	if p.DBPath != "" {
		cfg.Database = p.DBPath
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}

	log := logger.New(cfg.LogLevel, os.Stderr)
	log.Debug().Str("database", cfg.Database).Str("config", p.ConfigPath).Msg("configuration loaded")

	s, err := store.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	return &components{cfg: cfg, log: log, store: s}, nil
}

// controller builds the converter wired to the opened store
func (c *components) controller(p GlobalParams) (*converter.Controller, error) {
	return converter.New(converter.Deps{
		Store:           c.store,
		Attributes:      c.store,
		Confirmer:       &prompt.Line{In: p.in(), Out: p.out()},
		Out:             p.out(),
		Log:             c.log,
		EntityType:      c.cfg.EntityType,
		GenderAttribute: c.cfg.GenderAttribute,
		VerboseFormat:   c.cfg.VerboseFormat,
	})
}

func (c *components) close() {
	if err := c.store.Close(); err != nil {
		c.log.Warn().Err(err).Msg("failed to close store")
	}
}

package main

import (
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/yourmjk/d3f-metadata-exporter/internal/config"
	"github.com/yourmjk/d3f-metadata-exporter/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	settingsOnce sync.Once
	settings     *config.Settings
	settingsErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if path := strings.TrimSpace(*c.configFlag); path != "" {
			return path
		}
	}
	return config.DefaultPath()
}

func (c *commandContext) ensureSettings() (*config.Settings, error) {
	c.settingsOnce.Do(func() {
		settings, err := config.Load(c.configPath())
		if err != nil {
			c.settingsErr = err
			return
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			settings.Verbose = true
		}
		c.settings = settings
	})
	return c.settings, c.settingsErr
}

func (c *commandContext) newLogger(stdout, stderr io.Writer) *zap.Logger {
	verbose := c.verboseFlag != nil && *c.verboseFlag
	if c.settings != nil {
		verbose = c.settings.Verbose
	}
	return logging.NewCliLogger(stdout, stderr, verbose)
}

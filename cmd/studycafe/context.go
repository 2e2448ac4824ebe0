package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/space84/studycafe/internal/config"
	"github.com/space84/studycafe/internal/fanfic"
	apihttp "github.com/space84/studycafe/internal/http"
	"github.com/space84/studycafe/internal/logging"
)

type commandContext struct {
	configFlag   *string
	apiURLFlag   *string
	logLevelFlag *string

	settingsOnce sync.Once
	settings     *config.Settings
	settingsErr  error
}

func newCommandContext(configFlag, apiURLFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		apiURLFlag:   apiURLFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureSettings resolves settings once: file, then environment, then flags.
func (c *commandContext) ensureSettings() (*config.Settings, error) {
	c.settingsOnce.Do(func() {
		path := flagValue(c.configFlag)
		if path == "" {
			defaultPath, err := config.DefaultPath()
			if err == nil {
				path = defaultPath
			}
		}

		settings, err := config.Load(path)
		if err != nil {
			c.settingsErr = fmt.Errorf("load config: %w", err)
			return
		}
		settings.ApplyEnv(os.LookupEnv)

		if apiURL := flagValue(c.apiURLFlag); apiURL != "" {
			settings.APIURL = strings.TrimRight(apiURL, "/")
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			settings.LogLevel = strings.ToLower(level)
		}
		if err := settings.Validate(); err != nil {
			c.settingsErr = fmt.Errorf("invalid settings: %w", err)
			return
		}
		c.settings = settings
	})
	return c.settings, c.settingsErr
}

// logger builds a logger writing to the configured log file or to fallback.
func (c *commandContext) logger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	settings, err := c.ensureSettings()
	if err != nil {
		return nil, nil, err
	}
	return logging.NewFromSettings(settings, fallback)
}

// apiClient returns a fanfic API client bound to the resolved base URL.
func (c *commandContext) apiClient() (*fanfic.Client, error) {
	settings, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	httpClient := apihttp.NewClient(
		apihttp.WithTimeout(settings.RequestTimeout()),
		apihttp.WithUserAgent(settings.UserAgent),
	)
	return fanfic.NewClient(settings.APIURL, httpClient), nil
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"storyfinder/internal/config"
	"storyfinder/internal/discovery"
	"storyfinder/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger writes to the command's stderr so stdout stays parseable. A
// configured log file receives a copy.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Logging.File != "" {
		return logging.NewFromConfig(cfg)
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Format, cfg.Logging.Level)
}

func (c *commandContext) service(cmd *cobra.Command) (*discovery.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return discovery.New(cfg, nil, logger), nil
}

// runDiscovery performs a full run, or a run rooted at args[0] when given.
func (c *commandContext) runDiscovery(cmd *cobra.Command, args []string) (discovery.Report, error) {
	svc, err := c.service(cmd)
	if err != nil {
		return discovery.Report{}, err
	}
	if len(args) > 0 {
		root, err := config.ExpandPath(args[0])
		if err != nil {
			return discovery.Report{}, fmt.Errorf("resolve path: %w", err)
		}
		return svc.RunAt(cmd.Context(), root), nil
	}
	return svc.Run(cmd.Context()), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func printOutcome(out io.Writer, report discovery.Report) {
	switch report.Outcome {
	case discovery.OutcomeInstallNotFound:
		fmt.Fprintln(out, "Game installation not found")
	case discovery.OutcomeStoryDirNotFound:
		fmt.Fprintf(out, "No story data directory under %s\n", report.InstallRoot)
	}
}

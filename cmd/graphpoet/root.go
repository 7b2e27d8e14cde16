// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/internal/config"
	"github.com/katalvlaran/graphpoet/internal/observability"
	"github.com/katalvlaran/graphpoet/poet"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	corpus     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "graphpoet",
		Short:        "Insert bridge words into poems using a corpus affinity graph",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&flags.corpus, "corpus", "", "corpus text file, overrides the config value")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newPoemCmd(flags),
		newGraphCmd(flags),
		newBridgeCmd(flags),
		newServeCmd(flags),
	)

	return root
}

// load resolves the configuration: file first, then flag overrides.
func (f *rootFlags) load() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.corpus != "" {
		cfg.Corpus = f.corpus
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	if err := cfg.RequireCorpus(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// setup loads the config, builds the logger and reads the corpus.
func (f *rootFlags) setup() (config.Config, *zap.Logger, *poet.Poet, error) {
	cfg, err := f.load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log := observability.NewLogger(cfg.Log)

	p, err := poet.NewFromFile(cfg.Corpus, poet.WithLogger(log))
	if err != nil {
		_ = log.Sync()
		return config.Config{}, nil, nil, fmt.Errorf("load corpus: %w", err)
	}

	return cfg, log, p, nil
}

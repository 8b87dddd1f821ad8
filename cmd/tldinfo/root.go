// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/H0llyW00dzZ/tldinfo/src/tldinfo"
)

// app carries the shared state built once in the root command's
// PersistentPreRunE and used by every subcommand.
type app struct {
	configPath   string
	snapshotPath string
	verbose      bool

	service *tldinfo.Service
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tldinfo",
		Short: "Look up top-level domain information",
		Long: `tldinfo keeps a local, week-bounded copy of IANA's TLD registry and
the Wikipedia TLD metadata tables, and answers lookups against them.

Caches persist across runs in a YAML snapshot file; each dataset is
refetched once it is at least a week old.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "tldinfo.yaml",
		"path to the YAML configuration file")
	root.PersistentFlags().StringVar(&a.snapshotPath, "snapshot", "tldinfo-cache.yaml",
		"path to the cache snapshot file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(
		newLookupCmd(a),
		newRefreshCmd(a),
		newProbeCmd(a),
		newExportCmd(a),
		newDaemonCmd(a),
	)

	return root
}

// setup loads the configuration, builds the logger and service, and
// restores the cache snapshot.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	// The --snapshot flag wins over the config file.
	if cmd.Flags().Changed("snapshot") || cfg.SnapshotPath == "" {
		cfg.SnapshotPath = a.snapshotPath
	}

	logger := zap.NewNop()
	if a.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	a.logger = logger

	opts := append(cfg.options(), tldinfo.WithLogger(logger))
	a.service = tldinfo.New(opts...)
	return a.service.Load()
}

// teardown persists the cache snapshot and flushes the logger.
func (a *app) teardown() error {
	err := a.service.Close()
	_ = a.logger.Sync()
	return err
}

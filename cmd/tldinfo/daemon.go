// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newDaemonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Keep the caches fresh on a fixed interval until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Blocks until the context is canceled; the root
			// command's teardown then persists the snapshot.
			a.service.Run(ctx)
			return nil
		},
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tldinfo/src/tldinfo"
)

func newRefreshCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the cached datasets if they are stale",
		RunE: func(cmd *cobra.Command, args []string) error {
			if force {
				a.service.Store().Expire()
			}

			a.service.Refresh(cmd.Context(), tldinfo.DatasetList)
			a.service.Refresh(cmd.Context(), tldinfo.DatasetRecords)

			list, listUpdated := a.service.Store().List()
			records, recordsUpdated := a.service.Store().Records()
			fmt.Fprintf(cmd.OutOrStdout(), "suffix list: %d entries (updated %s)\n",
				len(list), listUpdated.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(cmd.OutOrStdout(), "record index: %d keys (updated %s)\n",
				len(records), recordsUpdated.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"refetch both datasets even if they are fresh")
	return cmd
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tldinfo/src/tldinfo"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "export <file.xlsx>",
		Short:   "Export the cached TLD records to an Excel workbook",
		Example: "  tldinfo export tlds.xlsx",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Make sure there is something to export on a first run.
			a.service.Refresh(cmd.Context(), tldinfo.DatasetRecords)

			if err := a.service.ExportXLSX(args[0]); err != nil {
				if errors.Is(err, tldinfo.ErrNothingToExport) {
					return errors.New("the record cache is empty and could not be fetched; try again later")
				}
				return err
			}

			records, _ := a.service.Store().Records()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), args[0])
			return nil
		},
	}
}

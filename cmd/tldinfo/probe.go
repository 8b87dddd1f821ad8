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

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "probe <tld>",
		Short:   "Check a TLD's delegation in the root zone via DNS",
		Example: "  tldinfo probe рф",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			servers, err := a.service.ProbeNS(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, tldinfo.ErrTLDNotRegistered) {
					fmt.Fprintf(cmd.OutOrStdout(),
						"The top-level domain '%s' is not delegated in the root zone.\n",
						tldinfo.Normalize(args[0]))
					return nil
				}
				return err
			}

			if len(servers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "delegated, but the resolver returned no NS records")
				return nil
			}
			for _, ns := range servers {
				fmt.Fprintln(cmd.OutOrStdout(), ns)
			}
			return nil
		},
	}
}

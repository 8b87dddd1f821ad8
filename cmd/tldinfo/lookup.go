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

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <tld>",
		Short:   "Show information about a top-level domain",
		Example: "  tldinfo lookup .ru",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) > 0 {
				raw = args[0]
			}

			line, err := a.service.Lookup(cmd.Context(), raw)
			if err != nil {
				// User-facing outcomes print a short reply and exit
				// zero, so the freshly fetched caches still get
				// persisted by the root command's teardown.
				if reply := lookupReply(err, raw); reply != "" {
					fmt.Fprintln(cmd.OutOrStdout(), reply)
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

// lookupReply converts the resolver's sentinel errors into the short
// user-facing replies. Unknown errors return "".
func lookupReply(err error, raw string) string {
	tld := tldinfo.Normalize(raw)
	switch {
	case errors.Is(err, tldinfo.ErrNoTLDGiven):
		return "You must provide a top-level domain to search."
	case errors.Is(err, tldinfo.ErrTLDNotRegistered):
		return fmt.Sprintf("The top-level domain '%s' is not in IANA's list of valid TLDs.", tld)
	case errors.Is(err, tldinfo.ErrTLDNoDetails):
		return fmt.Sprintf("The top-level domain '%s' exists, but no details about it could be found.", tld)
	default:
		return ""
	}
}

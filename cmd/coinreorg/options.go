// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kazssym/coin/reorganize"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options <file>",
		Short: "Write the default reorganize options to a TOML or YAML file",
		Long: `Writes the default reorganize options to the given file, as TOML
for a .toml file or YAML for a .yaml or .yml file. The file can then be
edited and passed to the demo command with --options.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := &reorganize.Options{}
			o.Defaults()
			if err := reorganize.SaveOptions(o, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

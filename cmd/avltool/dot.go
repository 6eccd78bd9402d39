// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"

	"github.com/absolutelightning/go-avl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func dotCommand(logger func() zerolog.Logger) *cobra.Command {
	var stdout bool
	cmd := &cobra.Command{
		Use:   "dot [name] [keys...]",
		Short: "draw the AVL tree built from keys as a DOT graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			keys, err := parseKeys(args[1:])
			if err != nil {
				return err
			}
			tree := avl.New(avl.NewConfig[int]().WithLogger(logger()))
			for _, k := range keys {
				if _, err := tree.Insert(k); err != nil {
					return fmt.Errorf("insert %d: %w", k, err)
				}
			}
			if stdout {
				return tree.WriteDot(cmd.OutOrStdout(), name)
			}
			if err := avl.WriteDotFile(name, tree.Root()); err != nil {
				return err
			}
			log := logger()
			log.Info().Str("file", name+".dot").Int("keys", tree.Len()).Msg("wrote dot graph")
			return nil
		},
	}
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write the graph to standard output instead of <name>.dot")
	return cmd
}

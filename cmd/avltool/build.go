// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/absolutelightning/go-avl"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const progressEvery = 100_000

type buildOptions struct {
	count      int
	order      string
	seed       int64
	unbalanced bool
	dotName    string
}

type report struct {
	Size           int
	Height         int
	BalancedHeight int
	IsAVL          bool
	VerifyErr      error
	Digest         uint64
	Rotations      map[string]float64
}

func buildCommand(logger func() zerolog.Logger) *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build [keys...]",
		Short: "insert keys into a tree and report its shape",
		Long: "Inserts the integer keys given as arguments, or --count generated keys when\n" +
			"none are given, and prints the size, height, validity and digest of the tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				keys, err = generateKeys(opts.count, opts.order, opts.seed)
				if err != nil {
					return err
				}
			}
			var r report
			if opts.unbalanced {
				r, err = buildUnbalanced(logger(), keys, opts.dotName)
			} else {
				r, err = buildBalanced(logger(), keys, opts.dotName)
			}
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), r, !opts.unbalanced)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.count, "count", 1000, "number of keys to generate when none are given")
	cmd.Flags().StringVar(&opts.order, "order", orderRandom, "order of generated keys: asc, desc or random")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1234, "seed for the random key order")
	cmd.Flags().BoolVar(&opts.unbalanced, "unbalanced", false, "insert without rebalancing")
	cmd.Flags().StringVar(&opts.dotName, "dot", "", "if set, write the tree to <name>.dot")
	return cmd
}

func buildBalanced(log zerolog.Logger, keys []int, dotName string) (report, error) {
	reg := prometheus.NewRegistry()
	metrics := avl.NewMetrics(reg, prometheus.Labels{"tree": "avltool"})
	tree := avl.New(avl.NewConfig[int]().WithLogger(log).WithMetrics(metrics))

	since := time.Now()
	for i, k := range keys {
		if _, err := tree.Insert(k); err != nil {
			return report{}, fmt.Errorf("insert %d: %w", k, err)
		}
		if (i+1)%progressEvery == 0 {
			log.Info().Msgf("inserted %s keys in %s; height %d",
				humanize.Comma(int64(i+1)), time.Since(since), tree.BalancedHeight())
		}
	}
	log.Info().
		Str("keys", humanize.Comma(int64(len(keys)))).
		Dur("elapsed", time.Since(since)).
		Msg("tree built")

	if dotName != "" {
		if err := avl.WriteDotFile(dotName, tree.Root()); err != nil {
			return report{}, err
		}
		log.Info().Str("file", dotName+".dot").Msg("wrote dot graph")
	}

	rotations, err := gatherRotations(reg)
	if err != nil {
		return report{}, err
	}
	return report{
		Size:           tree.Len(),
		Height:         tree.Height(),
		BalancedHeight: tree.BalancedHeight(),
		IsAVL:          tree.IsAVL(),
		VerifyErr:      tree.Verify(),
		Digest:         tree.Digest(),
		Rotations:      rotations,
	}, nil
}

func buildUnbalanced(log zerolog.Logger, keys []int, dotName string) (report, error) {
	alloc := avl.NewCountingAllocator[int](0)
	var root *avl.Node[int]
	var err error
	since := time.Now()
	for _, k := range keys {
		root, err = avl.InsertUnbalanced[int](alloc, root, k)
		if err != nil {
			return report{}, fmt.Errorf("insert %d: %w", k, err)
		}
	}
	log.Info().
		Str("keys", humanize.Comma(int64(len(keys)))).
		Dur("elapsed", time.Since(since)).
		Msg("unbalanced tree built")

	if dotName != "" {
		if err := avl.WriteDotFile(dotName, root); err != nil {
			return report{}, err
		}
	}

	r := report{
		Size:   alloc.Live(),
		Height: avl.Height(root),
		IsAVL:  avl.IsAVL(root),
		Digest: avl.Digest(root),
	}
	avl.Free[int](alloc, root)
	if alloc.Live() != 0 {
		return r, fmt.Errorf("%d nodes still live after free", alloc.Live())
	}
	return r, nil
}

// gatherRotations reads the per-case rotation counters back out of reg.
func gatherRotations(reg prometheus.Gatherer) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "avl_rotations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "case" {
					out[lp.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	return out, nil
}

func writeReport(w io.Writer, r report, balanced bool) {
	fmt.Fprintf(w, "size:            %s\n", humanize.Comma(int64(r.Size)))
	fmt.Fprintf(w, "height:          %d\n", r.Height)
	if balanced {
		fmt.Fprintf(w, "balanced height: %d\n", r.BalancedHeight)
	}
	fmt.Fprintf(w, "avl:             %t\n", r.IsAVL)
	if balanced {
		if r.VerifyErr != nil {
			fmt.Fprintf(w, "verify:          %s\n", r.VerifyErr)
		} else {
			fmt.Fprintf(w, "verify:          ok\n")
		}
		for _, c := range []string{"ll", "lr", "rr", "rl"} {
			fmt.Fprintf(w, "rotations %s:    %s\n", c, humanize.Comma(int64(r.Rotations[c])))
		}
	}
	fmt.Fprintf(w, "digest:          %016x\n", r.Digest)
}

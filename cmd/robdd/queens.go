// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/internal/puzzle"
)

var one bool

// queensResult is the outcome of solving the N-Queens problem on one board.
type queensResult struct {
	n        int
	count    *big.Int
	solution string
	stats    string
}

func newQueensCmd() *cobra.Command {
	queensCmd := &cobra.Command{
		Use:   "queens [N...]",
		Short: "Count the solutions of the N-Queens problem",
		Long: `The robdd queens command counts the number of ways to place N queens
        on a NxN chess board. Each board size is solved concurrently, with its
        own BDD.

        $ robdd queens 4 8 --one
        `,
		Args: cobra.MinimumNArgs(1),
		RunE: queensFunc,
	}

	queensCmd.Flags().BoolVar(&one, "one", false, "print one solution for each board")

	return queensCmd
}

func queensFunc(cmd *cobra.Command, args []string) error {
	sizes := make([]int, len(args))
	for k, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return errors.Errorf("bad board size %q", a)
		}
		sizes[k] = n
	}

	results := make([]queensResult, len(sizes))
	g, ctx := errgroup.WithContext(context.Background())
	for k, n := range sizes {
		k, n := k, n
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			res, err := solveQueens(n)
			if err != nil {
				return errors.Wrapf(err, "queens %d", n)
			}
			results[k] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%d-queens: %s solutions\n", r.n, r.count)
		if one {
			fmt.Fprintln(out, r.solution)
		}
		if stats {
			fmt.Fprintln(out, r.stats)
		}
	}
	return nil
}

// solveQueens builds the BDD for one board, on its own BDD, so that it can be
// called from different goroutines.
func solveQueens(n int) (queensResult, error) {
	b, err := newBDD(n * n)
	if err != nil {
		return queensResult{}, err
	}
	defer b.Done()
	log.WithField("N", n).Debug("solving queens")
	q, err := puzzle.Queens(b, n)
	if err != nil {
		return queensResult{}, err
	}
	res := queensResult{n: n, count: b.Satcount(q)}
	if one {
		s, err := b.SatOne(q)
		switch {
		case errors.Is(err, robdd.ErrUnsatisfiable):
			res.solution = "no solution"
		case err != nil:
			return queensResult{}, err
		default:
			res.solution, err = board(b, s, n)
			if err != nil {
				return queensResult{}, err
			}
		}
	}
	if stats {
		res.stats = b.Stats()
	}
	return res, nil
}

// board draws the (single) assignment of cube s as a chess board, with rows
// given by variables i*n..i*n+n-1.
func board(b *robdd.BDD, s robdd.Node, n int) (string, error) {
	var sb strings.Builder
	err := b.Allsat(s, func(varset []int) error {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if varset[i*n+j] == 1 {
					sb.WriteString("X ")
				} else {
					sb.WriteString(". ")
				}
			}
			sb.WriteString("\n")
		}
		return nil
	})
	return strings.TrimSuffix(sb.String(), "\n"), err
}

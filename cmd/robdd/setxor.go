// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dalzilio/robdd"
)

func newSetxorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setxor",
		Short: "Check the literal-wise xor of cubes",
		Long: `The robdd setxor command computes the literal-wise symmetric
        difference of three cubes over 5 variables, in every order, and checks
        that each result is the remaining cube.

        $ robdd setxor
        `,
		Args: cobra.NoArgs,
		RunE: setxorFunc,
	}
}

func setxorFunc(cmd *cobra.Command, args []string) error {
	b, err := newBDD(5)
	if err != nil {
		return err
	}
	defer b.Done()
	V := make([]robdd.Node, 5)
	for i := range V {
		V[i] = b.Ithvar(i)
	}
	cubes := map[string]robdd.Node{
		"a": b.And(V[0], b.Not(V[1]), V[2], b.Not(V[3])),
		"b": b.And(V[0], V[1], V[2], b.Not(V[3])),
		"c": b.And(b.Not(V[0]), V[1], b.Not(V[2]), b.Not(V[3])),
	}
	out := cmd.OutOrStdout()
	for _, name := range []string{"a", "b", "c"} {
		fmt.Fprintf(out, "%s = %s\n", name, b.SetString(cubes[name]))
	}
	var checks = []struct{ left, right, expected string }{
		{"a", "b", "c"},
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "b", "a"},
		{"a", "c", "b"},
		{"c", "a", "b"},
	}
	for _, c := range checks {
		res := b.SetXor(cubes[c.left], cubes[c.right])
		if b.Errored() {
			return b.Err()
		}
		if !b.Equal(res, cubes[c.expected]) {
			return errors.Errorf("setxor(%s, %s) = %s, expected %s", c.left, c.right, b.SetString(res), c.expected)
		}
		fmt.Fprintf(out, "setxor(%s, %s) = %s\n", c.left, c.right, c.expected)
	}
	if stats {
		fmt.Fprintln(out, b.Stats())
	}
	return nil
}

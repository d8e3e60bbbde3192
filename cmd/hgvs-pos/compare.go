package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VariantEffect/hgvs-patterns/internal/hgvs"
)

func newCompareCmd() *cobra.Command {
	var adjacent bool

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two positions in transcript order",
		Example: `  hgvs-pos compare 88-7 88
  hgvs-pos compare --adjacent 10 11`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], adjacent)
		},
	}

	cmd.Flags().BoolVar(&adjacent, "adjacent", false, "Also report whether the positions are adjacent")

	return cmd
}

func runCompare(left, right string, adjacent bool) error {
	a, err := hgvs.ParsePosition(left)
	if err != nil {
		return err
	}
	b, err := hgvs.ParsePosition(right)
	if err != nil {
		return err
	}

	switch a.Compare(b) {
	case -1:
		fmt.Printf("%s < %s\n", left, right)
	case 0:
		fmt.Printf("%s = %s\n", left, right)
	default:
		fmt.Printf("%s > %s\n", left, right)
	}

	if adjacent {
		ok, err := a.IsAdjacent(b)
		if errors.Is(err, hgvs.ErrExtendedAdjacency) {
			fmt.Println("adjacent: undefined (intronic or UTR position)")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("adjacent: %v\n", ok)
	}

	return nil
}

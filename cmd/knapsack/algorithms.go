package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/solver"
)

// algorithmInfo describes one selector in the algorithms listing.
type algorithmInfo struct {
	Selector   string        `json:"selector"`
	Family     solver.Family `json:"family"`
	Stochastic bool          `json:"stochastic"`
}

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithm selectors",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			var infos []algorithmInfo
			for _, algo := range solver.Algorithms() {
				infos = append(infos, algorithmInfo{
					Selector:   algo.String(),
					Family:     algo.Family(),
					Stochastic: algo.Stochastic(),
				})
			}

			if a.resolvedFormat() == formatJSON {
				return writeJSON(a.stdout, infos)
			}
			for _, info := range infos {
				kind := ""
				if info.Stochastic {
					kind = " (stochastic)"
				}
				if _, err := fmt.Fprintf(a.stdout, "%-13s %s%s\n", info.Selector, info.Family, kind); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

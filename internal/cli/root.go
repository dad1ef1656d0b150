// Package cli implements the factorscope command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/factorscope/core/internal/config"
	"github.com/factorscope/core/internal/factor"
	"github.com/factorscope/core/internal/sieve"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var bound int
	var cfgPath string
	var jsonOut bool
	var quiet bool

	cmd := &cobra.Command{
		Use:          "factorscope <number>",
		Short:        "Factor an integer using a mod-6 prime-power sieve",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("bound") {
				cfg.SieveBound = bound
			}

			n, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("not a decimal integer: %q", args[0])
			}

			out := cmd.OutOrStdout()

			var opts []factor.Option
			if !quiet && !jsonOut {
				opts = append(opts, factor.WithProgress(func(p factor.Progress) {
					fmt.Fprintf(out, "found factor %s (%s), exponent %d\n", p.Prime, p.Class, p.Exponent)
				}))
			}

			orch := factor.New(sieve.Build(cfg.SieveBound), opts...)
			res, err := orch.Run(n)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(factor.Report(res))
			}

			printSummary(cmd, res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&bound, "bound", "b", sieve.DefaultBound, "Upper limit for sieve candidates")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file (optional)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-factor progress lines")

	return cmd
}

func printSummary(cmd *cobra.Command, res factor.Result) {
	out := cmd.OutOrStdout()

	terms := []string{}
	for _, e := range res.Factors.Entries() {
		if e.Exponent == 1 {
			terms = append(terms, e.Prime.String())
		} else {
			terms = append(terms, fmt.Sprintf("%s^%d", e.Prime, e.Exponent))
		}
	}

	flat := []string{}
	for _, p := range res.Factors.Flat() {
		flat = append(flat, p.String())
	}

	fmt.Fprintf(out, "%s = %s\n", res.Input, strings.Join(terms, " * "))
	fmt.Fprintf(out, "flat: [%s]\n", strings.Join(flat, ", "))
	fmt.Fprintf(out, "elapsed: %s\n", res.Elapsed)
	fmt.Fprintf(out, "verified: %t\n", res.Verified)
}

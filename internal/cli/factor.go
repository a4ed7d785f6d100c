package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ib-77/monads/pkg/monads/factor"
)

func newFactorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Factor operations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "compare FACTOR FACTOR",
			Short: "Compare two factors",
			Args:  cobra.ExactArgs(2),
			RunE:  runFactorCompare,
		},
		&cobra.Command{
			Use:   "scale FACTOR VALUE",
			Short: "Multiply a value by a factor",
			Args:  cobra.ExactArgs(2),
			RunE:  runFactorScale,
		},
	)

	return cmd
}

func parseDecimal(what, arg string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", what, arg, err)
	}
	return d, nil
}

func runFactorCompare(cmd *cobra.Command, args []string) error {
	left, err := parseDecimal("factor", args[0])
	if err != nil {
		return err
	}
	right, err := parseDecimal("factor", args[1])
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	cmp := factor.New(left).Cmp(factor.New(right))
	return p.print(fmt.Sprintf("%s %s %s", factor.New(left), relation(cmp), factor.New(right)), map[string]int{"compare": cmp})
}

func runFactorScale(cmd *cobra.Command, args []string) error {
	rate, err := parseDecimal("factor", args[0])
	if err != nil {
		return err
	}
	value, err := parseDecimal("value", args[1])
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	scaled := p.round(factor.New(rate).Scale(value))
	return p.print(scaled, map[string]string{"value": scaled})
}

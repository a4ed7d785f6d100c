package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ib-77/monads/pkg/monads/probability"
)

type probabilityView struct {
	Chance string `json:"chance"`
}

func newProbabilityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Probability operations, chances are decimals in [0, 1]",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add CHANCE CHANCE",
			Short: "Add two probabilities, capped at 1",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runProbability(cmd, args, probability.Probability.Add)
			},
		},
		&cobra.Command{
			Use:   "sub CHANCE CHANCE",
			Short: "Subtract two probabilities, floored at 0",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runProbability(cmd, args, probability.Probability.Sub)
			},
		},
		&cobra.Command{
			Use:   "compare CHANCE CHANCE",
			Short: "Compare two probabilities",
			Args:  cobra.ExactArgs(2),
			RunE:  runProbabilityCompare,
		},
	)

	return cmd
}

func parseProbability(arg string) (probability.Probability, error) {
	chance, err := decimal.NewFromString(arg)
	if err != nil {
		return probability.Zero(), fmt.Errorf("parse probability %q: %w", arg, err)
	}

	p := probability.Create(chance)
	if err := check(p, fmt.Sprintf("probability %q", arg)); err != nil {
		return probability.Zero(), err
	}
	return p.Value(), nil
}

func parseProbabilities(args []string) (probability.Probability, probability.Probability, error) {
	left, err := parseProbability(args[0])
	if err != nil {
		return left, left, err
	}
	right, err := parseProbability(args[1])
	return left, right, err
}

func runProbability(cmd *cobra.Command, args []string, op func(probability.Probability, probability.Probability) probability.Probability) error {
	left, right, err := parseProbabilities(args)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	chance := p.round(op(left, right).Chance())
	return p.print(chance, probabilityView{Chance: chance})
}

func runProbabilityCompare(cmd *cobra.Command, args []string) error {
	left, right, err := parseProbabilities(args)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	cmp := left.Cmp(right)
	return p.print(fmt.Sprintf("%s %s %s", left, relation(cmp), right), map[string]int{"compare": cmp})
}

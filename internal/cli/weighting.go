package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/either"
	"github.com/ib-77/monads/pkg/monads/result"
	"github.com/ib-77/monads/pkg/monads/validation"
	"github.com/ib-77/monads/pkg/monads/weighting"
)

type weightingView struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
	Ratio       string `json:"ratio"`
}

func newWeightingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weighting",
		Short: "Weighting operations, weightings are written n/d",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize WEIGHTING...",
			Short: "Rewrite weightings onto a shared denominator",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runNormalize,
		},
		&cobra.Command{
			Use:   "simplify WEIGHTING",
			Short: "Divide both terms by their smallest common divisor",
			Args:  cobra.ExactArgs(1),
			RunE:  runSimplify,
		},
		&cobra.Command{
			Use:   "common WEIGHTING WEIGHTING",
			Short: "Print the common denominator of two weightings",
			Args:  cobra.ExactArgs(2),
			RunE:  runCommon,
		},
	)

	return cmd
}

// parseWeightings parses every argument and reports all invalid ones at once.
func parseWeightings(args []string) ([]weighting.Weighting, error) {
	items := make([]either.Either[weighting.Weighting, []monads.FieldError], 0, len(args))
	for _, arg := range args {
		items = append(items, weighting.Parse(arg).Either())
	}

	parsed := result.FromEither(validation.All(items), "invalid weightings")
	if err := check(parsed, fmt.Sprintf("parse %s", strings.Join(args, " "))); err != nil {
		return nil, err
	}
	return parsed.Value(), nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	set, err := parseWeightings(args)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	normalized := weighting.Normalize(set)
	zap.S().Debugw("normalized weightings", "count", len(normalized))

	views := make([]weightingView, 0, len(normalized))
	lines := make([]string, 0, len(normalized))
	for _, w := range normalized {
		views = append(views, p.view(w))
		lines = append(lines, fmt.Sprintf("%s\t%s", w, p.round(w.Ratio())))
	}

	return p.print(strings.Join(lines, "\n"), views)
}

func runSimplify(cmd *cobra.Command, args []string) error {
	set, err := parseWeightings(args)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	simplified := set[0].Simplify()
	return p.print(simplified.String(), p.view(simplified))
}

func runCommon(cmd *cobra.Command, args []string) error {
	set, err := parseWeightings(args)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	common := set[0].CommonDenominator(set[1])
	return p.print(fmt.Sprintf("%d", common), map[string]uint64{"denominator": common})
}

func (p printer) view(w weighting.Weighting) weightingView {
	return weightingView{
		Numerator:   w.Numerator(),
		Denominator: w.Denominator(),
		Ratio:       p.round(w.Ratio()),
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ib-77/monads/internal/config"
)

type printer struct {
	w         io.Writer
	json      bool
	precision int32
}

func newPrinter(cmd *cobra.Command) printer {
	return printer{
		w:         cmd.OutOrStdout(),
		json:      config.GetOutput() == config.OutputJSON,
		precision: config.GetPrecision(),
	}
}

// print writes text, or value as a single json document.
func (p printer) print(text string, value interface{}) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		return enc.Encode(value)
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func (p printer) round(d decimal.Decimal) string {
	return d.Round(p.precision).String()
}

func relation(cmp int) string {
	switch {
	case cmp < 0:
		return "<"
	case cmp > 0:
		return ">"
	default:
		return "="
	}
}

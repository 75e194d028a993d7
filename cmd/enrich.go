package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/enrich-cli/internal/enrich"
	"github.com/sells-group/enrich-cli/internal/llm"
)

var (
	enrichColumn   string
	enrichTarget   string
	enrichContext  map[string]string
	enrichProvider string
	enrichFormat   string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a single cell",
	Example: `  enrich-cli enrich --column CEO --target Amazon \
    --context Industry=E-commerce --context Founded=1994 --context "Location=Seattle, WA"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if enrichProvider != "" {
			if !llm.Supported(enrichProvider) {
				return eris.Errorf("unknown provider %q (supported: %v)", enrichProvider, llm.Names())
			}
			cfg.LLM.Provider = enrichProvider
		}

		env, err := initEnv(ctx, cfg, "enrich")
		if err != nil {
			return err
		}

		out := enrich.Cell(ctx, enrichColumn, enrichTarget, enrichContext, env.Searcher, env.Provider)

		zap.L().Info("enrichment complete",
			zap.String("column", enrichColumn),
			zap.String("target", enrichTarget),
			zap.String("answer", out.Value()),
			zap.Bool("failed", out.Failed()),
		)

		if err := writeOutcome(os.Stdout, out, enrichFormat); err != nil {
			return err
		}
		if out.Failed() {
			return eris.New(enrich.ErrorSentinel)
		}
		return nil
	},
}

// cellOutput is the printed form of an enrichment outcome.
type cellOutput struct {
	RunID       string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	ColumnName  string   `json:"column_name,omitempty" yaml:"column_name,omitempty"`
	TargetValue string   `json:"target_value,omitempty" yaml:"target_value,omitempty"`
	Answer      string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	Sources     []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func toCellOutput(out enrich.Outcome) cellOutput {
	if out.Failed() {
		return cellOutput{Error: out.Error}
	}
	c := out.Context
	co := cellOutput{
		RunID:       c.RunID,
		ColumnName:  c.ColumnName,
		TargetValue: c.TargetValue,
		Answer:      out.Value(),
	}
	if c.SearchResult != nil {
		for _, r := range c.SearchResult.Results {
			co.Sources = append(co.Sources, r.URL)
		}
	}
	return co
}

// writeOutcome prints out in the requested format: json, yaml or text.
func writeOutcome(w io.Writer, out enrich.Outcome, format string) error {
	co := toCellOutput(out)

	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(co)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(co); err != nil {
			return eris.Wrap(err, "encode yaml")
		}
		return enc.Close()
	case "text":
		_, err := fmt.Fprintln(w, out.Value())
		return err
	default:
		return eris.Errorf("unknown format %q", format)
	}
}

func init() {
	enrichCmd.Flags().StringVar(&enrichColumn, "column", "", "attribute to look up, e.g. CEO (required)")
	enrichCmd.Flags().StringVar(&enrichTarget, "target", "", "subject of the lookup, e.g. Amazon (required)")
	enrichCmd.Flags().StringToStringVar(&enrichContext, "context", nil, "known sibling values as key=value (repeatable)")
	enrichCmd.Flags().StringVar(&enrichProvider, "provider", "", "llm provider override (openai, gemini, anthropic, perplexity)")
	enrichCmd.Flags().StringVar(&enrichFormat, "format", "json", "output format: json, yaml or text")
	_ = enrichCmd.MarkFlagRequired("column")
	_ = enrichCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(enrichCmd)
}

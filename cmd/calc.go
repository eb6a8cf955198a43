package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"wealth-planner/config"
	"wealth-planner/logging"
	"wealth-planner/service"
)

const tableStyle = "dark"

var (
	flagInput string
	flagQuery string
	flagPlain bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <calculator>",
	Short: "Run one calculator and print the result",
	Long: "Run one calculator on a JSON input given inline or as @file.\n\n" +
		calculatorHelp(),
	Example: `  wealth-planner calc sip-growth --input '{"monthly_investment":5000,"period_years":10,"expected_returns":12}'
  wealth-planner calc retirement --input @retirement.json --query '$.monthly_sip'`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return calculatorNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&flagInput, "input", "i", "{}", "JSON input, or @path to read it from a file")
	calcCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JSONPath expression selecting one value of the result")
	calcCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print JSON instead of a rendered table")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, cmd.ErrOrStderr())

	ctx := cmd.Context()

	advisor := service.NewAdvisorService(ctx, service.AdvisorConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	}, logger)

	calculators := newCalculators(advisor, logger)
	calculate, ok := calculators[args[0]]
	if !ok {
		return fmt.Errorf("unknown calculator %q\n%s", args[0], calculatorHelp())
	}

	raw, err := readInput(flagInput)
	if err != nil {
		return err
	}

	result, err := calculate(ctx, raw)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), result, flagQuery, flagPlain)
}

// readInput returns the inline JSON, or the content of the file when the
// argument starts with '@'.
func readInput(arg string) ([]byte, error) {
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		return data, nil
	}
	return []byte(arg), nil
}

func printResult(w io.Writer, result any, query string, plain bool) error {
	fields, err := toFields(result)
	if err != nil {
		return err
	}

	if query != "" {
		value, err := jsonpath.Get(query, fields)
		if err != nil {
			return fmt.Errorf("evaluating query %q: %w", query, err)
		}
		_, err = fmt.Fprintln(w, formatValue(value))
		return err
	}

	if plain {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}

	out, err := renderTable(fields, tableStyle)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

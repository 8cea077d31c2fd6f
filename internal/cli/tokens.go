package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

var tokensAll bool

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensAll, "all", false, "show dark and light side by side")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the resolved theme tokens",
	Long: `Print every semantic style token for a theme mode. Use --theme to pick
the mode, or --all to compare both.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		modes := []styles.ThemeMode{styles.DefaultMode}
		if cfg := GetConfig(); cfg != nil {
			mode, err := cfg.ThemeMode()
			if err != nil {
				return err
			}
			modes = []styles.ThemeMode{mode}
		}
		if tokensAll {
			modes = styles.Modes
		}

		headers, rows, err := tokenTable(modes)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, tokenPayload(headers, rows))
		}
		return writeTable(out, headers, rows)
	},
}

// tokenTable lays out one row per token and one column per mode.
func tokenTable(modes []styles.ThemeMode) ([]string, [][]string, error) {
	headers := []string{"TOKEN"}
	values := make([]map[styles.TokenName]string, 0, len(modes))
	for _, mode := range modes {
		tokens, err := styles.Resolve(mode)
		if err != nil {
			return nil, nil, err
		}
		headers = append(headers, strings.ToUpper(mode.String()))
		values = append(values, tokens.Map())
	}

	rows := make([][]string, 0, len(styles.RequiredTokens))
	for _, name := range styles.RequiredTokens {
		row := []string{string(name)}
		for _, set := range values {
			value, ok := set[name]
			if !ok {
				return nil, nil, fmt.Errorf("token %s missing", name)
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func tokenPayload(headers []string, rows [][]string) map[string]map[string]string {
	payload := make(map[string]map[string]string, len(headers)-1)
	for col := 1; col < len(headers); col++ {
		mode := strings.ToLower(headers[col])
		set := make(map[string]string, len(rows))
		for _, row := range rows {
			set[row[0]] = row[col]
		}
		payload[mode] = set
	}
	return payload
}

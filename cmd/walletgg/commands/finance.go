package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func financeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Inputs and results of the asset analysis, kept on this machine",
	}
	cmd.AddCommand(financeShowCmd(), financeSetCmd(), financeAnalysisCmd(), financeClearCmd())
	return cmd
}

func financeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appCtx.Finance.Profile()
			if p.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No finance profile saved.")
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
}

// parseFields turns key=value pairs into a map. Numbers and booleans keep
// their type.
func parseFields(args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("want key=value, got %q", a)
		}
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			out[k] = n
		} else if f, err := strconv.ParseFloat(v, 64); err == nil {
			out[k] = f
		} else if b, err := strconv.ParseBool(v); err == nil {
			out[k] = b
		} else {
			out[k] = v
		}
	}
	return out, nil
}

func financeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set key=value...",
		Short: "Save analysis inputs, e.g. age=31 salary=42000000",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(args)
			if err != nil {
				return err
			}
			info := appCtx.Finance.Profile().UserInfo
			if info == nil {
				info = map[string]any{}
			}
			for k, v := range fields {
				info[k] = v
			}
			return appCtx.Finance.SaveUserInfo(info)
		},
	}
}

func financeAnalysisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analysis [json]",
		Short: "Save an analysis result given as a JSON object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := json.Unmarshal([]byte(args[0]), &result); err != nil {
				return fmt.Errorf("analysis: %w", err)
			}
			return appCtx.Finance.SaveAnalysis(result)
		},
	}
}

func financeClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Finance.Clear()
		},
	}
}

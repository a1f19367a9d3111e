package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func marketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Market data and finance videos",
	}
	cmd.AddCommand(marketGoldCmd(), marketYouTubeCmd())
	return cmd
}

func marketGoldCmd() *cobra.Command {
	var last int
	cmd := &cobra.Command{
		Use:   "gold",
		Short: "Show recent gold prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Market.FetchGoldPrices(cmd.Context()); err != nil {
				return err
			}
			prices := appCtx.Market.GoldPrices()
			if last > 0 && len(prices) > last {
				prices = prices[len(prices)-last:]
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "DATE\tPRICE\tCHANGE")
			for i, p := range prices {
				change := ""
				if i > 0 {
					change = p.Price.Sub(prices[i-1].Price).StringFixed(2)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Date, p.Price.StringFixed(2), change)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&last, "last", 10, "show only the most recent N quotes (0 for all)")
	return cmd
}

func marketYouTubeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "youtube [keyword...]",
		Short: "Search finance videos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Market.SearchYouTube(cmd.Context(), strings.Join(args, " ")); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			videos := appCtx.Market.Videos()
			if len(videos) == 0 {
				fmt.Fprintln(out, "No videos.")
			}
			for _, v := range videos {
				fmt.Fprintf(out, "%s  %s (%s)\n    https://www.youtube.com/watch?v=%s\n", v.PublishedAt.Format("2006-01-02"), v.Title, v.Channel, v.ID)
			}
			return nil
		},
	}
}

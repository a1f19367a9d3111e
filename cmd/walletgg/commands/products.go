package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"walletgg/internal/domain"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the financial product catalog",
	}
	cmd.AddCommand(
		productsListCmd(), productsShowCmd(), productsImportCmd(), productsStatusCmd(),
		productsToggleCmd("like"), productsToggleCmd("join"),
		productsPersonalCmd("liked"), productsPersonalCmd("joined"),
	)
	return cmd
}

func productsListCmd() *cobra.Command {
	var (
		f   domain.ProductFilter
		typ string
		top bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Type = domain.ProductType(typ)
			if top {
				f.Sort = domain.SortTopRate
			}
			if err := appCtx.Products.FetchAll(cmd.Context(), f); err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), appCtx.Products.Products())
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "deposit, saving, annuity, mortgage, rent, credit, loan or etf")
	cmd.Flags().StringVar(&f.Bank, "bank", "", "only products of this bank")
	cmd.Flags().IntVar(&f.Term, "term", 0, "only products with this term in months")
	cmd.Flags().BoolVar(&top, "top", false, "best rate first")
	return cmd
}

func productsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a product and its rate options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Products.FetchOne(cmd.Context(), domain.ProductID(id)); err != nil {
				return err
			}
			p, _ := appCtx.Products.Product()
			printProduct(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func productsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Ask the server to refresh its catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Products.Import(cmd.Context()); err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), appCtx.Products.Products())
			return nil
		},
	}
}

func productsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Count the products the server holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := appCtx.Products.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total: %d\n", st.TotalProducts)
			for _, t := range st.ByType {
				fmt.Fprintf(out, "  %-10s %d\n", t.Type, t.Count)
			}
			return nil
		},
	}
}

func productsToggleCmd(action string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " [id]",
		Short: "Toggle " + action + " on a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			toggle := appCtx.Products.Like
			if action == "join" {
				toggle = appCtx.Products.Join
			}
			on, err := toggle(cmd.Context(), domain.ProductID(id))
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %d %s: %t\n", id, action, on)
			return nil
		},
	}
}

func productsPersonalCmd(list string) *cobra.Command {
	return &cobra.Command{
		Use:   list,
		Short: "List your " + list + " products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch, get := appCtx.Products.FetchLiked, appCtx.Products.Liked
			if list == "joined" {
				fetch, get = appCtx.Products.FetchJoined, appCtx.Products.Joined
			}
			if err := fetch(cmd.Context()); err != nil {
				return reported(err)
			}
			printProducts(cmd.OutOrStdout(), get())
			return nil
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fjod/mycogrow/storefront-service/internal/catalog"
	"github.com/fjod/mycogrow/storefront-service/internal/config"
	"github.com/fjod/mycogrow/storefront-service/internal/money"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			f := money.NewFormatter(cfg.LanguageTag())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tWEIGHT\tPRICE")
			for _, p := range catalog.Default().List() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Weight, f.Format(p.Price))
			}
			return w.Flush()
		},
	}
}

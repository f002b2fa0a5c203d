package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the reference catalogs used by the add form",
	}
	cmd.AddCommand(
		listCmd("countries", "Wine countries", func(w io.Writer, _ []string) error {
			return lines(w, domain.Countries())
		}),
		&cobra.Command{
			Use:   "regions <country>",
			Short: "Sub-regions of a wine country",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				regions := domain.SubRegions(args[0])
				if regions == nil {
					return fmt.Errorf("unknown country %q (known: %s)", args[0], strings.Join(domain.Countries(), ", "))
				}
				return lines(cmd.OutOrStdout(), regions)
			},
		},
		listCmd("varieties", "Grape varieties by wine type", func(w io.Writer, _ []string) error {
			for _, g := range domain.GrapeVarieties() {
				if _, err := fmt.Fprintf(w, "%s: %s\n", g.WineType, strings.Join(g.Varieties, ", ")); err != nil {
					return err
				}
			}
			return nil
		}),
		listCmd("wine-types", "Wine types", func(w io.Writer, _ []string) error {
			return lines(w, domain.WineTypes())
		}),
		listCmd("bottle-sizes", "Bottle sizes in milliliters", func(w io.Writer, _ []string) error {
			for _, s := range domain.BottleSizes() {
				if _, err := fmt.Fprintf(w, "%d\t%s\n", s.Milliliters, s.Label); err != nil {
					return err
				}
			}
			return nil
		}),
		listCmd("spirit-types", "Spirit types", func(w io.Writer, _ []string) error {
			return lines(w, domain.SpiritTypes())
		}),
	)
	return cmd
}

func listCmd(use, short string, run func(w io.Writer, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args)
		},
	}
}

func lines(w io.Writer, items []string) error {
	for _, s := range items {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

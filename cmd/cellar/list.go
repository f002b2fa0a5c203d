package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/internal/service/collection"
)

func newListCmd(d deps, g *globalOptions) *cobra.Command {
	var (
		criteria collection.Criteria
		facets   bool
	)
	cmd := &cobra.Command{
		Use:   "list <wines|spirits>",
		Short: "Show one page of the collection",
		Long: `List fetches the whole collection of one kind, then filters, sorts and
paginates it locally. --search matches name or producer, --region and
--variety must match exactly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			s, err := d.connect(cmd, g)
			if err != nil {
				return err
			}

			records, err := s.store.List(cmd.Context(), kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderPage(out, collection.Apply(records, criteria))
			if facets {
				renderFacets(out, records)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&criteria.Query, "search", "s", "", "substring of name or producer (case-insensitive)")
	cmd.Flags().StringVar(&criteria.Region, "region", "", "exact region")
	cmd.Flags().StringVar(&criteria.Variety, "variety", "", "exact variety (spirit type for spirits)")
	cmd.Flags().IntVarP(&criteria.Page, "page", "p", 1, "page number, clamped to the available pages")
	cmd.Flags().BoolVar(&facets, "facets", false, "also print the regions and varieties present in the collection")
	return cmd
}

func newDeleteCmd(d deps, g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wine|spirit> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}
			s, err := d.connect(cmd, g)
			if err != nil {
				return err
			}
			if err := s.store.Delete(cmd.Context(), kind, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s deleted.\n", kind.Label(), id)
			return nil
		},
	}
}

func renderPage(w io.Writer, page collection.Page[domain.Record]) {
	if page.Total == 0 {
		fmt.Fprintln(w, "No records match.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRODUCER\tREGION\tVARIETY\tYEAR\tQTY")
	for _, rec := range page.Items {
		f := rec.Facets()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			rec.RecordID(), f.Name, f.Producer, dash(f.Region), dash(f.Variety), year(f.Year), quantity(rec))
	}
	tw.Flush() //nolint:errcheck

	fmt.Fprintf(w, "\nPage %d of %d (%d records)", page.Page, page.PageCount, page.Total)
	var hints []string
	if page.HasPrev() {
		hints = append(hints, "prev: --page "+strconv.Itoa(collection.Prev(page.Page, page.PageCount)))
	}
	if page.HasNext() {
		hints = append(hints, "next: --page "+strconv.Itoa(collection.Next(page.Page, page.PageCount)))
	}
	if len(hints) > 0 {
		fmt.Fprintf(w, "  %s", strings.Join(hints, ", "))
	}
	fmt.Fprintln(w)
}

func renderFacets(w io.Writer, records []domain.Record) {
	fmt.Fprintf(w, "Regions:   %s\n", dash(strings.Join(collection.Regions(records), ", ")))
	fmt.Fprintf(w, "Varieties: %s\n", dash(strings.Join(collection.Varieties(records), ", ")))
}

func quantity(rec domain.Record) int {
	switch r := rec.(type) {
	case *domain.Wine:
		return r.Quantity
	case *domain.Spirit:
		return r.Quantity
	}
	return 0
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return strconv.Itoa(y)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

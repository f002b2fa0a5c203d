package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/internal/service/form"
	"github.com/heartmarshall/cellar-backend/internal/service/validation"
)

type assignment struct {
	field string
	value string
}

func newAddCmd(d deps, g *globalOptions) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "add <wine|spirit> --set field=value ...",
		Short: "Add a record through the add-record form",
		Long: `Add fills a fresh form draft with the given --set values, validates it
and submits it once. Fields left unset keep their defaults.`,
		Example: `  cellar add wine --set name="Chateau Margaux" --set producer="Chateau Margaux" \
    --set country=France --set region=Bordeaux --set wineType=Red \
    --set variety="Cabernet Sauvignon" --set vintage=2015`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			values, err := parseAssignments(kind, sets)
			if err != nil {
				return err
			}
			s, err := d.connect(cmd, g)
			if err != nil {
				return err
			}

			ctrl := form.NewController(s.log, kind, validation.NewEngine(d.clock), s.store, d.clock, s.cfg.NoticeTTL)
			for _, a := range values {
				ctrl.Change(a.field, a.value)
				ctrl.Blur(a.field)
			}

			rec, err := ctrl.Submit(cmd.Context())
			snap := ctrl.Snapshot()
			var verr *domain.ValidationError
			switch {
			case errors.As(err, &verr):
				fmt.Fprintln(cmd.ErrOrStderr(), snap.Summary)
				renderFieldErrors(cmd.ErrOrStderr(), kind, snap.Errors)
				return err
			case err != nil:
				if snap.Notice.Message != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), snap.Notice.Message)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), snap.Notice.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "id: %s\n", rec.RecordID())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value to set on the draft (repeatable)")
	return cmd
}

// parseAssignments splits field=value pairs and rejects fields the kind does
// not declare. Order is preserved; a later value for the same field wins.
func parseAssignments(kind domain.Kind, raw []string) ([]assignment, error) {
	schema, _ := domain.SchemaFor(kind)
	out := make([]assignment, 0, len(raw))
	for _, r := range raw {
		field, value, ok := strings.Cut(r, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --set %q (want field=value)", r)
		}
		if _, known := schema.Field(field); !known {
			return nil, fmt.Errorf("unknown %s field %q (see \"cellar fields %s\")",
				strings.ToLower(kind.Label()), field, strings.ToLower(kind.Label()))
		}
		out = append(out, assignment{field: field, value: value})
	}
	return out, nil
}

// renderFieldErrors prints errors in schema field order.
func renderFieldErrors(w io.Writer, kind domain.Kind, errs map[string]string) {
	schema, _ := domain.SchemaFor(kind)
	for _, f := range schema.Fields {
		if msg, ok := errs[f.Name]; ok {
			fmt.Fprintf(w, "  %s: %s\n", f.Name, msg)
		}
	}
}

func newFieldsCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <wine|spirit>",
		Short: "List the fields of a record kind with their defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			schema, _ := domain.SchemaFor(kind)
			draft := domain.NewDraft(kind, d.clock.Now())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tTYPE\tREQUIRED\tDEFAULT")
			for _, f := range schema.Fields {
				req := ""
				if f.Required {
					req = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Type, req, draft.Get(f.Name))
			}
			return tw.Flush()
		},
	}
}

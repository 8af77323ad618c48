package commands

import (
	"context"
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/viewstate"
)

func addList(topLevel *cobra.Command) {
	so := &SourceOptions{}
	vo := &ViewOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered and sorted roster as a table.",
		Example: `
roster list --search konoha --health healthy --sort asc
roster list --data db.json --sort desc -n 10
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := vo.Params()
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(so.ConfigPath, so.APIURL, so.DataFile)
			if err != nil {
				return err
			}
			source, err := app.NewSource(cfg)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cmd.OutOrStdout(), source, params, vo.Limit)
		},
	}

	AddSourceArgs(cmd, so)
	AddViewArgs(cmd, vo)
	topLevel.AddCommand(cmd)
}

func runList(ctx context.Context, w io.Writer, source roster.Source, params viewstate.Params, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	chars, err := source.FetchCharacters(ctx)
	if err != nil {
		return fmt.Errorf("load characters: %w", err)
	}

	view := viewstate.Derive(chars, params)
	if view.Empty() {
		msg := "No characters found matching your filters."
		if len(chars) == 0 {
			msg = "No characters loaded."
		}
		_, _ = fmt.Fprintln(w, color.New(color.Faint, color.Italic).Sprint(msg))
		return nil
	}

	rows := view.Window(0, view.Len())
	if limit > 0 {
		rows = view.Window(0, limit)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Location"), bold.Sprint("Health"), bold.Sprint("Power"))
	for _, c := range rows {
		tbl.AddRow(c.ID, c.Name, c.Location, healthColor(c.Health).Sprint(c.Health.String()), humanize.Comma(int64(c.Power)))
	}

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, color.New(color.Faint).Sprintf("Showing %s of %s characters",
		humanize.Comma(int64(len(rows))), humanize.Comma(int64(len(chars)))))
	return nil
}

func healthColor(h roster.Health) *color.Color {
	switch h {
	case roster.Healthy:
		return color.New(color.FgGreen)
	case roster.Injured:
		return color.New(color.FgYellow)
	case roster.Critical:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New()
	}
}

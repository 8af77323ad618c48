package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/viewstate"
)

// SourceOptions select where the collection is loaded from.
type SourceOptions struct {
	ConfigPath string
	DataFile   string
	APIURL     string
}

// AddSourceArgs wires the config and source override flags.
func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().StringVar(&o.ConfigPath, "config", "",
		"Path to config.toml (default ~/.config/roster/config.toml).")
	cmd.Flags().StringVar(&o.DataFile, "data", "",
		"Read characters from a db.json file instead of the API.")
	cmd.Flags().StringVar(&o.APIURL, "api", "",
		"Base URL of the characters API, e.g. http://127.0.0.1:3001.")
}

// ViewOptions mirror the TUI's view parameters.
type ViewOptions struct {
	Search string
	Health []string
	Sort   string
	Limit  int
}

// AddViewArgs wires the search, filter and sort flags.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Case-insensitive match on name or location.")
	cmd.Flags().StringSliceVar(&o.Health, "health", nil,
		"Only show these health states (Healthy, Injured, Critical). Repeatable.")
	cmd.Flags().StringVar(&o.Sort, "sort", "none",
		"Sort by power: none, asc or desc.")
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Print at most this many rows. 0 prints all.")
}

// Params converts the flags into view parameters.
func (o *ViewOptions) Params() (viewstate.Params, error) {
	p := viewstate.Params{Search: o.Search, Selected: viewstate.Selection{}}

	for _, value := range o.Health {
		h, err := roster.ParseHealth(value)
		if err != nil {
			return viewstate.Params{}, err
		}
		p.Health = p.Health.With(h)
	}

	switch strings.ToLower(strings.TrimSpace(o.Sort)) {
	case "", "none":
	case "asc", "ascending", "desc", "descending":
		p.Sort = viewstate.ParseSortDirection(o.Sort)
	default:
		return viewstate.Params{}, fmt.Errorf("unknown sort %q, want none, asc or desc", o.Sort)
	}

	if o.Limit < 0 {
		return viewstate.Params{}, fmt.Errorf("limit must not be negative")
	}
	return p, nil
}

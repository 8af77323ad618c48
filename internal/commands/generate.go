package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/roster"
)

// GenerateOptions configure the fixture generator.
type GenerateOptions struct {
	Count int
	Out   string
	Seed  uint64
}

func addGenerate(topLevel *cobra.Command) {
	o := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a db.json fixture with synthetic characters.",
		Example: `
roster generate
roster generate --count 50 --seed 7 --out -
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				o.Seed = uint64(time.Now().UnixNano())
			}
			return runGenerate(cmd.OutOrStdout(), *o)
		},
	}

	cmd.Flags().IntVar(&o.Count, "count", roster.DefaultFixtureSize,
		"Number of characters, including the five pinned ones.")
	cmd.Flags().StringVarP(&o.Out, "out", "o", "db.json",
		"Output file. Use - for stdout.")
	cmd.Flags().Uint64Var(&o.Seed, "seed", 0,
		"Random seed. The same seed always produces the same fixture.")

	topLevel.AddCommand(cmd)
}

func runGenerate(stdout io.Writer, o GenerateOptions) error {
	chars, err := roster.Generate(o.Count, o.Seed)
	if err != nil {
		return err
	}

	if o.Out == "-" {
		return writeDatabase(stdout, chars)
	}

	if dir := filepath.Dir(o.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	tmp := o.Out + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	if err := writeDatabase(file, chars); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close fixture: %w", err)
	}
	if err := os.Rename(tmp, o.Out); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename fixture: %w", err)
	}

	_, _ = fmt.Fprintf(stdout, "Wrote %d characters to %s\n", len(chars), o.Out)
	return nil
}

func writeDatabase(w io.Writer, chars []roster.Character) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(roster.Database{Characters: chars}); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/tsmodel/generator"
	"github.com/ridoystarlord/tsmodel/introspect"
	"github.com/ridoystarlord/tsmodel/loader"
	"github.com/ridoystarlord/tsmodel/schema"
	"github.com/ridoystarlord/tsmodel/utils"
)

var (
	annotationMode string
	workers        int
	dryRunGenerate bool
	schemaName     string
	loadTimeout    time.Duration
)

func init() {
	rootCmd.Flags().StringVarP(&annotationMode, "annotations", "a", "off", `Annotation mode: "on" for validated classes, "off" for interfaces (default from `+utils.EnvAnnotations+`)`)
	rootCmd.Flags().IntVarP(&workers, "workers", "w", runtime.GOMAXPROCS(0), "Number of items generated in parallel")
	rootCmd.Flags().BoolVar(&dryRunGenerate, "dry-run", false, "Preview the files that would be generated without writing them")
	rootCmd.PersistentFlags().StringVar(&schemaName, "schema-name", introspect.DefaultSchema, "Postgres schema to introspect for database inputs")
	rootCmd.PersistentFlags().DurationVarP(&loadTimeout, "timeout", "t", 30*time.Second, "Timeout for loading the input")
}

// generate loads input, compiles it and writes the files below outDir. Nothing
// is written unless compilation succeeds for every item.
func generate(cmd *cobra.Command, input, outDir string) error {
	mode := annotationMode
	if !cmd.Flags().Changed("annotations") {
		mode = utils.Getenv(utils.EnvAnnotations, mode)
	}

	items, err := loadItems(input)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	out, err := generator.Compile(items,
		generator.WithAnnotationMode(mode),
		generator.WithWorkers(workers),
	)
	if err != nil {
		return fmt.Errorf("generating models: %w", err)
	}

	w := cmd.OutOrStdout()
	if dryRunGenerate {
		fmt.Fprintln(w, "\n================ DRY RUN: Generated Files ================")
		for _, f := range out.Files() {
			fmt.Fprintf(w, "-- %s --\n%s\n", f.Name, f.Content)
		}
		fmt.Fprintln(w, "==========================================================")
		fmt.Fprintln(w, "(Dry run only. No files were written.)")
		return nil
	}

	written, err := generator.WriteFiles(outDir, out)
	if err != nil {
		return fmt.Errorf("writing models: %w", err)
	}

	for _, path := range written {
		fmt.Fprintln(w, "📄", path)
	}
	color.New(color.FgGreen).Fprintf(w, "✅ Generated %d enum(s) and %d table(s) in %s\n",
		len(out.Enum.Files), len(out.Table.Files), outDir)
	return nil
}

func loadItems(input string) ([]schema.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	return loader.Load(ctx, input, loader.Options{SchemaName: schemaName})
}

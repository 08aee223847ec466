package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/tsmodel/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Check schema references without generating files",
	Long: `Validate every enum and relation reference of a schema.

Generation stops at the first unresolved reference; validate reports all of
them, along with duplicate names and names that are not valid TypeScript
identifiers.

Examples:
  tsmodel validate schema.yaml               # Validate a schema file
  tsmodel validate schema.yaml --format json # Output validation results as JSON
  tsmodel validate db                        # Validate the DATABASE_URL schema
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		valid, err := validateSchema(cmd.OutOrStdout(), args[0])
		if err != nil {
			fmt.Printf("❌ Schema validation failed: %v\n", err)
			os.Exit(1)
		}
		if !valid {
			os.Exit(1)
		}
	},
}

var validateFormat string

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
}

func validateSchema(w io.Writer, input string) (bool, error) {
	items, err := loadItems(input)
	if err != nil {
		return false, fmt.Errorf("failed to load schema: %w", err)
	}

	result := validator.Validate(items)

	// Output results
	if validateFormat == "json" {
		return result.Valid, outputJSON(w, result)
	}
	outputText(w, result)
	return result.Valid, nil
}

func outputJSON(w io.Writer, result *validator.ValidationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(w io.Writer, result *validator.ValidationResult) {
	// Print summary
	if result.Valid {
		color.New(color.FgGreen).Fprintln(w, "✅ Schema validation passed!")
	} else {
		color.New(color.FgRed).Fprintln(w, "❌ Schema validation failed!")
	}

	printFindings(w, "🔴 Errors", result.Errors)
	printFindings(w, "🟡 Warnings", result.Warnings)

	// Print summary
	fmt.Fprintf(w, "\n📊 Summary:\n")
	fmt.Fprintf(w, "  • Errors: %d\n", len(result.Errors))
	fmt.Fprintf(w, "  • Warnings: %d\n", len(result.Warnings))

	if result.Valid {
		fmt.Fprintf(w, "\n🎉 Your schema is ready for model generation!\n")
	} else {
		fmt.Fprintf(w, "\n💡 Fix the errors above before generating models.\n")
	}
}

func printFindings(w io.Writer, title string, findings []validator.ValidationError) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d):\n", title, len(findings))
	for i, f := range findings {
		fmt.Fprintf(w, "  %d. ", i+1)
		switch {
		case f.Table != "":
			fmt.Fprintf(w, "[%s]", f.Table)
		case f.Enum != "":
			fmt.Fprintf(w, "[enum %s]", f.Enum)
		}
		if f.Column != "" {
			fmt.Fprintf(w, ".%s", f.Column)
		}
		fmt.Fprintf(w, ": %s\n", f.Message)
	}
}

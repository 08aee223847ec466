package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/tsmodel/utils"
)

var rootCmd = &cobra.Command{
	Use:   "tsmodel <input> <output-folder>",
	Short: "Generate TypeScript models from a relational schema",
	Long: `tsmodel compiles tables and enums into TypeScript model files.

The input is a YAML schema file, an http(s) URL serving one, a postgres:// URL,
or "db" to introspect the database named by DATABASE_URL.

Tables are written to <output-folder>/ts-model/table, enums to
<output-folder>/ts-model/enum.

Examples:

  tsmodel schema.yaml ./src
  tsmodel --annotations on schema.yaml ./src
  tsmodel https://example.com/schema.yaml ./src
  tsmodel postgres://localhost:5432/app ./src
  tsmodel validate schema.yaml
`,
	Args: cobra.ExactArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadEnv()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := generate(cmd, args[0], args[1]); err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(validateCmd)
}

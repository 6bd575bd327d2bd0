package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/infrastructure/config"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [record|config]",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of a stored tab group record (default) or of the config file.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"record", "config"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, args []string) error {
	kind := "record"
	if len(args) == 1 {
		kind = args[0]
	}

	var (
		data []byte
		err  error
	)
	switch kind {
	case "record":
		data, err = recordSchema()
	case "config":
		data, err = config.GenerateSchema()
	default:
		return fmt.Errorf("unknown schema %q (use: record, config)", kind)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

func recordSchema() ([]byte, error) {
	schema := new(jsonschema.Reflector).Reflect(&persistence.Record{})
	schema.Title = "tabstash tab group record"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record schema: %w", err)
	}
	return data, nil
}

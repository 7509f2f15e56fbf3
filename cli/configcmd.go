package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

// configSchemaCmd prints the JSON Schema of the config file so editors can
// validate it.
var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// configShowCmd prints the effective settings after file and environment
// resolution.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(flagConfig)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "model:         %s\n", cfg.Model)
		fmt.Fprintf(out, "persona:       %s\n", cfg.Persona)
		fmt.Fprintf(out, "persona_file:  %s\n", cfg.PersonaFile)
		fmt.Fprintf(out, "system_prompt: %s\n", cfg.SystemPrompt)
		fmt.Fprintf(out, "timeout:       %s\n", cfg.Timeout.Duration)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSchemaCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

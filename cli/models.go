package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/model"
)

// modelsCmd lists the model family aliases the --model flag accepts.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known model aliases",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Model aliases (full ids are also accepted):")
		for _, line := range model.Known() {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+line)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nDefault: "+model.Default)
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

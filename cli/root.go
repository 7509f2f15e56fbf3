// Package cli wires the cobra commands and runs the interactive chat loop.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/chat"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/config"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/model"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"

	// Register the gemini backend with the provider registry.
	_ "github.com/LILHARSHNIK999/chatbot-google-Gemini/gemini"
)

var (
	flagModel       string
	flagPersona     string
	flagConfig      string
	flagWatchConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "gemini-chatbot",
	Short: "Interactive chat with the Google Gemini API",
	Long: `gemini-chatbot starts an interactive conversation with a Gemini model.

Type a message and press enter to send it. Special inputs:
  exit, quit, bye   end the conversation
  clear             start a new conversation

The API key is read from GEMINI_API_KEY, a .env file, or an interactive
prompt at startup.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the TOML config file")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "model id or family alias (flash, pro, lite)")
	rootCmd.Flags().StringVar(&flagPersona, "persona", "", "named system prompt preset from the persona file")
	rootCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "reload the config file on change and switch models mid-session")
}

// runChat resolves configuration and credential, builds the session, and
// hands control to the loop. Every error returned from here is an
// initialization failure; send failures inside the loop never propagate.
func runChat(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return err
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagPersona != "" {
		cfg.Persona = flagPersona
	}

	systemPrompt, err := cfg.ResolveSystemPrompt()
	if err != nil {
		return err
	}

	key, err := config.ResolveAPIKey(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := config.ValidateAPIKey(key); err != nil {
		return err
	}

	client, err := provider.New("gemini", provider.Config{
		APIKey:       key,
		Model:        model.Resolve(cfg.Model),
		SystemPrompt: systemPrompt,
		Timeout:      cfg.Timeout.Duration,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	session := chat.NewSession(client,
		chat.WithModel(model.Resolve(cfg.Model)),
		chat.WithSystemPrompt(systemPrompt),
	)

	var updates <-chan config.Config
	if flagWatchConfig {
		ch, stop, err := config.Watch(flagConfig)
		if err != nil {
			return err
		}
		defer stop()
		updates = ch
	}

	loop := &Loop{
		Session: session,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Updates: updates,
	}
	return loop.Run(cmd.Context())
}

// Execute runs the root command. It exits non-zero only on initialization
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

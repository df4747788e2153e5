package cmd

import (
	"github.com/charmbracelet/huh"
	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/prepqhq/prepq-cli/client"
	"github.com/prepqhq/prepq-cli/config"
	"github.com/prepqhq/prepq-cli/display"
	"github.com/prepqhq/prepq-cli/theme"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Point prepq at your questions service",
	Long:  `Login stores the questions service address and access token in the prepq config.`,
	Run:   runLoginCmd,
}

func runLoginCmd(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	cfg, err := config.LoadFromFile()
	if err != nil {
		cfg = &config.Config{}
	}

	if loginAPIHost == "" && loginToken == "" {
		apiHostInput := huh.NewInput().
			Title("Questions service address").
			Description("e.g. https://questions.example.com").
			Prompt("> ").
			Value(&cfg.APIHost)

		tokenInput := huh.NewInput().
			Title("Access token").
			Description("Leave empty if your service has no auth").
			Prompt("🔑 ").
			Password(true).
			Value(&cfg.Token)

		form := huh.NewForm(huh.NewGroup(apiHostInput, tokenInput)).WithTheme(theme.New())
		if err := form.Run(); err != nil {
			display.FatalErr(err)
			return
		}
	} else {
		if loginAPIHost != "" {
			cfg.APIHost = loginAPIHost
		}
		if loginToken != "" {
			cfg.Token = loginToken
		}
	}

	if cfg.APIHost == "" {
		display.ErrorMsg("No service address provided")
		return
	}

	if err := cfg.Save(); err != nil {
		display.FatalErr(err)
		return
	}

	// verify the config before declaring victory
	if err := huhSpinner.New().Title("Checking the connection...").Action(func() {
		cl, err := client.New()
		if err != nil {
			display.FatalErr(err)
			return
		}
		if _, err := cl.Questions(ctx); err != nil {
			display.FatalErr(err, "Config saved, but the service did not answer. Check the address and token.")
			return
		}
	}).Run(); err != nil {
		display.FatalErr(err)
		return
	}

	display.Success("You're all set: prepq is talking to " + cfg.APIHost)
}

var (
	loginAPIHost string
	loginToken   string
)

func init() {
	loginCmd.Flags().StringVar(&loginAPIHost, "api-host", "", "Questions service address")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Access token")
	rootCmd.AddCommand(loginCmd)
}

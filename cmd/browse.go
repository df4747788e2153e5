package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/prepqhq/prepq-cli/cmd/component/browse"
	"github.com/prepqhq/prepq-cli/display"
	"github.com/prepqhq/prepq-cli/render"
	"github.com/prepqhq/prepq-cli/store"
	"github.com/prepqhq/prepq-cli/suggest"
	"github.com/prepqhq/prepq-cli/workflow"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse, expand, add, edit and delete questions interactively",
	Long: `
  Browse opens the interactive question list.

  Press enter to expand an answer, a to add, e to edit, x to delete
  (with confirmation), y to copy an answer and / to filter.
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "browse")

		st := store.New(newClient(ctx))
		ctl := workflow.New(st)

		index, err := suggest.LoadIndex()
		if err != nil {
			logger.Debug("failed to load tag index, using the built-in one", "error", err)
			index = suggest.DefaultIndex
		}

		renderer, err := render.NewTerminal()
		if err != nil {
			display.FatalErr(err)
			return
		}

		var loadErr error
		if err := huhSpinner.New().Title("Fetching your questions...").Action(func() {
			loadErr = st.LoadAll(ctx)
		}).Run(); err != nil {
			display.FatalErr(err)
			return
		}
		if loadErr != nil {
			display.FatalErr(loadErr, "Could not reach the questions service.")
			return
		}

		m := browse.New(ctl, renderer, index)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			display.FatalErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

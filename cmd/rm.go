package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/prepqhq/prepq-cli/display"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/render"
	"github.com/prepqhq/prepq-cli/store"
	"github.com/prepqhq/prepq-cli/theme"
	"github.com/prepqhq/prepq-cli/workflow"
	"github.com/spf13/cobra"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:     "rm [questionID]",
	Short:   "Delete a question",
	Example: "prepq rm 42",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("missing: questionID")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		id := model.ID(args[0])

		st := store.New(newClient(ctx))
		ctl := workflow.New(st)

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

		q, ok := st.Get(id)
		if !ok {
			display.ErrorMsg(fmt.Sprintf("No question with id %s", id))
			return
		}

		deleted, err := ctl.Delete(ctx, id, func() bool {
			var confirmed bool
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", render.Title(q))).
				Affirmative("Delete").
				Negative("Keep it").
				Value(&confirmed)
			if err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(theme.New()).Run(); err != nil {
				return false
			}
			return confirmed
		})
		if err != nil {
			display.Error(err, "The question was not deleted.")
			return
		}
		if !deleted {
			display.Info("Nothing deleted")
			return
		}

		display.Success("Deleted: " + render.Title(q))
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

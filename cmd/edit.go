package cmd

import (
	"fmt"

	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/prepqhq/prepq-cli/cmd/component/qform"
	"github.com/prepqhq/prepq-cli/display"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/render"
	"github.com/prepqhq/prepq-cli/store"
	"github.com/prepqhq/prepq-cli/suggest"
	"github.com/prepqhq/prepq-cli/workflow"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [questionID]",
	Short:   "Edit an existing question",
	Example: "prepq edit 42",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("missing: questionID")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "edit")

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

		index, err := suggest.LoadIndex()
		if err != nil {
			logger.Debug("failed to load tag index, using the built-in one", "error", err)
			index = suggest.DefaultIndex
		}

		form, err := qform.Run(qform.NewEdit("edit", index, q))
		if err != nil {
			display.FatalErr(err)
			return
		}
		if form.Aborted() {
			display.Info("Nothing changed")
			return
		}

		var updateErr error
		if err := huhSpinner.New().Title("Saving your changes...").Action(func() {
			_, updateErr = ctl.Update(ctx, id, form.Draft())
		}).Run(); err != nil {
			display.FatalErr(err)
			return
		}
		if updateErr != nil {
			display.Error(updateErr, "Your changes were not saved. Try again.")
			return
		}

		display.Success("Updated: " + render.Title(q))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

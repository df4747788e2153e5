package cmd

import (
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

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a question to your collection",
	Example: `
  prepq add
  prepq add --title "What does SELECT FOR UPDATE do?" --tags "sql, databases"
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "add")

		var draft model.Draft
		if addTitle != "" || addAnswer != "" || addTags != "" {
			draft = model.Draft{
				Title:  addTitle,
				Answer: addAnswer,
				Tags:   suggest.ParseTags(addTags),
			}
		} else {
			index, err := suggest.LoadIndex()
			if err != nil {
				logger.Debug("failed to load tag index, using the built-in one", "error", err)
				index = suggest.DefaultIndex
			}

			form, err := qform.Run(qform.New("create", index))
			if err != nil {
				display.FatalErr(err)
				return
			}
			if form.Aborted() {
				display.Info("Nothing added")
				return
			}
			draft = form.Draft()
		}

		ctl := workflow.New(store.New(newClient(ctx)))

		var created *model.Question
		var createErr error
		if err := huhSpinner.New().Title("Saving your question...").Action(func() {
			created, createErr = ctl.Create(ctx, draft)
		}).Run(); err != nil {
			display.FatalErr(err)
			return
		}
		if createErr != nil {
			display.Error(createErr, "Your question was not saved. Try again.")
			return
		}

		display.Success("Added: " + render.Title(*created))
	},
}

var (
	addTitle  string
	addAnswer string
	addTags   string
)

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Question title")
	addCmd.Flags().StringVar(&addAnswer, "answer", "", "Answer body")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma separated tags")
	rootCmd.AddCommand(addCmd)
}

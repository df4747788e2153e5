package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/prepqhq/prepq-cli/display"
	"github.com/prepqhq/prepq-cli/render"
	"github.com/prepqhq/prepq-cli/store"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your questions",
	Long:  `List prints your questions in collection order. Use --json for scripting.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		st := store.New(newClient(ctx))

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

		questions := st.List()

		if listJSON {
			if err := json.NewEncoder(os.Stdout).Encode(questions); err != nil {
				display.FatalErr(err)
			}
			return
		}

		if len(questions) == 0 {
			display.Info("No questions yet. Run `prepq add` to create one.")
			return
		}

		renderer, err := render.NewTerminal()
		if err != nil {
			display.FatalErr(err)
			return
		}

		for i, q := range questions {
			fmt.Printf("%3d. %s  %s\n", i+1, render.Title(q), renderer.Chips(q))
			fmt.Printf("     id: %s\n", q.ID)
		}
	},
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print questions as JSON")
	rootCmd.AddCommand(listCmd)
}

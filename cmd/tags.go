package cmd

import (
	"fmt"
	"os"

	"github.com/prepqhq/prepq-cli/display"
	"github.com/prepqhq/prepq-cli/suggest"
	"github.com/spf13/cobra"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the tag vocabulary used for suggestions",
	Long: `
  Tags prints the vocabulary the suggestion box draws from.

  Drop a tags.yaml with a top-level "tags:" list into the config dir to
  replace the built-in vocabulary. Questions may still carry any tag.
  `,
	Run: func(cmd *cobra.Command, args []string) {
		index, err := suggest.LoadIndex()
		if err != nil {
			display.FatalErr(err)
			return
		}

		if _, err := os.Stat(suggest.IndexFilePath()); err == nil {
			display.Info("From " + suggest.IndexFilePath())
		} else {
			display.Info("Built-in vocabulary (no tags.yaml found)")
		}

		for _, tag := range index {
			fmt.Println(tag)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

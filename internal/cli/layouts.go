package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Stilmant/ChronoClean-sub001/internal/sorter"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the supported folder structures",
	Long: `List the folder structure tags accepted by --layout and the
sorting.folder_structure config setting. Unknown tags fall back to YYYY/MM
with a warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return outputJSON(sorter.Tags())
		}

		sample := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		PrintInfo("Supported folder structures:")
		items := make([]string, 0, len(sorter.Tags()))
		for _, tag := range sorter.Tags() {
			templater, _ := sorter.NewTemplater("", tag)
			items = append(items, fmt.Sprintf("%-10s  e.g. %s",
				tag, templater.RelativeDestination(sample, "IMG_0042.jpg")))
		}
		PrintList(items, 1)
		return nil
	},
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stilmant/ChronoClean-sub001/internal/engine"
)

var (
	planDest   string
	planLayout string
	planRename bool
	planDupes  bool
	planLimit  int
)

var planCmd = &cobra.Command{
	Use:   "plan [source]",
	Short: "Compute destinations and flag conflicts",
	Long: `Build a sorting plan for a source tree: compute the date-based destination
of every file, flag destination conflicts, and optionally group duplicates.

The plan is advisory. Nothing is moved, copied, or deleted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}

		source := cfg.Paths.Source
		if len(args) > 0 {
			source = args[0]
		}
		if source == "" {
			return fmt.Errorf("no source directory given (argument or paths.source in config)")
		}

		ctx := context.Background()
		result, err := eng.BuildPlan(ctx, &engine.PlanRequest{
			ScanRequest: engine.ScanRequest{
				Source: source,
				Limit:  planLimit,
			},
			Destination:     planDest,
			Layout:          planLayout,
			Rename:          planRename || cfg.Renaming.Enabled,
			CheckDuplicates: planDupes,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printPlan(result)
		return nil
	},
}

func printPlan(result *engine.PlanResult) {
	PrintSection(fmt.Sprintf("Plan: %s → %s (%s)", result.SourceRoot, result.DestinationRoot, result.Layout))

	for _, d := range result.Diagnostics {
		PrintWarning(d.Message)
	}

	if len(result.Entries) == 0 {
		PrintEmptyState("No media files found")
		return
	}

	rows := make([][]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		rows = append(rows, []string{
			entry.Source,
			entry.RelativeDestination,
			string(entry.DateSource),
		})
	}
	PrintTable([]string{"FILE", "DESTINATION", "DATE FROM"}, rows)
	fmt.Println()

	if result.HasConflicts() {
		PrintError(PrintCount(len(result.Conflicts), "destination conflict", "destination conflicts"))
		for _, c := range result.Conflicts {
			PrintWarning(fmt.Sprintf("%s and %s both map to %s", c.Source, c.Existing, c.Destination))
		}
		fmt.Println()
	}

	if len(result.DuplicateGroups) > 0 {
		PrintInfo(fmt.Sprintf("%s of byte-identical files:",
			PrintCount(len(result.DuplicateGroups), "group", "groups")))
		for _, g := range result.DuplicateGroups {
			items := append([]string{g.Original + " (original)"}, g.Duplicates...)
			PrintList(items, 1)
		}
		fmt.Println()
	}
	for _, failure := range result.HashFailures {
		PrintWarning(fmt.Sprintf("could not hash %s: %v", failure.Path, failure.Err))
	}
	for _, scanErr := range result.ScanErrors {
		PrintWarning(fmt.Sprintf("%s: %s", scanErr.Path, scanErr.Message))
	}

	PrintLabelValue("Planned", PrintCount(len(result.Entries), "file", "files"))
	PrintLabelValue("Conflicts", fmt.Sprintf("%d", len(result.Conflicts)))
	if result.HasConflicts() {
		PrintInfo("Resolve conflicts before moving files; later sources would overwrite earlier ones.")
	} else {
		PrintSuccess("No destination conflicts")
	}
}

func init() {
	planCmd.Flags().StringVar(&planDest, "dest", "", "Destination root (default: paths.destination in config)")
	planCmd.Flags().StringVar(&planLayout, "layout", "", "Folder structure: YYYY, YYYY/MM, or YYYY/MM/DD")
	planCmd.Flags().BoolVar(&planRename, "rename", false, "Generate destination filenames from the rename pattern")
	planCmd.Flags().BoolVar(&planDupes, "dupes", false, "Hash file contents and group duplicates")
	planCmd.Flags().IntVar(&planLimit, "limit", 0, "Stop after collecting this many files (0 = no limit)")
}

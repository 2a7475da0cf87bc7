package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stilmant/ChronoClean-sub001/internal/engine"
)

var (
	exportDest   string
	exportLayout string
	exportRename bool
	exportDupes  bool
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [source]",
	Short: "Export a sorting plan as JSON or CSV",
	Long: `Build a sorting plan and write it to a report file.

The report lists every planned destination along with conflicts, duplicate
groups, and warnings, so the plan can be reviewed or fed to other tools.`,
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

		format := exportFormat
		if format == "" {
			format = cfg.Export.DefaultFormat
		}
		output := exportOutput
		if output == "" {
			output = cfg.Export.OutputPath
		}

		ctx := context.Background()
		path, result, err := eng.Export(ctx, &engine.ExportRequest{
			PlanRequest: engine.PlanRequest{
				ScanRequest: engine.ScanRequest{
					Source: source,
				},
				Destination:     exportDest,
				Layout:          exportLayout,
				Rename:          exportRename || cfg.Renaming.Enabled,
				CheckDuplicates: exportDupes,
			},
			Format:     format,
			OutputPath: output,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]interface{}{
				"report":    path,
				"files":     len(result.Entries),
				"conflicts": len(result.Conflicts),
			})
		}

		for _, d := range result.Diagnostics {
			PrintWarning(d.Message)
		}
		if result.HasConflicts() {
			PrintWarning(PrintCount(len(result.Conflicts), "destination conflict", "destination conflicts"))
		}
		PrintSuccess(fmt.Sprintf("Report for %s written to %s",
			PrintCount(len(result.Entries), "file", "files"), path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDest, "dest", "", "Destination root (default: paths.destination in config)")
	exportCmd.Flags().StringVar(&exportLayout, "layout", "", "Folder structure: YYYY, YYYY/MM, or YYYY/MM/DD")
	exportCmd.Flags().BoolVar(&exportRename, "rename", false, "Generate destination filenames from the rename pattern")
	exportCmd.Flags().BoolVar(&exportDupes, "dupes", false, "Hash file contents and group duplicates")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Report format: json or csv (default: export.default_format)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Report path (default: generated under the export directory)")
}

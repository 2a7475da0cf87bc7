package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stilmant/ChronoClean-sub001/internal/engine"
)

var scanLimit int

var scanCmd = &cobra.Command{
	Use:   "scan [source]",
	Short: "Scan a source tree and infer dates",
	Long: `Discover photo and video files under a source directory and infer a date
for each from its filename, folder path, or modification time.

No files are moved or modified; scanning is read-only.`,
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
		result, err := eng.Scan(ctx, &engine.ScanRequest{
			Source: source,
			Limit:  scanLimit,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(fmt.Sprintf("Scan of %s", result.Root))

		if len(result.Records) == 0 {
			PrintEmptyState("No media files found")
			return nil
		}

		rows := make([][]string, 0, len(result.Records))
		for _, rec := range result.Records {
			rows = append(rows, []string{
				rec.SourcePath,
				string(rec.Type),
				rec.Date.Format("2006-01-02"),
				string(rec.DateSource),
			})
		}
		PrintTable([]string{"FILE", "TYPE", "DATE", "DATE FROM"}, rows)

		fmt.Println()
		PrintLabelValue("Found", PrintCount(len(result.Records), "file", "files"))
		PrintLabelValue("Skipped", fmt.Sprintf("%d", result.Skipped))
		for _, scanErr := range result.Errors {
			PrintWarning(fmt.Sprintf("%s: %s", scanErr.Path, scanErr.Message))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "Stop after collecting this many files (0 = no limit)")
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"plotsummary/collections"
	"plotsummary/handlers"
	"plotsummary/services"
)

// newExportSummaryCommand writes a project's plot summary spreadsheet to disk,
// reading the project either from the database or from a JSON snapshot file.
func newExportSummaryCommand(app *pocketbase.PocketBase, cf services.CurrencyFormatter, defaultOutDir string) *cobra.Command {
	var projectID, snapshotPath, outDir string

	cmd := &cobra.Command{
		Use:   "export-summary",
		Short: "Export a project's plot summary as an xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (projectID == "") == (snapshotPath == "") {
				return errors.New("exactly one of --project or --snapshot is required")
			}

			var snap services.Snapshot
			var err error
			if snapshotPath != "" {
				snap, err = readSnapshot(snapshotPath)
			} else {
				collections.Setup(app)
				snap, err = handlers.LoadSnapshot(app, projectID)
			}
			if err != nil {
				return err
			}

			saver := services.DiskSaver{Dir: outDir}
			if err := services.ExportSnapshot(cmd.Context(), snap, cf, saver); err != nil {
				return err
			}

			path := filepath.Join(outDir, services.SummaryFilename(snap.Project.Contract))
			log.WithField("project", snap.Project.ID).Infof("summary exported to %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "id of the project to export")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to a JSON project snapshot to export instead of the database")
	cmd.Flags().StringVar(&outDir, "out", defaultOutDir, "directory the xlsx file is written to")

	return cmd
}

func readSnapshot(path string) (services.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap services.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return services.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportUpload bool

// exportCmd writes the full catalog to a csv file.
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full catalog to a csv file",
	Long: `Export every record to a delimited file (columns: name, price, quantity, date).

The output layout matches the import layout, so an exported file can be
re-imported without changes. With --upload the file is also pushed to the
configured object-storage bucket for offsite backup.

Examples:
  inventory-manager export backup.csv
  inventory-manager export --upload`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false,
		"also upload the export to the configured storage bucket")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	target := app.cfg.Catalog.BackupFile
	if len(args) == 1 {
		target = args[0]
	}

	count, err := app.service.ExportFile(ctx, target)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Exported %d record(s) to %s\n", count, target)

	if !exportUpload {
		return nil
	}

	client, err := storage.NewClient(app.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, app.cfg.Storage.Bucket, app.cfg.Storage.Region); err != nil {
		return err
	}

	f, err := os.Open(target)
	if err != nil {
		return fmt.Errorf("reopening export for upload: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stating export file: %w", err)
	}

	// Timestamped object names keep successive backups side by side.
	object := fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102T150405Z"), filepath.Base(target))
	info, err := client.PutObject(ctx, app.cfg.Storage.Bucket, object, f, stat.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("uploading backup: %w", err)
	}

	app.logger.Info("backup uploaded",
		zap.String("bucket", info.Bucket),
		zap.String("object", info.Key),
		zap.Int64("size", info.Size),
	)
	fmt.Printf("Uploaded backup to %s/%s\n", info.Bucket, info.Key)
	return nil
}

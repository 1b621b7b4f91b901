package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/2getpro/installer/pkg/audit"
	"github.com/2getpro/installer/pkg/backup"
)

func newBackupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "Manage environment file backups",
	}
	cmd.AddCommand(newBackupsCreateCmd())
	cmd.AddCommand(newBackupsListCmd())
	cmd.AddCommand(newBackupsRestoreCmd())
	cmd.AddCommand(newBackupsPruneCmd())
	return cmd
}

func newBackupsCreateCmd() *cobra.Command {
	var source string
	var offsite bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Snapshot the environment file into the backups directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			logger := newCommandLogger(cfg)
			recorder := audit.NewRecorder(cfg.Paths.AuditLog)
			if source == "" {
				source = cfg.Paths.EnvFile
			}

			manager, err := backup.NewManager(cfg.Paths.BackupsDir, logger)
			if err != nil {
				return err
			}

			meta, err := manager.Snapshot(source)
			if err != nil {
				_ = recorder.Failure("backup", source, err)
				return err
			}
			_ = recorder.Success("backup", source, map[string]string{"file": meta.File})
			printSuccess("snapshot %s created", meta.File)

			if offsite || cfg.Backup.S3.Enabled {
				if cfg.Backup.S3.Bucket == "" {
					return fmt.Errorf("offsite upload requested but no S3 bucket configured")
				}
				uploader, err := backup.NewUploader(cmd.Context(),
					cfg.Backup.S3.Bucket, cfg.Backup.S3.Region, cfg.Backup.S3.Prefix, logger)
				if err != nil {
					return err
				}
				if err := uploader.Upload(cmd.Context(), manager, *meta); err != nil {
					_ = recorder.Failure("offsite", meta.File, err)
					return err
				}
				_ = recorder.Success("offsite", meta.File, nil)
				printSuccess("snapshot uploaded to s3://%s", cfg.Backup.S3.Bucket)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "file to snapshot (default: configured env file)")
	cmd.Flags().BoolVar(&offsite, "offsite", false, "also upload to the configured S3 bucket")
	return cmd
}

func newBackupsListCmd() *cobra.Command {
	var source string
	var maxAgeDays int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			manager, err := backup.NewManager(cfg.Paths.BackupsDir, newCommandLogger(cfg))
			if err != nil {
				return err
			}
			metas, err := manager.List(backup.Filter{
				Source: source,
				MaxAge: time.Duration(maxAgeDays) * 24 * time.Hour,
			})
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				fmt.Println("No snapshots found")
				return nil
			}

			rows := [][]string{{"ID", "FILE", "CREATED", "SIZE"}}
			for _, m := range metas {
				id := m.ID
				if len(id) > 8 {
					id = id[:8]
				}
				rows = append(rows, []string{
					id,
					m.File,
					m.CreatedAt.Format(time.RFC3339),
					fmt.Sprintf("%d B", m.SizeBytes),
				})
			}
			headerStyle := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
			if err := pterm.DefaultTable.WithHasHeader(true).WithHeaderStyle(headerStyle).WithData(rows).Render(); err != nil {
				return err
			}

			stats, err := manager.Stats()
			if err != nil {
				return err
			}
			printInfo("%d snapshot(s) stored, %d B total", stats.Count, stats.TotalBytes)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "only snapshots taken from this path")
	cmd.Flags().IntVar(&maxAgeDays, "max-age-days", 0, "only snapshots younger than this many days")
	return cmd
}

func newBackupsRestoreCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Copy a snapshot back over the environment file",
		Long: `restore resolves a snapshot by its ID (or unique ID prefix, as shown
by list), verifies it against its recorded size, and copies it back over
the file it was taken from, or over --target.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			recorder := audit.NewRecorder(cfg.Paths.AuditLog)

			manager, err := backup.NewManager(cfg.Paths.BackupsDir, newCommandLogger(cfg))
			if err != nil {
				return err
			}

			meta, err := manager.Find(args[0])
			if err != nil {
				return err
			}

			dst := target
			if dst == "" {
				dst = meta.Source
			}
			if err := manager.Restore(*meta, target); err != nil {
				_ = recorder.Failure("restore", dst, err)
				printError("restore failed: %v", err)
				return err
			}
			_ = recorder.Success("restore", dst, map[string]string{"file": meta.File})
			printSuccess("snapshot %s restored to %s", meta.File, dst)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "restore destination (default: the snapshot's original source)")
	return cmd
}

func newBackupsPruneCmd() *cobra.Command {
	var keepLast int
	var maxAgeDays int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Apply the retention policy to stored snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			logger := newCommandLogger(cfg)
			recorder := audit.NewRecorder(cfg.Paths.AuditLog)

			if keepLast == 0 {
				keepLast = cfg.Backup.KeepLast
			}
			if maxAgeDays == 0 {
				maxAgeDays = cfg.Backup.MaxAgeDays
			}

			manager, err := backup.NewManager(cfg.Paths.BackupsDir, logger)
			if err != nil {
				return err
			}

			policy := backup.Policy{
				KeepLast: keepLast,
				MaxAge:   time.Duration(maxAgeDays) * 24 * time.Hour,
			}
			deleted, err := policy.Apply(manager)
			if err != nil {
				_ = recorder.Failure("prune", cfg.Paths.BackupsDir, err)
				return err
			}
			_ = recorder.Success("prune", cfg.Paths.BackupsDir, map[string]string{
				"deleted": fmt.Sprintf("%d", deleted),
			})
			printSuccess("%d snapshot(s) pruned", deleted)
			return nil
		},
	}

	cmd.Flags().IntVar(&keepLast, "keep-last", 0, "always keep the newest N snapshots")
	cmd.Flags().IntVar(&maxAgeDays, "max-age-days", 0, "remove snapshots older than this many days")
	return cmd
}

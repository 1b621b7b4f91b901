package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/2getpro/installer/pkg/audit"
	"github.com/2getpro/installer/pkg/collect"
	"github.com/2getpro/installer/pkg/envfile"
)

func newSetupCmd() *cobra.Command {
	var outPath string
	var maxAttempts int

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Collect configuration interactively and write the environment file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.Paths.EnvFile
			}
			if maxAttempts == 0 {
				maxAttempts = cfg.Collector.MaxAttempts
			}
			recorder := audit.NewRecorder(cfg.Paths.AuditLog)

			printInfo("2GETPRO v2 configuration — answers are validated as you go")
			collector := collect.New(collect.NewConsolePrompter(),
				collect.WithMaxAttempts(maxAttempts))
			cm, err := collector.Run(collect.InstallFields())
			if err != nil {
				return err
			}

			return writeEnvironment(cm, outPath, recorder)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "environment file path (default from installer config)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "per-field retry ceiling, 0 for unbounded")
	return cmd
}

// writeEnvironment renders and writes the document, records the audit
// trail, and reports the outcome. Shared by setup and render.
func writeEnvironment(cm envfile.ConfigMap, outPath string, recorder *audit.Recorder) error {
	doc, err := envfile.NewRenderer(nil).Render(cm)
	if err != nil {
		_ = recorder.Failure("render", outPath, err)
		printError("rendering failed: %v", err)
		return err
	}

	res, err := envfile.Write(doc, outPath)
	if err != nil {
		_ = recorder.Failure("write", outPath, err)
		printError("writing failed: %v", err)
		return err
	}

	keys := 0
	for _, g := range doc.Groups {
		keys += len(g.Lines)
	}
	_ = recorder.Success("write", outPath, map[string]string{
		"keys":   strconv.Itoa(keys),
		"backup": res.BackupPath,
	})

	if res.BackupPath != "" {
		printInfo("previous file preserved at %s", res.BackupPath)
	}
	if res.PermWarning != nil {
		printWarning("%v — the file contains secrets, tighten permissions manually", res.PermWarning)
	}
	printSuccess("environment written to %s (%d keys)", outPath, keys)
	return nil
}

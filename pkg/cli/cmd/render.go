package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/2getpro/installer/pkg/audit"
	"github.com/2getpro/installer/pkg/collect"
	"github.com/2getpro/installer/pkg/envfile"
)

func newRenderCmd() *cobra.Command {
	var answersPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the environment file from an answers file, no prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.Paths.EnvFile
			}
			if answersPath == "" {
				return fmt.Errorf("must provide --answers")
			}

			cm, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			if err := validateAnswers(cm); err != nil {
				printError("%v", err)
				return err
			}

			return writeEnvironment(cm, outPath, audit.NewRecorder(cfg.Paths.AuditLog))
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "YAML file of KEY: value answers")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "environment file path (default from installer config)")
	return cmd
}

// loadAnswers reads a flat YAML mapping into a ConfigMap, trimming each
// value the way the interactive collector would.
func loadAnswers(path string) (envfile.ConfigMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	cm := envfile.NewConfigMap()
	for k, v := range raw {
		cm.Set(k, strings.TrimSpace(v))
	}
	return cm, nil
}

// validateAnswers applies the same format rules the interactive
// collector enforces, so a bad answers file is rejected before any file
// is touched.
func validateAnswers(cm envfile.ConfigMap) error {
	var walk func(fields []collect.Field) error
	walk = func(fields []collect.Field) error {
		for _, f := range fields {
			if value, ok := cm.Get(f.Key); ok {
				if value == "" {
					if !f.Optional && f.Default == "" && f.Kind != collect.Toggle {
						return fmt.Errorf("empty value for %s", f.Key)
					}
				} else if !collect.Valid(f, value) {
					hint := f.Hint
					if hint == "" {
						hint = "single-line value"
					}
					return fmt.Errorf("invalid value for %s: %s", f.Key, hint)
				}
			}
			if err := walk(f.Sub); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(collect.InstallFields())
}

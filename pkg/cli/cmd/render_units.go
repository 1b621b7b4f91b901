package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/2getpro/installer/pkg/template"
)

func newRenderUnitsCmd() *cobra.Command {
	var envPath string
	var templatesDir string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "render-units",
		Short: "Fill compose and service-unit templates from the environment file",
		Long: `render-units reads the rendered environment file and substitutes its
values into every *.tmpl file in the templates directory. Filled files
are written to the output directory with the .tmpl suffix dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			if envPath == "" {
				envPath = cfg.Paths.EnvFile
			}
			if templatesDir == "" {
				templatesDir = cfg.Paths.TemplatesDir
			}
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}

			values, err := godotenv.Read(envPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", envPath, err)
			}

			paths, err := templateFiles(templatesDir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				printWarning("no *.tmpl files in %s", templatesDir)
				return nil
			}

			renderer := template.NewRenderer(values)
			for _, path := range paths {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				filled, err := renderer.RenderString(string(raw))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				outName := strings.TrimSuffix(filepath.Base(path), ".tmpl")
				outPath := filepath.Join(outputDir, outName)
				// Filled units can embed credentials from the
				// environment file, so they get the same permissions.
				if err := os.WriteFile(outPath, []byte(filled), 0600); err != nil {
					return err
				}
				printSuccess("%s -> %s", path, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envPath, "env", "", "environment file to read values from")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "directory of *.tmpl files")
	cmd.Flags().StringVar(&outputDir, "output", "", "directory for filled files")
	return cmd
}

func templateFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading templates dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tmpl") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

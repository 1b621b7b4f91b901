package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/2getpro/installer/pkg/readiness"
)

func newWaitCmd() *cobra.Command {
	var attempts int
	var interval time.Duration
	var postgresURL string
	var redisAddr string
	var redisPassword string
	var requireMigrations bool

	cmd := &cobra.Command{
		Use:   "wait [postgres|redis|docker]...",
		Short: "Poll dependencies until they are ready",
		Long: `wait polls the named dependencies with a fixed attempt ceiling and a
fixed delay between attempts. With no arguments it waits for postgres
and redis. Interrupting the process cancels the wait.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadInstallerConfig()
			if err != nil {
				return err
			}
			logger := newCommandLogger(cfg)

			if attempts == 0 {
				attempts = cfg.Readiness.Attempts
			}
			if interval == 0 {
				interval = cfg.ReadinessInterval()
			}
			if postgresURL == "" {
				postgresURL = cfg.Readiness.PostgresURL
			}
			if redisAddr == "" {
				redisAddr = cfg.Readiness.RedisAddr
			}

			if len(args) == 0 {
				args = []string{"postgres", "redis"}
			}
			var checkers []readiness.Checker
			for _, name := range args {
				switch name {
				case "postgres":
					if postgresURL == "" {
						return fmt.Errorf("postgres requested but no connection URL configured")
					}
					checkers = append(checkers, &readiness.PostgresChecker{
						URL:               postgresURL,
						RequireMigrations: requireMigrations,
					})
				case "redis":
					checkers = append(checkers, &readiness.RedisChecker{
						Addr:     redisAddr,
						Password: redisPassword,
					})
				case "docker":
					checkers = append(checkers, &readiness.DockerChecker{})
				default:
					return fmt.Errorf("unknown dependency %q", name)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := readiness.WaitOptions{Attempts: attempts, Interval: interval}
			if err := readiness.WaitAll(ctx, checkers, opts, logger); err != nil {
				printError("%v", err)
				return err
			}
			printSuccess("all dependencies ready")
			return nil
		},
	}

	cmd.Flags().IntVar(&attempts, "attempts", 0, "attempt ceiling (default from installer config)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "delay between attempts (default from installer config)")
	cmd.Flags().StringVar(&postgresURL, "postgres-url", "", "postgres:// connection URL")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis host:port")
	cmd.Flags().StringVar(&redisPassword, "redis-password", "", "redis password")
	cmd.Flags().BoolVar(&requireMigrations, "require-migrations", false, "also require applied database migrations")
	return cmd
}

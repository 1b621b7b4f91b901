// Package config loads the installer's own settings (not the bot's
// environment document, which pkg/envfile produces).
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Paths struct {
	EnvFile      string `yaml:"env_file" mapstructure:"env_file"`
	TemplatesDir string `yaml:"templates_dir" mapstructure:"templates_dir"`
	OutputDir    string `yaml:"output_dir" mapstructure:"output_dir"`
	BackupsDir   string `yaml:"backups_dir" mapstructure:"backups_dir"`
	AuditLog     string `yaml:"audit_log" mapstructure:"audit_log"`
}

type S3 struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Bucket  string `yaml:"bucket" mapstructure:"bucket"`
	Region  string `yaml:"region" mapstructure:"region"`
	Prefix  string `yaml:"prefix" mapstructure:"prefix"`
}

type Backup struct {
	KeepLast   int `yaml:"keep_last" mapstructure:"keep_last"`
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
	S3         S3  `yaml:"s3" mapstructure:"s3"`
}

type Readiness struct {
	Attempts        int    `yaml:"attempts" mapstructure:"attempts"`
	IntervalSeconds int    `yaml:"interval_seconds" mapstructure:"interval_seconds"`
	PostgresURL     string `yaml:"postgres_url" mapstructure:"postgres_url"`
	RedisAddr       string `yaml:"redis_addr" mapstructure:"redis_addr"`
}

type Collector struct {
	// MaxAttempts bounds re-prompting per field; 0 keeps it unbounded.
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

type Log struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// File, when set, duplicates log output into an append-only file.
	File string `yaml:"file" mapstructure:"file"`
}

type Config struct {
	Paths     Paths     `yaml:"paths" mapstructure:"paths"`
	Backup    Backup    `yaml:"backup" mapstructure:"backup"`
	Readiness Readiness `yaml:"readiness" mapstructure:"readiness"`
	Collector Collector `yaml:"collector" mapstructure:"collector"`
	Log       Log       `yaml:"log" mapstructure:"log"`
}

// Default returns the settings a bare Ubuntu host installation uses.
func Default() *Config {
	return &Config{
		Paths: Paths{
			EnvFile:      "/opt/2getpro/.env",
			TemplatesDir: "/opt/2getpro/templates",
			OutputDir:    "/opt/2getpro",
			BackupsDir:   "/opt/2getpro/backups",
			AuditLog:     "/opt/2getpro/install-audit.log",
		},
		Backup: Backup{
			KeepLast:   7,
			MaxAgeDays: 30,
		},
		Readiness: Readiness{
			Attempts:        30,
			IntervalSeconds: 2,
			RedisAddr:       "localhost:6379",
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// ReadinessInterval returns the inter-attempt delay as a duration.
func (c *Config) ReadinessInterval() time.Duration {
	return time.Duration(c.Readiness.IntervalSeconds) * time.Second
}

// BackupMaxAge returns the retention age as a duration; zero disables
// the age rule.
func (c *Config) BackupMaxAge() time.Duration {
	return time.Duration(c.Backup.MaxAgeDays) * 24 * time.Hour
}

// Load reads the installer config file, overlaying defaults. A missing
// file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("installer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/2getpro/")
	}
	cfg := Default()
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

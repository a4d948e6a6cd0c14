// Package config loads all runtime settings from the environment via viper.
// A missing required value is fatal: the process refuses to start without the
// bot credential, admin identities, channel and database targets.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	BotToken    string `mapstructure:"BOT_TOKEN"`
	AdminIDs    string `mapstructure:"ADMIN_IDS"`
	ChannelID   int64  `mapstructure:"CHANNEL_ID"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	UPIID     string `mapstructure:"UPI_ID"`
	QRCodeURL string `mapstructure:"QR_CODE_URL"`

	WelcomeImage string `mapstructure:"WELCOME_IMAGE"`
	PlansImage   string `mapstructure:"PLANS_IMAGE"`
	OffersImage  string `mapstructure:"OFFERS_IMAGE"`
	SuccessImage string `mapstructure:"SUCCESS_IMAGE"`

	Port          string `mapstructure:"PORT"`
	SweepSchedule string `mapstructure:"SWEEP_SCHEDULE"`

	AuthSecret       string `mapstructure:"AUTH_SECRET"`
	AdminAPIPassword string `mapstructure:"ADMIN_API_PASSWORD"`

	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3Region    string `mapstructure:"S3_REGION"`

	adminIDs []int64
}

var boundKeys = []string{
	"BOT_TOKEN", "ADMIN_IDS", "CHANNEL_ID", "DATABASE_URL",
	"UPI_ID", "QR_CODE_URL",
	"WELCOME_IMAGE", "PLANS_IMAGE", "OFFERS_IMAGE", "SUCCESS_IMAGE",
	"PORT", "SWEEP_SCHEDULE",
	"AUTH_SECRET", "ADMIN_API_PASSWORD",
	"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_REGION",
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SWEEP_SCHEDULE", "@every 30m")
	viper.AutomaticEnv()

	// Bind explicitly so the keys appear in Unmarshal even without a config file.
	for _, k := range boundKeys {
		_ = viper.BindEnv(k)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	var missing []string
	required := map[string]string{
		"BOT_TOKEN":    cfg.BotToken,
		"ADMIN_IDS":    cfg.AdminIDs,
		"DATABASE_URL": cfg.DatabaseURL,
		"UPI_ID":       cfg.UPIID,
		"QR_CODE_URL":  cfg.QRCodeURL,
		"AUTH_SECRET":  cfg.AuthSecret,
	}
	for k, v := range required {
		if v == "" {
			missing = append(missing, k)
		}
	}
	if cfg.ChannelID == 0 {
		missing = append(missing, "CHANNEL_ID")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	ids, err := parseAdminIDs(cfg.AdminIDs)
	if err != nil {
		return Config{}, err
	}
	cfg.adminIDs = ids

	return cfg, nil
}

// AdminIDList returns the parsed administrator identities.
func (c Config) AdminIDList() []int64 {
	out := make([]int64, len(c.adminIDs))
	copy(out, c.adminIDs)
	return out
}

// S3Enabled reports whether the optional proof archive is configured.
func (c Config) S3Enabled() bool {
	return c.S3Endpoint != "" && c.S3Bucket != ""
}

func parseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS must be comma-separated integers, got %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ADMIN_IDS contains no identities")
	}
	return ids, nil
}

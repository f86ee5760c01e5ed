package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Slack struct {
	Token          string `yaml:"token"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

type Config struct {
	Port           string `yaml:"port"`
	DSN            string `yaml:"dsn"`
	DBEntry        string `yaml:"dbEntry"`
	Database       string `yaml:"database"`
	MaxConnections int    `yaml:"maxConnections"`
	LogLevel       string `yaml:"logLevel"`
	SigningSecret  string `yaml:"signingSecret"`
	TimeZone       string `yaml:"timeZone"`
	WorkStartTime  string `yaml:"workStartTime"`
	WorkEndTime    string `yaml:"workEndTime"`
	MessagesFile   string `yaml:"messagesFile"`
	ExportBucket   string `yaml:"exportBucket"`
	MailFrom       string `yaml:"mailFrom"`
	Slack          Slack  `yaml:"slack"`
}

func defaults() Config {
	return Config{
		Port:           "8080",
		DBEntry:        "lms",
		MaxConnections: 10,
		LogLevel:       "warn",
		TimeZone:       "Australia/Brisbane",
		WorkStartTime:  "09:00",
		WorkEndTime:    "18:00",
	}
}

// Load reads .env when present, then the optional YAML file at path, then environment
// variables. Later sources win.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using system environment")
	}

	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.DSN, "DSN")
	setString(&cfg.DBEntry, "DB_ENTRY")
	setString(&cfg.Database, "LMS_DATABASE")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.SigningSecret, "AXIAPAC_SIGNING_SECRET")
	setString(&cfg.TimeZone, "TZ_NAME")
	setString(&cfg.WorkStartTime, "WORK_START_TIME")
	setString(&cfg.WorkEndTime, "WORK_END_TIME")
	setString(&cfg.MessagesFile, "MESSAGES_FILE")
	setString(&cfg.ExportBucket, "EXPORT_BUCKET")
	setString(&cfg.MailFrom, "MAIL_FROM")
	setString(&cfg.Slack.Token, "SLACK_BOT_TOKEN")
	setString(&cfg.Slack.InfoChannelID, "SLACK_INFO_CHANNEL")
	setString(&cfg.Slack.ErrorChannelID, "SLACK_ERROR_CHANNEL")

	if v := os.Getenv("DB_MAX_CONNECTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_CONNECTIONS: %w", err)
		}
		cfg.MaxConnections = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Site     SiteConfig     `mapstructure:"site"`
	Database DatabaseConfig `mapstructure:"database"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Notify   NotifyConfig   `mapstructure:"notify"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type SiteConfig struct {
	Path string `mapstructure:"path"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type BackupConfig struct {
	LocalPath string `mapstructure:"local_path"`
	// KeepDays is the remote retention window in days; 0 disables remote
	// deletion entirely. Local retention always keeps a single generation.
	KeepDays int    `mapstructure:"keep_days"`
	Schedule string `mapstructure:"schedule"`
}

type RemoteConfig struct {
	Type   string       `mapstructure:"type"`
	FTP    FTPConfig    `mapstructure:"ftp"`
	S3     S3Config     `mapstructure:"s3"`
	GDrive GDriveConfig `mapstructure:"gdrive"`
}

type FTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dir      string `mapstructure:"dir"`
}

type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

type GDriveConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	FolderID        string `mapstructure:"folder_id"`
}

type NotifyConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("app.name", "sitevault")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("database.port", 3306)
	v.SetDefault("backup.keep_days", 3)
	v.SetDefault("remote.type", "ftp")
	v.SetDefault("remote.ftp.port", 21)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Site.Path == "" {
		return fmt.Errorf("site.path is required")
	}
	if c.Backup.LocalPath == "" {
		return fmt.Errorf("backup.local_path is required")
	}
	if c.Backup.KeepDays < 0 {
		return fmt.Errorf("backup.keep_days must be >= 0")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("database.password is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}

	switch c.Remote.Type {
	case "ftp":
		if c.Remote.FTP.Host == "" {
			return fmt.Errorf("remote.ftp.host is required")
		}
		if c.Remote.FTP.User == "" {
			return fmt.Errorf("remote.ftp.user is required")
		}
		if c.Remote.FTP.Password == "" {
			return fmt.Errorf("remote.ftp.password is required")
		}
		if c.Remote.FTP.Dir == "" {
			return fmt.Errorf("remote.ftp.dir is required")
		}
	case "s3":
		if c.Remote.S3.Region == "" {
			return fmt.Errorf("remote.s3.region is required")
		}
		if c.Remote.S3.Bucket == "" {
			return fmt.Errorf("remote.s3.bucket is required")
		}
	case "gdrive":
		if c.Remote.GDrive.CredentialsFile == "" {
			return fmt.Errorf("remote.gdrive.credentials_file is required")
		}
		if c.Remote.GDrive.FolderID == "" {
			return fmt.Errorf("remote.gdrive.folder_id is required")
		}
	default:
		return fmt.Errorf("unsupported remote type: %s", c.Remote.Type)
	}

	if c.Notify.Telegram.Enabled {
		if c.Notify.Telegram.BotToken == "" {
			return fmt.Errorf("notify.telegram.bot_token is required when enabled")
		}
		if c.Notify.Telegram.ChatID == "" {
			return fmt.Errorf("notify.telegram.chat_id is required when enabled")
		}
	}

	return nil
}

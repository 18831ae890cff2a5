package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
site:
  path: /var/www/html
database:
  host: localhost
  user: wp
  password: secret
  name: wordpress
backup:
  local_path: /var/backups/site
remote:
  type: ftp
  ftp:
    host: ftp.example.com
    user: ftpuser
    password: ftppass
    dir: /backups
`

func TestConfig(t *testing.T) {
	Convey("Given the config package", t, func() {
		Convey("Load function", func() {
			Convey("When loading a valid config", func() {
				path := writeConfig(t, validConfig)
				cfg, err := Load(path)

				Convey("It should load successfully and apply defaults", func() {
					So(err, ShouldBeNil)
					So(cfg, ShouldNotBeNil)
					So(cfg.App.Name, ShouldEqual, "sitevault")
					So(cfg.App.LogLevel, ShouldEqual, "info")
					So(cfg.Database.Port, ShouldEqual, 3306)
					So(cfg.Backup.KeepDays, ShouldEqual, 3)
					So(cfg.Remote.Type, ShouldEqual, "ftp")
					So(cfg.Remote.FTP.Port, ShouldEqual, 21)
				})
			})

			Convey("When keep_days is explicitly zero", func() {
				zeroKeep := `
site:
  path: /var/www/html
database:
  host: localhost
  user: wp
  password: secret
  name: wordpress
backup:
  local_path: /var/backups/site
  keep_days: 0
remote:
  type: ftp
  ftp:
    host: ftp.example.com
    user: ftpuser
    password: ftppass
    dir: /backups
`
				path := writeConfig(t, zeroKeep)
				cfg, err := Load(path)

				Convey("It should keep the explicit zero, not the default", func() {
					So(err, ShouldBeNil)
					So(cfg.Backup.KeepDays, ShouldEqual, 0)
				})
			})

			Convey("When the config file does not exist", func() {
				_, err := Load("/nonexistent/config.yaml")

				Convey("It should return an error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "failed to read config")
				})
			})
		})

		Convey("Validate method", func() {
			base := func() *Config {
				return &Config{
					Site:     SiteConfig{Path: "/var/www/html"},
					Database: DatabaseConfig{Host: "localhost", Port: 3306, User: "wp", Password: "secret", Name: "wordpress"},
					Backup:   BackupConfig{LocalPath: "/var/backups/site", KeepDays: 3},
					Remote: RemoteConfig{
						Type: "ftp",
						FTP:  FTPConfig{Host: "ftp.example.com", Port: 21, User: "u", Password: "p", Dir: "/backups"},
					},
				}
			}

			Convey("When the config is complete", func() {
				So(base().Validate(), ShouldBeNil)
			})

			Convey("When site.path is missing", func() {
				cfg := base()
				cfg.Site.Path = ""
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "site.path")
			})

			Convey("When keep_days is negative", func() {
				cfg := base()
				cfg.Backup.KeepDays = -1
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "keep_days")
			})

			Convey("When a database credential is missing", func() {
				cfg := base()
				cfg.Database.Password = ""
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "database.password")
			})

			Convey("When the remote type is unsupported", func() {
				cfg := base()
				cfg.Remote.Type = "carrier-pigeon"
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unsupported remote type")
			})

			Convey("When the ftp remote is incomplete", func() {
				cfg := base()
				cfg.Remote.FTP.Dir = ""
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "remote.ftp.dir")
			})

			Convey("When the s3 remote is selected", func() {
				cfg := base()
				cfg.Remote.Type = "s3"

				Convey("Without a bucket it should fail", func() {
					cfg.Remote.S3.Region = "eu-west-2"
					err := cfg.Validate()
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "remote.s3.bucket")
				})

				Convey("With region and bucket it should pass", func() {
					cfg.Remote.S3 = S3Config{Region: "eu-west-2", Bucket: "backups"}
					So(cfg.Validate(), ShouldBeNil)
				})
			})

			Convey("When telegram notify is enabled without a token", func() {
				cfg := base()
				cfg.Notify.Telegram.Enabled = true
				cfg.Notify.Telegram.ChatID = "42"
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "bot_token")
			})
		})
	})
}

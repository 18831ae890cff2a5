package app

import (
	"context"
	"fmt"

	"github.com/hendrawan/sitevault/internal/adapter/archiver"
	"github.com/hendrawan/sitevault/internal/adapter/database"
	"github.com/hendrawan/sitevault/internal/adapter/notifier"
	"github.com/hendrawan/sitevault/internal/adapter/storage"
	"github.com/hendrawan/sitevault/internal/config"
	"github.com/hendrawan/sitevault/internal/domain"
	"github.com/hendrawan/sitevault/internal/infrastructure/logger"
	"github.com/hendrawan/sitevault/internal/infrastructure/scheduler"
	"github.com/hendrawan/sitevault/internal/usecase"
)

type App struct {
	config    *config.Config
	logger    *logger.Logger
	pipeline  *usecase.Pipeline
	notifier  *notifier.TelegramNotifier
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.App.LogLevel, cfg.App.LogFile)
	log.Infof("Starting %s", cfg.App.Name)

	local, err := storage.NewLocal(cfg.Backup.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backup directory: %w", err)
	}

	dumper := database.NewMySQL(&cfg.Database)
	if err := dumper.Ping(context.Background()); err != nil {
		log.Warnf("Database connectivity check failed: %v", err)
	} else {
		log.Infof("Connected to database %s at %s", cfg.Database.Name, cfg.Database.Host)
	}

	backupUC := usecase.NewBackup(cfg.Site.Path, local, dumper, archiver.NewZip(), log)
	uploaderUC := usecase.NewUploader(log)
	cleanupUC := usecase.NewCleanup(cfg.Backup.KeepDays, log)

	connect, err := remoteFactory(cfg, log)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:    cfg,
		logger:    log,
		pipeline:  usecase.NewPipeline(backupUC, uploaderUC, cleanupUC, connect, log),
		scheduler: scheduler.New(log),
	}

	if cfg.Notify.Telegram.Enabled {
		tg, err := notifier.NewTelegram(&cfg.Notify.Telegram)
		if err != nil {
			log.Errorf("Failed to initialize Telegram notifier: %v", err)
		} else {
			app.notifier = tg
			log.Infof("Telegram notifications enabled")
		}
	}

	return app, nil
}

func remoteFactory(cfg *config.Config, log *logger.Logger) (usecase.RemoteFactory, error) {
	switch cfg.Remote.Type {
	case "ftp":
		log.Infof("Remote target: ftp://%s%s", cfg.Remote.FTP.Host, cfg.Remote.FTP.Dir)
		return func(ctx context.Context) (domain.RemoteStorage, error) {
			return storage.DialFTP(ctx, &cfg.Remote.FTP)
		}, nil
	case "s3":
		log.Infof("Remote target: s3://%s/%s", cfg.Remote.S3.Bucket, cfg.Remote.S3.Prefix)
		return func(ctx context.Context) (domain.RemoteStorage, error) {
			return storage.NewS3(ctx, &cfg.Remote.S3)
		}, nil
	case "gdrive":
		log.Infof("Remote target: Google Drive folder %s", cfg.Remote.GDrive.FolderID)
		return func(ctx context.Context) (domain.RemoteStorage, error) {
			return storage.NewGDrive(ctx, &cfg.Remote.GDrive)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported remote type: %s", cfg.Remote.Type)
	}
}

func (a *App) Run(ctx context.Context) error {
	if a.config.Backup.Schedule == "" {
		return a.runOnce(ctx)
	}

	a.logger.Infof("Scheduling backup: %s", a.config.Backup.Schedule)
	if err := a.scheduler.AddJob(a.config.Backup.Schedule, a.runOnce); err != nil {
		return fmt.Errorf("failed to schedule backup: %w", err)
	}

	a.scheduler.Start()
	defer a.scheduler.Stop()

	<-ctx.Done()
	return nil
}

func (a *App) runOnce(ctx context.Context) error {
	archive, err := a.pipeline.Run(ctx)
	if err != nil {
		a.logger.Errorf("Backup run failed: %v", err)
		a.notify(fmt.Sprintf("❌ Backup failed: %v", err))
		return err
	}

	a.logger.Infof("Backup run completed: %s", archive.Filename)
	a.notify(fmt.Sprintf("✅ Backup completed: %s (%.2f MB)",
		archive.Filename, float64(archive.Size)/(1024*1024)))
	return nil
}

func (a *App) notify(message string) {
	if a.notifier == nil {
		return
	}
	if err := a.notifier.Notify(message); err != nil {
		a.logger.Warnf("Failed to send notification: %v", err)
	}
}

func (a *App) Shutdown() {
	a.logger.Infof("Shutting down")
	a.logger.Close()
}

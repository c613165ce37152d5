// Package app assembles the application: configuration, logging, database
// pool, repositories and services.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/m1nazuk1/cloud-storage/internal/adapter/postgres"
	auditrepo "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres/audit"
	chatrepo "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres/chat"
	filerepo "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres/file"
	grouprepo "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres/group"
	membershiprepo "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres/membership"
	notificationrepo "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres/notification"
	"github.com/m1nazuk1/cloud-storage/internal/blob"
	"github.com/m1nazuk1/cloud-storage/internal/config"
	"github.com/m1nazuk1/cloud-storage/internal/realtime"
	"github.com/m1nazuk1/cloud-storage/internal/service/access"
	chatsvc "github.com/m1nazuk1/cloud-storage/internal/service/chat"
	filesvc "github.com/m1nazuk1/cloud-storage/internal/service/file"
	groupsvc "github.com/m1nazuk1/cloud-storage/internal/service/group"
	notificationsvc "github.com/m1nazuk1/cloud-storage/internal/service/notification"
)

// App holds the wired application. Transports (HTTP, gRPC, CLI tools) take
// the services they need from here.
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool
	Hub    *realtime.Hub

	Groups        *groupsvc.Service
	Files         *filesvc.Service
	Chat          *chatsvc.Service
	Notifications *notificationsvc.Service
}

// New loads configuration and wires every layer: pool, repositories, blob
// store, realtime hub, policy and services.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	blobs, err := blob.NewFSStore(cfg.Storage.UploadDir)
	if err != nil {
		pool.Close()
		return nil, err
	}

	tx := postgres.NewTxManager(pool)
	hub := realtime.NewHub(cfg.Realtime.SubscriberBuffer)

	groups := grouprepo.New(pool)
	memberships := membershiprepo.New(pool)
	files := filerepo.New(pool)
	audit := auditrepo.New(pool)
	chat := chatrepo.New(pool)
	notifications := notificationrepo.New(pool)

	policy := access.NewPolicy(memberships)
	notify := notificationsvc.NewService(logger, notifications, memberships, hub)

	groupService := groupsvc.NewService(
		logger, groups, memberships, files, audit, chat, notifications,
		notify, policy, blobs, tx,
	)
	fileService := filesvc.NewService(
		logger, files, audit, blobs, notify, policy, tx,
		filesvc.Limits{
			MaxFileSize:  cfg.Storage.MaxFileSize,
			MaxGroupSize: cfg.Storage.MaxGroupSize,
		},
	)
	chatService := chatsvc.NewService(logger, chat, files, hub, policy)

	return &App{
		Config:        cfg,
		Log:           logger,
		Pool:          pool,
		Hub:           hub,
		Groups:        groupService,
		Files:         fileService,
		Chat:          chatService,
		Notifications: notify,
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	a.Pool.Close()
}

// Run wires the application and blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	a, err := New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Log.Info("application started",
		slog.String("version", BuildVersion()),
		slog.String("log_level", a.Config.Log.Level),
		slog.String("upload_dir", a.Config.Storage.UploadDir),
	)

	<-ctx.Done()

	a.Log.Info("shutting down")
	return nil
}

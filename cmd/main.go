package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/config"
	"github.com/taskflow/backend/internal/infrastructure/db"
	"github.com/taskflow/backend/internal/infrastructure/repository"
	"github.com/taskflow/backend/internal/transport"
	"github.com/taskflow/backend/internal/transport/handler"
	"github.com/taskflow/backend/internal/usecase/service"
	"github.com/taskflow/backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	pool, err := db.NewDatabase(ctx, cfg.Database.URL, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer pool.Close()

	// Layers
	userRepo := repository.NewUserRepository(pool, log)
	projectRepo := repository.NewProjectRepository(pool, log)
	taskRepo := repository.NewTaskRepository(pool, log)
	commentRepo := repository.NewCommentRepository(pool, log)
	attachmentRepo := repository.NewAttachmentRepository(pool, log)
	statsRepo := repository.NewStatsRepository(pool, log)

	userService := service.NewUserService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	commentService := service.NewCommentService(commentRepo, log)
	attachmentService := service.NewAttachmentService(attachmentRepo, log)
	statsService := service.NewStatsService(statsRepo, log)

	userHandler := handler.NewUserHandler(userService, log)
	projectHandler := handler.NewProjectHandler(projectService, log)
	taskHandler := handler.NewTaskHandler(taskService, log)
	commentHandler := handler.NewCommentHandler(commentService, log)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService, log)
	statsHandler := handler.NewStatsHandler(statsService, log)
	healthHandler := handler.NewHealthHandler(log)

	router := transport.NewRouter(
		userHandler,
		projectHandler,
		taskHandler,
		commentHandler,
		attachmentHandler,
		statsHandler,
		healthHandler,
		log,
	)

	server := transport.NewServer(cfg.App.Port, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/config"
	"github.com/SYK3S999/tamweeli-sub001/internal/handler"
	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/router"
	"github.com/SYK3S999/tamweeli-sub001/internal/seed"
	"github.com/SYK3S999/tamweeli-sub001/internal/session"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/auth"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/consulting"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/investment"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/messaging"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/notification"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/project"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/wallet"
	"github.com/SYK3S999/tamweeli-sub001/pkg/jwtutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	db         *pgxpool.Pool
	rdb        *redis.Client
	logger     *zap.Logger
}

func New(cfg config.AppConfig, logger *zap.Logger) *Server {
	db := config.ConnectDB(cfg)
	rdb := config.ConnectRedis(cfg)

	// Repositories
	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)
	investments := repository.NewInvestmentRepository(db)
	wallets := repository.NewWalletRepository(db)
	transactions := repository.NewTransactionRepository(db)
	notifications := repository.NewNotificationRepository(db)
	messages := repository.NewMessageRepository(db)
	services := repository.NewServiceRepository(db)
	saved := repository.NewSavedProjectRepository(rdb)

	// Sessions and tokens
	sessions := session.NewStore(rdb, cfg.SessionTTL)
	issuer := jwtutil.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)

	// Usecases
	notifyUC := notification.New(notifications, notification.NewHub(), logger)
	walletUC := wallet.New(wallets, transactions)
	authUC := auth.New(users, walletUC, sessions, issuer)
	projectUC := project.New(projects, saved, notifyUC)
	investmentUC := investment.New(investments, projects, walletUC, notifyUC)
	messagingUC := messaging.New(messages, notifyUC)
	consultingUC := consulting.New(services, walletUC, notifyUC)

	if cfg.SeedDemoData {
		if err := seed.Run(context.Background(), seed.Deps{
			Users:    users,
			Projects: projects,
			Wallets:  walletUC,
			Flags:    rdb,
		}); err != nil {
			logger.Warn("demo seeding failed", zap.Error(err))
		}
	}

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(authUC, logger),
		Project:      handler.NewProjectHandler(projectUC, logger),
		Investment:   handler.NewInvestmentHandler(investmentUC, logger),
		Wallet:       handler.NewWalletHandler(walletUC, logger),
		Notification: handler.NewNotificationHandler(notifyUC, logger),
		Message:      handler.NewMessageHandler(messagingUC, logger),
		Consulting:   handler.NewConsultingHandler(consultingUC, logger),
	}
	authMw := middleware.NewAuthMiddleware(issuer, sessions)
	r := router.New(h, authMw, cfg.AllowedOrigins)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	defer s.db.Close()
	defer s.rdb.Close()
	return s.httpServer.Shutdown(ctx)
}

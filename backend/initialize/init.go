package initialize

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"helpdesk/backend/app/controllers"
	"helpdesk/backend/app/db"
	jwtutil "helpdesk/backend/app/jwt"
	"helpdesk/backend/app/middleware"
	"helpdesk/backend/app/models"
	"helpdesk/backend/app/repo"
	"helpdesk/backend/app/services"
	"helpdesk/backend/app/session"
	"helpdesk/backend/config"
	"helpdesk/backend/global"
	"helpdesk/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Tickets  *controllers.TicketController
	Users    *services.AuthService
	Desk     *services.TicketService
	Sessions session.Store
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	applyLogLevel(cfg.Env)

	// Connect DB
	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Ticket{}, &models.TicketComment{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Redis holds the live-session registry
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, strconv.Itoa(cfg.Redis.Port)),
		Password: cfg.Redis.Pass,
		DB:       cfg.Redis.DB,
	})
	global.Rdb = rdb

	// Services
	userRepo := repo.NewUserRepository(gdb)
	ticketRepo := repo.NewTicketRepository(gdb)
	commentRepo := repo.NewCommentRepository(gdb)
	authSvc := services.NewAuthService(userRepo)
	deskSvc := services.NewTicketService(ticketRepo, commentRepo)
	if err := authSvc.EnsureAdmin(context.Background(), cfg.Admin.FullName, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		// non-critical
		global.Logger.Warn().Err(err).Msg("seed admin account")
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	sessions := session.NewRedisStore(rdb)
	authCtrl := controllers.NewAuthController(authSvc, signer, sessions)
	ticketCtrl := controllers.NewTicketController(deskSvc)
	mw := &middleware.Auth{Signer: signer, Sessions: sessions}

	// Router
	h := router.New(authCtrl, ticketCtrl, mw)
	h = middleware.Logging(h)

	// Pick up log-level changes without a restart
	config.Watch(func(next config.Config) {
		global.Config = next
		applyLogLevel(next.Env)
		global.Logger.Info().Msg("config reloaded")
	})

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Tickets: ticketCtrl, Users: authSvc, Desk: deskSvc, Sessions: sessions}, nil
}

package main

import (
	"context"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Srivastav4327/RentMate/internal/access"
	"github.com/Srivastav4327/RentMate/internal/admin"
	"github.com/Srivastav4327/RentMate/internal/config"
	"github.com/Srivastav4327/RentMate/internal/handlers"
	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/notify"
	"github.com/Srivastav4327/RentMate/internal/repositories"
	"github.com/Srivastav4327/RentMate/internal/repositories/memory"
	"github.com/Srivastav4327/RentMate/internal/services"
	"github.com/Srivastav4327/RentMate/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config

	identity access.IdentityProvider
	hub      *notify.Hub

	userHandler    *handlers.UserHandler
	listingHandler *handlers.ListingHandler
	rentalHandler  *handlers.RentalHandler
	catalogHandler *handlers.CatalogHandler
	adminHandler   *handlers.AdminHandler
}

// deviceTokenStore is what both the push sender and device registration need.
type deviceTokenStore interface {
	services.DeviceTokenStore
	notify.TokenLookup
}

type stores struct {
	listings     services.ListingStore
	rentals      services.RentalStore
	users        services.UserStore
	catalog      services.CatalogStore
	sessions     services.SessionStore
	deviceTokens deviceTokenStore

	db  *sqlx.DB
	rdb *redis.Client
}

func (s *stores) Close() {
	if s.db != nil {
		s.db.Close()
	}
	if s.rdb != nil {
		s.rdb.Close()
	}
}

// openStores connects the configured backends. The memory driver serves
// seeded in-process data.
func openStores(ctx context.Context, cfg config.Config, infoLog *log.Logger) (*stores, error) {
	st := &stores{}

	if cfg.Redis.Addr != "" {
		rdb, err := openRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		st.rdb = rdb
		st.sessions = repositories.NewSessionRepository(rdb)
	} else {
		infoLog.Printf("REDIS_ADDR not set, keeping sessions in memory")
		st.sessions = memory.NewSessionStore()
	}

	if cfg.Database.Driver == "memory" {
		st.listings = memory.NewListingStore(memory.SeedListings()...)
		st.rentals = memory.NewRentalStore(memory.SeedRentals()...)
		st.users = memory.NewUserStore(memory.SeedUsers()...)
		st.catalog = memory.NewCatalogStore(models.Categories, memory.SeedCities())
		st.deviceTokens = memory.NewDeviceTokenStore()
		return st, nil
	}

	db, err := openDB(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		st.Close()
		return nil, err
	}
	infoLog.Printf("Successfully connected to database")
	st.db = db
	st.listings = repositories.NewListingRepository(db)
	st.rentals = repositories.NewRentalRepository(db)
	st.users = repositories.NewUserRepository(db)
	st.catalog = repositories.NewCatalogRepository(db)
	st.deviceTokens = repositories.NewDeviceTokenRepository(db)
	return st, nil
}

func openDB(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	db.SetMaxIdleConns(35)
	return db, nil
}

func openRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func initializeApp(ctx context.Context, cfg config.Config, st *stores, errorLog, infoLog *log.Logger) (*application, error) {
	logger := stdLogger{info: infoLog, err: errorLog}

	tokens, err := utils.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}
	var identity access.IdentityProvider = access.TokenProvider{Tokens: tokens, Users: st.users}

	hub := notify.NewHub(logger)
	dispatcher := &notify.Dispatcher{Hub: hub, Logger: logger}

	if cfg.Auth.FirebaseCredentials != "" {
		fb, err := access.NewFirebaseApp(ctx, cfg.Auth.FirebaseCredentials)
		if err != nil {
			return nil, err
		}
		fbIdentity, err := access.NewFirebaseProvider(ctx, fb, st.users)
		if err != nil {
			return nil, err
		}
		identity = access.Chain{identity, fbIdentity}

		client, err := fb.Messaging(ctx)
		if err != nil {
			return nil, fmt.Errorf("init firebase messaging: %w", err)
		}
		dispatcher.Push = &notify.FCMSender{Client: client, Tokens: st.deviceTokens, Logger: logger}
		infoLog.Printf("Firebase identity and push notifications enabled")
	}

	userService := services.NewUserService(st.users, st.sessions, tokens, cfg.AccessTTL(), cfg.RefreshTTL())
	userService.DeviceTokens = st.deviceTokens
	listingService := services.NewListingService(st.listings)
	rentalService := services.NewRentalService(st.listings, st.rentals, dispatcher, logger, cfg.CommissionRate())
	catalogService := services.NewCatalogService(st.catalog)
	dashboard := admin.NewDashboard(st.users, st.listings, logger)

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		cfg:      cfg,
		identity: identity,
		hub:      hub,

		userHandler:    &handlers.UserHandler{Service: userService, Logger: logger},
		listingHandler: &handlers.ListingHandler{Service: listingService, Logger: logger},
		rentalHandler:  &handlers.RentalHandler{Service: rentalService, Logger: logger},
		catalogHandler: &handlers.CatalogHandler{Service: catalogService, Logger: logger},
		adminHandler:   &handlers.AdminHandler{Dashboard: dashboard, Logger: logger},
	}, nil
}

// stdLogger routes the Infof/Errorf calls of the internal packages to the
// standard loggers.
type stdLogger struct {
	info *log.Logger
	err  *log.Logger
}

func (l stdLogger) Infof(format string, args ...interface{}) {
	l.info.Output(2, fmt.Sprintf(format, args...))
}

func (l stdLogger) Errorf(format string, args ...interface{}) {
	l.err.Output(2, fmt.Sprintf(format, args...))
}

package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/config"
	"github.com/fadilmartias/hiring-dashboard/internal/domain/fiber/handler"
	"github.com/fadilmartias/hiring-dashboard/internal/fiberlog"
	"github.com/fadilmartias/hiring-dashboard/internal/middleware"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/repository"
	"github.com/fadilmartias/hiring-dashboard/internal/service"
	"github.com/fadilmartias/hiring-dashboard/internal/usecase"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	logConfig := config.InitLogger(appConfig)

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: util.ErrorHandler,
		// leave room for multipart overhead on top of the upload limit
		BodyLimit: int(appConfig.UploadMaxSize) + 1024*1024,
	})
	app.Use(fiberlog.RequestID())
	app.Use(fiberlog.New(*logConfig))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.HeaderClientID,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
		// the dashboard page ships inline script and style
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'",
	}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	activityRepo := newActivityRepository()

	n8n := service.NewN8NService(config.LoadN8NConfig())
	extractor := service.NewTextExtractService(config.LoadTextExtractConfig())

	activity := usecase.NewActivityUsecase(activityRepo)
	workflows := usecase.NewWorkflowUsecase(n8n)
	ranking := usecase.NewRankingUsecase(n8n, activity)
	dashboard := usecase.NewDashboardUsecase(workflows, activity, extractor, n8n, config.LoadDisplayConfig())
	gate := newBusyGate()

	handler.NewDashboardHandler(dashboard, workflows, ranking, activity, appConfig).RegisterRoutes(app)
	handler.NewGoalHandler(usecase.NewGoalUsecase(n8n, activity), gate).RegisterRoutes(app)
	handler.NewResumeHandler(usecase.NewUploadUsecase(extractor, n8n, activity, appConfig.UploadMaxSize), gate).RegisterRoutes(app)
	handler.NewRankingHandler(ranking, gate).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.WithField("goroutines", runtime.NumGoroutine()).Debug("runtime stats")
		}
	}()

	// gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-quit
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	log.WithField("port", appConfig.Port).Info("Server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
	wg.Wait()
}

// newActivityRepository stores the activity log in PostgreSQL when DB_HOST is
// set and in memory otherwise.
func newActivityRepository() repository.ActivityRepositoryInterface {
	dbConfig := config.LoadDBConfig()
	if !dbConfig.Enabled() {
		log.Info("DB_HOST not set, keeping activity log in memory")
		return repository.NewMemoryActivityRepository()
	}
	db, err := ConnectDB(dbConfig)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	return repository.NewActivityRepository(db)
}

// newBusyGate shares the gate through Redis when REDIS_ADDR is set and keeps
// it in memory otherwise.
func newBusyGate() *middleware.BusyGate {
	redisConfig := config.LoadRedisConfig()
	if !redisConfig.Enabled() {
		return middleware.NewBusyGate()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         redisConfig.Addr,
		Password:     redisConfig.Password,
		DB:           redisConfig.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis unreachable, keeping busy gate in memory")
		_ = client.Close()
		return middleware.NewBusyGate()
	}
	log.WithField("addr", redisConfig.Addr).Info("Busy gate backed by Redis")
	return middleware.NewBusyGateWithLocker(middleware.NewRedisLocker(client, redisConfig.LockTTL))
}

func ConnectDB(dbConfig *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get database instance")
	}
	pgDB.SetMaxIdleConns(2)
	pgDB.SetMaxOpenConns(10)
	pgDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&model.Activity{}); err != nil {
		return nil, errors.Wrap(err, "migrate activity table")
	}
	log.Info("Connected to database")
	return db, nil
}

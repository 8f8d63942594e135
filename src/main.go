package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"studio/src/boot"
	"studio/src/config"
	"studio/src/db"
	"studio/src/lib"
	"studio/src/lib/mailer"
	"studio/src/middlewares"
	"studio/src/services"
	"studio/src/store"

	awslib "studio/src/lib/aws"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const apiPrefix = "/api"

type application struct {
	cfg          config.App
	availability *services.AvailabilityService
	bookings     *services.BookingService
	packages     *services.PackageService
}

func newApplication(cfg config.App, repos *store.Repositories, cache services.WindowCache, m mailer.Mailer, images services.ImageStore) *application {
	notifier := services.NewNotifier(m, repos.Notifications, services.NotifierConfig{
		AdminEmail: cfg.AdminEmail,
		From:       cfg.MailFrom,
		FromName:   cfg.MailFromName,
	})
	return &application{
		cfg:          cfg,
		availability: services.NewAvailabilityService(repos.Availability, cache),
		bookings:     services.NewBookingService(repos, notifier),
		packages:     services.NewPackageService(repos.Packages, images),
	}
}

func setupRouter(cfg config.App) *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.Use(corsMiddleware(cfg))
	router = maintenanceModeMiddleware(router, cfg.MaintenanceMode)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine, enabled bool) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if enabled {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func corsMiddleware(cfg config.App) gin.HandlerFunc {
	if cfg.IsLocal() {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowOriginFunc = func(origin string) bool {
		if cfg.AppHost == "" {
			return false
		}
		match, _ := regexp.MatchString(cfg.AppHost, origin)
		log.Printf("Origin matches %s: %v\n", origin, match)
		return match
	}
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	return cors.New(cc)
}

func publicRoutes(g *gin.Engine, app *application) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	publicPackageHandlers(apiv1, app.packages)
	publicAvailabilityHandlers(apiv1, app.availability, app.bookings)
	publicBookingHandlers(apiv1, app.bookings)
	authHandlers(apiv1, app.cfg)
	return apiv1
}

func adminRoutes(g *gin.Engine, app *application) *gin.RouterGroup {
	authorized := g.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware([]byte(app.cfg.JWTSecret)))
	availabilityHandlers(authorized, app.availability)
	bookingHandlers(authorized, app.bookings)
	packageHandlers(authorized, app.packages)
	return authorized
}

func buildRouter(app *application) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerValidators(v)
	}
	router := setupRouter(app.cfg)
	publicRoutes(router, app)
	adminRoutes(router, app)
	return router
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	if err := os.MkdirAll(path.Join(cwd, "logs"), 0o755); err != nil {
		log.Printf("Error creating logs dir: %s\n", err.Error())
	}
	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func initRepositories(cfg config.App) *store.Repositories {
	if cfg.UseMemoryStore() {
		log.Println("Using in-memory store")
		return store.NewMemoryRepositories()
	}
	return store.NewGormRepositories(boot.InitDb(db.GetDb()))
}

func initCache(ctx context.Context, cfg config.App) services.WindowCache {
	rdb := lib.GetRedisClient(cfg.RedisHost)
	if rdb == nil {
		return services.NopCache{}
	}
	if err := lib.PingRedis(ctx, rdb); err != nil {
		return services.NopCache{}
	}
	return services.NewRedisCache(rdb, cfg.AvailabilityCacheTTL)
}

func initImageStore(ctx context.Context, cfg config.App) services.ImageStore {
	if cfg.S3AssetsBucket == "" {
		return services.NopImageStore{}
	}
	c, err := awslib.GetS3Client(ctx)
	if err != nil {
		log.Printf("Error initializing S3 client: %s\n", err.Error())
		return services.NopImageStore{}
	}
	return awslib.NewS3ImageStore(c, cfg.S3AssetsBucket)
}

func main() {
	if os.Getenv("API_ENV") == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s\n", err.Error())
	}
	ctx := context.Background()

	m, err := mailer.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Error initializing mailer: %s\n", err.Error())
	}
	app := newApplication(cfg, initRepositories(cfg), initCache(ctx, cfg), m, initImageStore(ctx, cfg))

	if err := boot.InitScheduler(cfg, app.availability); err != nil {
		log.Printf("Housekeeping disabled: %s\n", err.Error())
	}
	defer boot.StopScheduler()

	router := buildRouter(app)

	addr := ":" + cfg.Port
	if cfg.TLSEnable {
		cwd, _ := os.Getwd()
		certpath := path.Join(cwd, "certificates", "localhost.pem")
		keypath := path.Join(cwd, "certificates", "localhost-key.pem")
		if err := router.RunTLS(addr, certpath, keypath); err != nil {
			log.Fatalf("Failed to start server: %s", err)
		}
		return
	}
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}

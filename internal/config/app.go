package config

import (
	http "github.com/szarydziennik/grayjournal/internal/delivery/http"
	"github.com/szarydziennik/grayjournal/internal/delivery/http/middleware"
	"github.com/szarydziennik/grayjournal/internal/delivery/http/route"
	"github.com/szarydziennik/grayjournal/internal/repository"
	"github.com/szarydziennik/grayjournal/internal/usecase"
	"github.com/minio/minio-go/v7"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Router  *fiber.App
	DB      *pgxpool.Pool
	DBCache *redis.Client
	Log     *zap.Logger
	Config  *koanf.Koanf
	MinIO   *minio.Client
}

func Server(config *ServerConfig) {
	// The two news backends implement one NewsStore contract; the driver
	// switch happens once at startup, never per request.
	var newsStore repository.NewsStore
	switch config.Config.String("STORAGE_DRIVER") {
	case "file":
		newsStore = repository.NewFileNewsRepository(config.Log, config.Config.String("NEWS_FILE_PATH"))
	default:
		newsStore = repository.NewPostgresNewsRepository(config.Log, config.DB, config.DBCache)
	}

	mediaRepository := repository.NewMediaRepository(config.Log, config.MinIO)

	newsUsecase := usecase.NewNewsUsecase(newsStore, config.Log, config.Config)
	uploadUsecase := usecase.NewUploadUsecase(mediaRepository, config.Log, config.Config)

	newsController := http.NewNewsController(newsUsecase, config.Log, config.Config)
	uploadController := http.NewUploadController(uploadUsecase, config.Log, config.Config)

	config.Router.Use(middleware.SetupCORS())
	config.Router.Use(middleware.SetupRateLimiter(config.Log))

	routeConfig := route.RouteConfig{
		App:              config.Router,
		NewsController:   newsController,
		UploadController: uploadController,
	}

	routeConfig.SetupRoute()
}

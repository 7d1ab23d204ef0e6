package setup

import (
	"context"
	"testing"

	"github.com/szarydziennik/grayjournal/internal/delivery/http"
	"github.com/szarydziennik/grayjournal/internal/delivery/http/route"
	"github.com/szarydziennik/grayjournal/internal/repository"
	"github.com/szarydziennik/grayjournal/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const TestBucketName = "grayjournal-test"

func SetupTestApp(t *testing.T, pgURL, redisURL, minioURL string) (*fiber.App, *pgxpool.Pool, *redis.Client, *minio.Client) {
	t.Log("Setting up test application...")

	ctx := context.Background()

	// 1. Create test config with test infrastructure values
	testConfig := koanf.New(".")
	_ = testConfig.Set("MINIO_HTTP", "http://")
	_ = testConfig.Set("MINIO_URL", minioURL)
	_ = testConfig.Set("MINIO_BUCKET_NAME", TestBucketName)
	_ = testConfig.Set("FEED_TIMEZONE", "UTC")

	// 2. Connect to PostgreSQL
	t.Log("Connecting to test PostgreSQL...")
	dbPool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		t.Fatalf("failed to connect to test db: %v", err)
	}

	// 3. Connect to Redis
	t.Log("Connecting to test Redis...")
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisURL,
		DB:   0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to connect to test redis: %v", err)
	}

	// 4. Connect to MinIO
	t.Log("Connecting to test MinIO...")
	minioClient, err := minio.New(minioURL, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Fatalf("failed to connect to minio: %v", err)
	}

	exists, err := minioClient.BucketExists(ctx, TestBucketName)
	if err != nil {
		t.Fatalf("failed to check minio bucket: %v", err)
	}

	if !exists {
		t.Logf("Creating MinIO bucket: %s", TestBucketName)
		err = minioClient.MakeBucket(ctx, TestBucketName, minio.MakeBucketOptions{})
		if err != nil {
			t.Fatalf("failed to create minio bucket: %v", err)
		}
	} else {
		t.Logf("MinIO bucket already exists: %s", TestBucketName)
	}

	// 5. Setup logger
	zapLogger := zap.NewExample()
	defer func() {
		_ = zapLogger.Sync()
	}()

	// 6. Setup repositories
	newsRepository := repository.NewPostgresNewsRepository(zapLogger, dbPool, redisClient)
	mediaRepository := repository.NewMediaRepository(zapLogger, minioClient)

	// 7. Setup usecases
	newsUsecase := usecase.NewNewsUsecase(newsRepository, zapLogger, testConfig)
	uploadUsecase := usecase.NewUploadUsecase(mediaRepository, zapLogger, testConfig)

	// 8. Setup controllers
	newsController := http.NewNewsController(newsUsecase, zapLogger, testConfig)
	uploadController := http.NewUploadController(uploadUsecase, zapLogger, testConfig)

	// 9. Setup Fiber app
	fiberApp := fiber.New(fiber.Config{
		AppName:               "grayjournal test",
		BodyLimit:             16 * 1024 * 1024,
		DisableStartupMessage: true,
		DisableKeepalive:      true, // Important for tests
	})

	// 10. Setup routes
	routeConfig := route.RouteConfig{
		App:              fiberApp,
		NewsController:   newsController,
		UploadController: uploadController,
	}

	routeConfig.SetupRoute()

	t.Log("Test application setup completed successfully")

	return fiberApp, dbPool, redisClient, minioClient
}

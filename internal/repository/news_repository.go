package repository

import (
	"context"
	"errors"
	"time"

	"github.com/szarydziennik/grayjournal/internal/model"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewsStore is the backend-agnostic post store contract: whole-table read
// sorted newest-first, atomic single-row insert. The Postgres and JSON-file
// repositories are interchangeable implementations.
type NewsStore interface {
	ListNews(ctx context.Context) ([]model.News, error)
	InsertNews(ctx context.Context, news model.News) error
}

const (
	newsListCacheKey = "news:list"
	newsListCacheTTL = 30 * time.Second
)

type PostgresNewsRepository struct {
	Log     *zap.Logger
	DB      *pgxpool.Pool
	DBCache *redis.Client
}

func NewPostgresNewsRepository(zap *zap.Logger, db *pgxpool.Pool, dbCache *redis.Client) *PostgresNewsRepository {
	return &PostgresNewsRepository{
		Log:     zap,
		DB:      db,
		DBCache: dbCache,
	}
}

func (repository *PostgresNewsRepository) ListNews(ctx context.Context) ([]model.News, error) {
	if cached, ok := repository.readCache(ctx); ok {
		return cached, nil
	}

	query := "SELECT id, title, description, created_at, images FROM news ORDER BY created_at DESC, id DESC"

	rows, err := repository.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	news := []model.News{}

	for rows.Next() {
		var item model.News
		var images []byte
		err := rows.Scan(&item.Id, &item.Title, &item.Description, &item.CreatedAt, &images)
		if err != nil {
			return nil, err
		}

		err = sonic.Unmarshal(images, &item.Images)
		if err != nil {
			return nil, err
		}

		news = append(news, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	repository.fillCache(ctx, news)

	return news, nil
}

func (repository *PostgresNewsRepository) InsertNews(ctx context.Context, news model.News) error {
	images, err := sonic.Marshal(news.Images)
	if err != nil {
		return err
	}

	query := "INSERT INTO news (id, title, description, created_at, images) VALUES ($1, $2, $3, $4, $5)"

	_, err = repository.DB.Exec(ctx, query, news.Id, news.Title, news.Description, news.CreatedAt, images)
	if err != nil {
		return err
	}

	repository.invalidateCache(ctx)

	return nil
}

func (repository *PostgresNewsRepository) readCache(ctx context.Context) ([]model.News, bool) {
	if repository.DBCache == nil {
		return nil, false
	}

	cached, err := repository.DBCache.Get(ctx, newsListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			repository.Log.Warn("news list cache read failed", zap.Error(err))
		}
		return nil, false
	}

	news := []model.News{}
	err = sonic.Unmarshal(cached, &news)
	if err != nil {
		repository.Log.Warn("news list cache entry is corrupt", zap.Error(err))
		return nil, false
	}

	return news, true
}

func (repository *PostgresNewsRepository) fillCache(ctx context.Context, news []model.News) {
	if repository.DBCache == nil {
		return
	}

	b, err := sonic.Marshal(news)
	if err != nil {
		return
	}

	err = repository.DBCache.Set(ctx, newsListCacheKey, b, newsListCacheTTL).Err()
	if err != nil {
		repository.Log.Warn("news list cache write failed", zap.Error(err))
	}
}

func (repository *PostgresNewsRepository) invalidateCache(ctx context.Context) {
	if repository.DBCache == nil {
		return
	}

	err := repository.DBCache.Del(ctx, newsListCacheKey).Err()
	if err != nil {
		repository.Log.Warn("news list cache invalidation failed", zap.Error(err))
	}
}

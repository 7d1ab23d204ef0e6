package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/szarydziennik/grayjournal/internal/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileNewsRepository keeps the whole table in one JSON document shaped
// {"news": [...]} with new posts prepended. The mutex serializes the
// read-modify-write cycle so concurrent creates cannot lose updates.
type FileNewsRepository struct {
	Log  *zap.Logger
	Path string

	mu sync.Mutex
}

func NewFileNewsRepository(zap *zap.Logger, path string) *FileNewsRepository {
	return &FileNewsRepository{
		Log:  zap,
		Path: path,
	}
}

type newsDocument struct {
	News []storedNews `json:"news"`
}

type storedNews struct {
	Id          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
	Images      []model.NewsImage `json:"images"`
}

func (repository *FileNewsRepository) ListNews(ctx context.Context) ([]model.News, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	doc, err := repository.readDocument()
	if err != nil {
		return nil, err
	}

	news := make([]model.News, 0, len(doc.News))
	for _, item := range doc.News {
		news = append(news, model.News{
			Id:          item.Id,
			Title:       item.Title,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
			Images:      item.Images,
		})
	}

	// Prepend-on-create already keeps insertion order newest-first; the
	// stable sort only reorders entries created with an explicit older
	// timestamp.
	sort.SliceStable(news, func(i, j int) bool {
		return news[i].CreatedAt.After(news[j].CreatedAt)
	})

	return news, nil
}

func (repository *FileNewsRepository) InsertNews(ctx context.Context, news model.News) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	doc, err := repository.readDocument()
	if err != nil {
		return err
	}

	entry := storedNews{
		Id:          news.Id,
		Title:       news.Title,
		Description: news.Description,
		CreatedAt:   news.CreatedAt,
		Images:      news.Images,
	}
	if entry.Images == nil {
		entry.Images = []model.NewsImage{}
	}

	doc.News = append([]storedNews{entry}, doc.News...)

	return repository.writeDocument(doc)
}

func (repository *FileNewsRepository) readDocument() (newsDocument, error) {
	doc := newsDocument{News: []storedNews{}}

	b, err := os.ReadFile(repository.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("read news file: %w", err)
	}

	if len(b) == 0 {
		return doc, nil
	}

	err = sonic.Unmarshal(b, &doc)
	if err != nil {
		return doc, fmt.Errorf("decode news file: %w", err)
	}

	return doc, nil
}

func (repository *FileNewsRepository) writeDocument(doc newsDocument) error {
	b, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename keeps a crash from leaving a torn document behind.
	tmp := repository.Path + ".tmp"
	err = os.WriteFile(tmp, b, 0644)
	if err != nil {
		return fmt.Errorf("write news file: %w", err)
	}

	return os.Rename(tmp, repository.Path)
}

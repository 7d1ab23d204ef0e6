package feed

import (
	"testing"
	"time"

	"github.com/szarydziennik/grayjournal/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsAt(created time.Time, urls ...string) model.NewsResponse {
	images := make([]model.NewsImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, model.NewsImage{Url: url})
	}

	return model.NewsResponse{
		Id:        uuid.New(),
		Title:     "title",
		CreatedAt: created,
		Images:    images,
	}
}

func TestGroupByDateMergesSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 5, 21, 30, 0, 0, time.UTC)

	first := newsAt(evening, "a.jpg", "b.jpg")
	second := newsAt(morning, "c.jpg")

	groups := GroupByDate([]model.NewsResponse{first, second}, time.UTC)

	require.Len(t, groups, 1)
	assert.Equal(t, "5 March 2024", groups[0].Date)
	require.Len(t, groups[0].Posts, 2)
	assert.Equal(t, first.Id, groups[0].Posts[0].Id)
	assert.Equal(t, second.Id, groups[0].Posts[1].Id)

	// The combined sequence concatenates each post's images in post order.
	require.Len(t, groups[0].Images, 3)
	assert.Equal(t, "a.jpg", groups[0].Images[0].Url)
	assert.Equal(t, "b.jpg", groups[0].Images[1].Url)
	assert.Equal(t, "c.jpg", groups[0].Images[2].Url)
}

func TestGroupByDateSeparatesDays(t *testing.T) {
	newer := newsAt(time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC), "new.jpg")
	older := newsAt(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), "old.jpg")

	groups := GroupByDate([]model.NewsResponse{newer, older}, time.UTC)

	require.Len(t, groups, 2)
	assert.Equal(t, "6 March 2024", groups[0].Date)
	assert.Equal(t, "5 March 2024", groups[1].Date)
}

func TestGroupByDatePreservesInputOrder(t *testing.T) {
	news := []model.NewsResponse{
		newsAt(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), "1.jpg"),
		newsAt(time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), "2.jpg"),
		newsAt(time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC), "3.jpg"),
		newsAt(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), "4.jpg"),
	}

	groups := GroupByDate(news, time.UTC)

	require.Len(t, groups, 3)
	assert.Equal(t, "7 March 2024", groups[0].Date)
	assert.Equal(t, "6 March 2024", groups[1].Date)
	assert.Equal(t, "5 March 2024", groups[2].Date)
	require.Len(t, groups[1].Posts, 2)
	assert.Equal(t, news[1].Id, groups[1].Posts[0].Id)
	assert.Equal(t, news[2].Id, groups[1].Posts[1].Id)
}

func TestGroupByDateUsesLocation(t *testing.T) {
	// 23:30 UTC and 00:30 UTC the next day split in UTC but land on the
	// same calendar day two hours east.
	late := newsAt(time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC), "late.jpg")
	early := newsAt(time.Date(2024, 3, 6, 0, 30, 0, 0, time.UTC), "early.jpg")

	utcGroups := GroupByDate([]model.NewsResponse{early, late}, time.UTC)
	require.Len(t, utcGroups, 2)

	east := time.FixedZone("UTC+2", 2*60*60)
	eastGroups := GroupByDate([]model.NewsResponse{early, late}, east)
	require.Len(t, eastGroups, 1)
	assert.Equal(t, "6 March 2024", eastGroups[0].Date)
}

func TestGroupByDateNilLocationDefaultsToUTC(t *testing.T) {
	item := newsAt(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), "a.jpg")

	groups := GroupByDate([]model.NewsResponse{item}, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, "5 March 2024", groups[0].Date)
}

func TestGroupByDateEmptyList(t *testing.T) {
	groups := GroupByDate(nil, time.UTC)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

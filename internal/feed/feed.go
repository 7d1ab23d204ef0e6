package feed

import (
	"time"

	"github.com/szarydziennik/grayjournal/internal/model"
)

// DateLayout renders the grouping key. Two posts on the same calendar day in
// the feed's location land in one group regardless of time of day.
const DateLayout = "2 January 2006"

type DateGroup struct {
	Date  string               `json:"date"`
	Posts []model.NewsResponse `json:"posts"`
	// Images is the combined ordered image sequence across every post in
	// the group; the lightbox pages through this slice.
	Images []model.NewsImage `json:"images"`
}

// GroupByDate clusters an already newest-first news list by calendar date.
// Group order and in-group post order both preserve the input order, so the
// feed reads top to bottom the same way the flat list does.
func GroupByDate(news []model.NewsResponse, loc *time.Location) []DateGroup {
	if loc == nil {
		loc = time.UTC
	}

	groups := []DateGroup{}
	index := map[string]int{}

	for _, item := range news {
		key := item.CreatedAt.In(loc).Format(DateLayout)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{
				Date:   key,
				Posts:  []model.NewsResponse{},
				Images: []model.NewsImage{},
			})
		}

		groups[i].Posts = append(groups[i].Posts, item)
		groups[i].Images = append(groups[i].Images, item.Images...)
	}

	return groups
}

package feed

import (
	"testing"

	"github.com/szarydziennik/grayjournal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeImageGroup() DateGroup {
	return DateGroup{
		Date: "5 March 2024",
		Images: []model.NewsImage{
			{Url: "a.jpg"},
			{Url: "b.jpg"},
			{Url: "c.jpg"},
		},
	}
}

func TestViewerOpen(t *testing.T) {
	var viewer Viewer

	require.True(t, viewer.Open(threeImageGroup(), 1))
	assert.True(t, viewer.IsOpen())
	assert.Equal(t, 1, viewer.Index())

	current, ok := viewer.Current()
	require.True(t, ok)
	assert.Equal(t, "b.jpg", current.Url)
}

func TestViewerOpenRejectsEmptyGroup(t *testing.T) {
	var viewer Viewer

	assert.False(t, viewer.Open(DateGroup{Date: "5 March 2024"}, 0))
	assert.False(t, viewer.IsOpen())
}

func TestViewerOpenRejectsOutOfRange(t *testing.T) {
	var viewer Viewer

	assert.False(t, viewer.Open(threeImageGroup(), -1))
	assert.False(t, viewer.Open(threeImageGroup(), 3))
	assert.False(t, viewer.IsOpen())
}

func TestViewerNextWrapsAround(t *testing.T) {
	var viewer Viewer
	require.True(t, viewer.Open(threeImageGroup(), 2))

	viewer.Next()

	assert.Equal(t, 0, viewer.Index())
}

func TestViewerPrevWrapsAround(t *testing.T) {
	var viewer Viewer
	require.True(t, viewer.Open(threeImageGroup(), 0))

	viewer.Prev()

	assert.Equal(t, 2, viewer.Index())
}

func TestViewerFullCycle(t *testing.T) {
	var viewer Viewer
	require.True(t, viewer.Open(threeImageGroup(), 0))

	for i := 0; i < 3; i++ {
		viewer.Next()
	}

	// Three steps over three images lands back where it started.
	assert.Equal(t, 0, viewer.Index())
}

func TestViewerSingleImageStaysPut(t *testing.T) {
	var viewer Viewer
	group := DateGroup{Images: []model.NewsImage{{Url: "only.jpg"}}}
	require.True(t, viewer.Open(group, 0))

	viewer.Next()
	assert.Equal(t, 0, viewer.Index())

	viewer.Prev()
	assert.Equal(t, 0, viewer.Index())
}

func TestViewerClosedTransitionsAreNoOps(t *testing.T) {
	var viewer Viewer
	require.True(t, viewer.Open(threeImageGroup(), 1))
	viewer.Close()

	assert.False(t, viewer.IsOpen())

	viewer.Next()
	viewer.Prev()
	assert.Equal(t, 1, viewer.Index())

	_, ok := viewer.Current()
	assert.False(t, ok)
}

func TestViewerReopen(t *testing.T) {
	var viewer Viewer
	require.True(t, viewer.Open(threeImageGroup(), 2))
	viewer.Close()

	require.True(t, viewer.Open(threeImageGroup(), 0))
	assert.True(t, viewer.IsOpen())
	assert.Equal(t, 0, viewer.Index())
}

// Command composer submits a news entry from the terminal: it stages the
// given image files on a composer form, uploads them, and creates the post.
// Without a -title it instead prints the date-grouped feed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/szarydziennik/grayjournal/internal/client"
	"github.com/szarydziennik/grayjournal/internal/composer"
	"github.com/szarydziennik/grayjournal/internal/feed"

	"go.uber.org/zap"
)

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var (
		server      = flag.String("server", "http://localhost:8080", "base URL of the grayjournal server")
		title       = flag.String("title", "", "post title")
		description = flag.String("description", "", "post description")
		images      stringList
		captions    stringList
		locations   stringList
	)
	flag.Var(&images, "image", "image file to attach (repeatable, order preserved)")
	flag.Var(&captions, "caption", "caption for the image at the same position (repeatable)")
	flag.Var(&locations, "location", "location for the image at the same position (repeatable)")
	flag.Parse()

	log := zap.NewExample()
	defer func() {
		_ = log.Sync()
	}()

	if *title == "" && len(images) == 0 {
		printFeed(log, *server)
		return
	}

	form := composer.NewForm()
	defer form.Close()

	form.Title = *title
	form.Description = *description

	for i, path := range images {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal("failed to read image", zap.String("path", path), zap.Error(err))
		}

		pending, err := form.AddImage(filepath.Base(path), data)
		if err != nil {
			log.Fatal("failed to stage image", zap.String("path", path), zap.Error(err))
		}

		if i < len(captions) {
			pending.Caption = captions[i]
		}
		if i < len(locations) {
			pending.Location = locations[i]
		}
	}

	created, err := form.Submit(context.Background(), client.New(*server))
	if err != nil {
		log.Fatal("submission failed", zap.Error(err))
	}

	fmt.Printf("created post %s with %d image(s)\n", created.Id, len(created.Images))
}

func printFeed(log *zap.Logger, server string) {
	groups, err := client.New(server).GetFeed(context.Background())
	if err != nil {
		log.Fatal("failed to fetch feed", zap.Error(err))
	}

	for _, group := range groups {
		fmt.Println(group.Date)
		for _, post := range group.Posts {
			fmt.Printf("  %s: %s\n", post.Title, post.Description)
		}

		var viewer feed.Viewer
		if viewer.Open(group, 0) {
			for i := 0; i < len(group.Images); i++ {
				image, _ := viewer.Current()
				caption := image.Description
				if caption == "" {
					caption = image.Url
				}
				fmt.Printf("    [%d/%d] %s\n", viewer.Index()+1, len(group.Images), caption)
				viewer.Next()
			}
			viewer.Close()
		}
	}
}

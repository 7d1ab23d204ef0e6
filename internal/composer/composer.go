// Package composer holds the authoring-form state: in-progress title and
// description plus an ordered list of pending images with editable caption
// and location. Nothing touches the network until Submit.
package composer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/szarydziennik/grayjournal/internal/constant"
	"github.com/szarydziennik/grayjournal/internal/model"
	"github.com/szarydziennik/grayjournal/internal/util"

	"golang.org/x/sync/errgroup"
)

// Service is what a submission needs from the backend: one upload per image,
// one create for the whole post. client.Client satisfies it.
type Service interface {
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
	CreateNews(ctx context.Context, payload model.NewsCreateRequest) (model.NewsResponse, error)
}

type PendingImage struct {
	Filename string
	Caption  string
	Location string

	data    []byte
	preview string
}

// Preview returns the path of the local preview file. It is valid until the
// image is removed or the form is closed.
func (p *PendingImage) Preview() string {
	return p.preview
}

type Form struct {
	Title       string
	Description string

	images []*PendingImage
}

func NewForm() *Form {
	return &Form{}
}

// AddImage registers a picked file: the preview handle is produced
// immediately, without any network call. Files over the size threshold are
// recompressed on intake; a compression failure aborts intake of that file
// only.
func (f *Form) AddImage(filename string, data []byte) (*PendingImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image %s is empty", filename)
	}

	if len(data) > constant.COMPRESS_THRESHOLD {
		compressed, err := util.CompressImage(data, constant.COMPRESS_MAX_DIMENSION, constant.COMPRESS_QUALITY)
		if err != nil {
			return nil, fmt.Errorf("compress %s: %w", filename, err)
		}
		data = compressed
	}

	preview, err := writePreview(filename, data)
	if err != nil {
		return nil, err
	}

	image := &PendingImage{
		Filename: filename,
		data:     data,
		preview:  preview,
	}
	f.images = append(f.images, image)

	return image, nil
}

func (f *Form) Images() []*PendingImage {
	return f.images
}

// RemoveImage drops a pending image and releases its preview file.
func (f *Form) RemoveImage(i int) error {
	if i < 0 || i >= len(f.images) {
		return errors.New("no such image")
	}

	f.images[i].release()
	f.images = append(f.images[:i], f.images[i+1:]...)

	return nil
}

// Close releases every preview; call it when the form is torn down.
func (f *Form) Close() {
	for _, image := range f.images {
		image.release()
	}
	f.images = nil
}

// Submit validates the form, uploads every pending image concurrently, and
// creates the post once all uploads succeeded. Any single upload failure
// aborts the whole submission with an error naming the failed file; objects
// already stored for sibling images are not rolled back. On any failure the
// form keeps its state so the user can retry; on success it is reset.
func (f *Form) Submit(ctx context.Context, api Service) (model.NewsResponse, error) {
	var created model.NewsResponse

	if f.Title == "" {
		return created, errors.New("title is required")
	}
	if f.Description == "" {
		return created, errors.New("description is required")
	}
	if len(f.images) == 0 {
		return created, errors.New("attach at least one image")
	}

	uploaded := make([]model.NewsImage, len(f.images))

	g, gctx := errgroup.WithContext(ctx)
	for i, image := range f.images {
		g.Go(func() error {
			url, err := api.UploadImage(gctx, image.Filename, image.data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", image.Filename, err)
			}

			uploaded[i] = model.NewsImage{
				Url:         url,
				Description: image.Caption,
				Location:    image.Location,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return created, err
	}

	now := time.Now().UTC()
	created, err := api.CreateNews(ctx, model.NewsCreateRequest{
		Title:       f.Title,
		Description: f.Description,
		Images:      uploaded,
		CreatedAt:   &now,
	})
	if err != nil {
		return created, err
	}

	f.reset()

	return created, nil
}

func (f *Form) reset() {
	f.Close()
	f.Title = ""
	f.Description = ""
}

func (p *PendingImage) release() {
	if p.preview != "" {
		_ = os.Remove(p.preview)
		p.preview = ""
	}
	p.data = nil
}

func writePreview(filename string, data []byte) (string, error) {
	file, err := os.CreateTemp("", "preview-*"+filepath.Ext(filename))
	if err != nil {
		return "", fmt.Errorf("create preview for %s: %w", filename, err)
	}

	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write preview for %s: %w", filename, err)
	}

	return file.Name(), nil
}

// Package upload reads reference images from multipart submissions.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// FieldName is the multipart field holding attached pictures.
const FieldName = "images"

type Limits struct {
	MaxImages int
	MaxBytes  int64
}

// ReadImages returns the image/* files of form[FieldName] in submission order.
// Other files are dropped. Too many images or an oversized one is a
// validation error.
func ReadImages(form *multipart.Form, limits Limits) ([]models.Image, error) {
	if form == nil || len(form.File[FieldName]) == 0 {
		return nil, nil
	}

	headers := make([]*multipart.FileHeader, 0, len(form.File[FieldName]))
	for _, fh := range form.File[FieldName] {
		// browsers send an empty part when no file was picked
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		if fh.Size > limits.MaxBytes {
			return nil, fmt.Errorf("%w: %s is larger than %d bytes", models.ErrValidation, fh.Filename, limits.MaxBytes)
		}
		headers = append(headers, fh)
	}

	read := make([]*models.Image, len(headers))
	var g errgroup.Group
	for i, fh := range headers {
		g.Go(func() error {
			img, err := readOne(fh, limits.MaxBytes)
			if err != nil {
				return err
			}
			read[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	images := make([]models.Image, 0, len(read))
	for _, img := range read {
		if img != nil {
			images = append(images, *img)
		}
	}
	if len(images) > limits.MaxImages {
		return nil, fmt.Errorf("%w: at most %d images can be attached", models.ErrValidation, limits.MaxImages)
	}
	return images, nil
}

// readOne returns nil for a file that is not an image.
func readOne(fh *multipart.FileHeader, maxBytes int64) (*models.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", models.ErrValidation, fh.Filename, maxBytes)
	}

	mimeType := DetectType(fh.Header.Get("Content-Type"), data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, nil
	}
	return &models.Image{Data: data, MIMEType: mimeType}, nil
}

// DetectType trusts a specific declared type and sniffs the content when the
// declared one is missing or generic.
func DetectType(declared string, data []byte) string {
	declared = strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	switch declared {
	case "", "application/octet-stream", "binary/octet-stream":
		return mimetype.Detect(data).String()
	}
	return declared
}

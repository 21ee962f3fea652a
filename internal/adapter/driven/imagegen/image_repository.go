package imagegen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/diillson/savings-post-go/internal/domain/repository"
	"github.com/diillson/savings-post-go/internal/shared/types"
	"github.com/disintegration/imaging"
)

// ImageRepositoryImpl implementa o ImageRepository sobre net/http.
type ImageRepositoryImpl struct {
	client *http.Client
}

// NewImageRepository cria uma nova implementação do ImageRepository.
// The client has no timeout of its own; deadlines come from the request context.
func NewImageRepository() repository.ImageRepository {
	return &ImageRepositoryImpl{
		client: &http.Client{},
	}
}

// DownloadImage streams the response body of imageURL into outputPath.
// Any previous file at outputPath is truncated. A failure mid-stream leaves the partial file.
func (r *ImageRepositoryImpl) DownloadImage(ctx context.Context, imageURL, outputPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: new request: %v", types.ErrImageRequestFailed, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrImageRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%w: %d", types.ErrUnexpectedStatus, resp.StatusCode)
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("error creating image file: %w", err)
	}

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		_ = file.Close()
		return written, fmt.Errorf("error writing image stream: %w", err)
	}

	if err := file.Close(); err != nil {
		return written, fmt.Errorf("error closing image file: %w", err)
	}

	return written, nil
}

// CreateThumbnail gera uma miniatura mantendo a proporção da imagem original.
func (r *ImageRepositoryImpl) CreateThumbnail(srcPath, dstPath string, width int) error {
	if width <= 0 {
		return fmt.Errorf("invalid thumbnail width: %d", width)
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("error decoding image %s: %w", srcPath, err)
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, dstPath); err != nil {
		return fmt.Errorf("error saving thumbnail %s: %w", dstPath, err)
	}

	return nil
}

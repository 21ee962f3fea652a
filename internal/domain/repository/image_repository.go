package repository

import "context"

// ImageRepository downloads generated images to disk.
type ImageRepository interface {
	// DownloadImage issues a GET to imageURL and streams the body to outputPath,
	// creating the parent directory when needed.
	DownloadImage(ctx context.Context, imageURL, outputPath string) (int64, error)
	// CreateThumbnail resizes the image at srcPath to width pixels and saves it to dstPath.
	CreateThumbnail(srcPath, dstPath string, width int) error
}

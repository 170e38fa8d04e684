// Package media provides the image upload pipeline for post body and
// featured images.
package media

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/oklog/ulid/v2"
	"github.com/vincent-petithory/dataurl"
)

// responsiveWidths are the generated sizes for srcset output, widest first.
var responsiveWidths = []int{1920, 1080, 600}

// ImageProcessor writes uploaded images under a media base path and
// generates responsive WebP renditions alongside the original.
type ImageProcessor struct {
	basePath string
}

// NewImageProcessor creates an ImageProcessor rooted at basePath.
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{basePath: basePath}
}

// UploadResult describes a stored image and its responsive renditions.
type UploadResult struct {
	URL    string
	SrcSet string
	Paths  []string
}

// ProcessDataURL decodes a data: URL upload, stores the original, and
// generates WebP renditions. The returned URL points at the original; the
// srcset lists the renditions widest first.
func (p *ImageProcessor) ProcessDataURL(data, subdir string) (*UploadResult, error) {
	if data == "" {
		return nil, fmt.Errorf("empty image data")
	}

	du, err := dataurl.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data URL: %w", err)
	}
	if du.Type != "image" {
		return nil, fmt.Errorf("unsupported upload type: %s/%s", du.Type, du.Subtype)
	}

	fileID := ulid.Make().String()
	ext := extensionFor(du.Subtype)

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	filename := fmt.Sprintf("%s-%d.%s", fileID, time.Now().UnixMilli(), ext)
	originalPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(originalPath, du.Data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	result := &UploadResult{
		URL:   mediaURL(subdir, filename),
		Paths: []string{originalPath},
	}

	// SVG has no raster renditions; serve the original as-is.
	if ext == "svg" {
		return result, nil
	}

	srcSet, paths, err := p.generateRenditions(du.Data, fileID, targetDir, subdir)
	if err != nil {
		os.Remove(originalPath)
		return nil, err
	}
	result.SrcSet = srcSet
	result.Paths = append(result.Paths, paths...)

	return result, nil
}

// generateRenditions resizes the decoded image to each responsive width and
// saves WebP renditions, returning the assembled srcset.
func (p *ImageProcessor) generateRenditions(raw []byte, fileID, targetDir, subdir string) (string, []string, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var srcSetParts []string
	var paths []string

	for _, width := range responsiveWidths {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)
		filename := fmt.Sprintf("%s_%dpx.webp", fileID, width)
		path := filepath.Join(targetDir, filename)

		if err := webp.Save(path, resized, &webp.Options{Quality: 80}); err != nil {
			for _, prev := range paths {
				os.Remove(prev)
			}
			return "", nil, fmt.Errorf("failed to save %dpx rendition: %w", width, err)
		}

		paths = append(paths, path)
		srcSetParts = append(srcSetParts, fmt.Sprintf("%s %dw", mediaURL(subdir, filename), width))
	}

	return strings.Join(srcSetParts, ", "), paths, nil
}

// mediaURL builds the serving URL for a stored file.
func mediaURL(subdir, filename string) string {
	url := filepath.Join("/media", subdir, filename)
	return strings.ReplaceAll(url, "\\", "/")
}

// extensionFor maps a MIME subtype to a file extension.
func extensionFor(subtype string) string {
	switch strings.ToLower(subtype) {
	case "svg+xml":
		return "svg"
	case "jpeg", "jpg":
		return "jpg"
	case "webp":
		return "webp"
	default:
		return "png"
	}
}

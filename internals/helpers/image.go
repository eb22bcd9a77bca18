package helper

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadsDir    = "uploads"
	maxImageWidth = 1024
	webpQuality   = 80
)

// SaveImageAsWebP converts an uploaded image to webp (resized to at
// most maxImageWidth) and stores it under uploads/<folder>/. Returns
// the public path served by the static handler.
func SaveImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(uploadsDir, sanitizeFolder(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ".webp"
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if err := webp.Encode(dst, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	return "/" + uploadsDir + "/" + sanitizeFolder(folder) + "/" + name, nil
}

// DeleteUpload removes a previously stored upload. Best effort.
func DeleteUpload(publicPath string) {
	clean := filepath.Clean(strings.TrimPrefix(publicPath, "/"))
	if !strings.HasPrefix(clean, uploadsDir+string(os.PathSeparator)) {
		return
	}
	_ = os.Remove(clean)
}

func sanitizeFolder(folder string) string {
	folder = strings.ToLower(strings.TrimSpace(folder))
	var b strings.Builder
	for _, r := range folder {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "misc"
	}
	return b.String()
}

package presskit

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 80
)

// copyStatic mirrors the static dir into dstDir, downscaling oversized
// raster images on the way. Formats and file names are preserved so paths
// referenced from content and front matter stay valid. A missing static dir
// is not an error.
func copyStatic(srcDir, dstDir string) error {
	if _, err := os.Stat(srcDir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dstDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg", ".png":
			return optimizeImage(path, dst)
		default:
			return copyFile(path, dst)
		}
	})
}

// optimizeImage writes src to dst, downscaled to maxImageWidth when wider.
// Images at or under the limit are copied byte-for-byte, never re-encoded.
func optimizeImage(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("presskit: open image %s: %w", src, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("presskit: decode image %s: %w", src, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageWidth {
		return copyFile(src, dst)
	}

	newH := h * maxImageWidth / w
	scaled := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("presskit: create image %s: %w", dst, err)
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, scaled)
	default:
		err = jpeg.Encode(out, scaled, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return fmt.Errorf("presskit: encode image %s: %w", dst, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("presskit: copy %s: %w", src, err)
	}
	return nil
}

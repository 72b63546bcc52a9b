package filemgr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const maxUploadSize = 10 << 20

// Decoded dimension ceiling; a decompression-bomb guard independent of
// the byte-size limit.
const (
	maxImageWidth  = 8000
	maxImageHeight = 8000
)

// SaveFile writes one validated file into destDir and returns its stored
// filename.
func SaveFile(reader io.Reader, header *multipart.FileHeader, destDir string, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	picType := detectPicType(destDir)
	if picType == "" {
		return "", fmt.Errorf("unknown picture type for folder: %s", destDir)
	}

	if !isExtensionAllowed(ext, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, picType)
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if mimeType == "application/octet-stream" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}
	if !isMIMEAllowed(mimeType, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, picType)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	// keep a readable sanitized name; the uuid prefix prevents collisions
	filename := uuid.New().String()[:8] + "_" + ensureSafeFilename(header.Filename, ext)
	fullPath := filepath.Join(destDir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := out.Write(buf[:n]); err != nil {
		out.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write header: %w", err)
	}

	// Read one byte past the budget so an oversize file is detected
	// instead of silently truncated.
	written, err := io.Copy(out, io.LimitReader(reader, maxSize-int64(n)+1))
	if err != nil {
		out.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write body: %w", err)
	}
	if written+int64(n) > maxSize {
		out.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, maxSize)
	}

	return filename, nil
}

// SaveFileForEntity stores an uploaded image for an entity and returns
// the public URL to persist on the document. Images are re-encoded
// (dropping EXIF) and get a thumbnail alongside the original.
func SaveFileForEntity(file multipart.File, header *multipart.FileHeader, entity EntityType, picType PictureType) (string, error) {
	defer file.Close()

	if !validEntity(entity) {
		return "", fmt.Errorf("unsupported entity type: %s", entity)
	}
	dest := ResolvePath(entity, picType)

	buf, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err == nil {
		if derr := ValidateImageDimensions(img, maxImageWidth, maxImageHeight); derr != nil {
			return "", derr
		}
		if strip, serr := stripEXIF(img); serr == nil {
			buf = strip.Bytes()
		}

		fileName, err := SaveFile(bytes.NewReader(buf), header, dest, maxUploadSize)
		if err != nil {
			return "", err
		}
		if terr := generateThumbnail(img, entity, fileName); terr != nil {
			// thumbnail loss is tolerable; the original is saved
			fmt.Println("thumbnail generation failed:", terr)
		}
		return PublicURL(entity, picType, fileName), nil
	}

	// fallback for formats image.Decode cannot handle
	fileName, err := SaveFile(bytes.NewReader(buf), header, dest, maxUploadSize)
	if err != nil {
		return "", err
	}
	return PublicURL(entity, picType, fileName), nil
}

// SaveFormFile pulls the named field out of a parsed multipart form and
// stores it for the entity. Returns "" with no error when the field is
// absent, so optional image fields stay optional.
func SaveFormFile(form *multipart.Form, field string, entity EntityType, picType PictureType) (string, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return "", nil
	}
	file, err := headers[0].Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", field, err)
	}
	return SaveFileForEntity(file, headers[0], entity, picType)
}

// SaveFormFiles stores every file under the named field, aborting on the
// first failure so a partially uploaded gallery never reaches the
// document store.
func SaveFormFiles(form *multipart.Form, field string, entity EntityType, picType PictureType) ([]string, error) {
	headers := form.File[field]
	urls := make([]string, 0, len(headers))
	for _, hdr := range headers {
		file, err := hdr.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", field, err)
		}
		url, err := SaveFileForEntity(file, hdr, entity, picType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func generateThumbnail(img image.Image, entity EntityType, baseFilename string) error {
	resized := imaging.Resize(img, 200, 0, imaging.Lanczos) // maintain aspect ratio
	name := strings.TrimSuffix(baseFilename, filepath.Ext(baseFilename)) + ".jpg"
	path := filepath.Join(ResolvePath(entity, PicThumb), name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	return jpeg.Encode(out, resized, &jpeg.Options{Quality: 85})
}

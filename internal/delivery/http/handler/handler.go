// Package handler - HTTP обработчики поверх use case слоя.
package handler

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// queryLang достает язык из запроса, пустой параметр - язык по умолчанию
func queryLang(c *fiber.Ctx) (string, error) {
	lang := langs.Resolve(c.Query("lang"))
	if lang == "" {
		return "", errors.ErrUnsupportedLanguage
	}
	return lang, nil
}

// formImage достает необязательную картинку из multipart-поля image
func formImage(c *fiber.Ctx, maxSize int64) ([]byte, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// Поле не прислано
		return nil, nil
	}

	if fh.Size > maxSize {
		return nil, errors.Validation("Image exceeds maximum size of %d bytes", maxSize)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return nil, errors.Validation("Unsupported image format %q, allowed: png, jpg, jpeg, webp", ext)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Validation("Cannot read uploaded image")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Validation("Cannot read uploaded image")
	}
	return data, nil
}

package assets

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
)

// Store хранит изображения сущностей на файловой системе.
// Структура каталогов: {uploadDir}/img/{kind}/{slug}/{slug}.png
type Store struct {
	fs           afero.Fs
	uploadDir    string
	baseURL      string
	maxImageSize int64
	logger       *zap.Logger
}

// NewStore создает новое хранилище изображений
func NewStore(fs afero.Fs, cfg *config.AssetsConfig, logger *zap.Logger) repository.AssetStoreRepository {
	return &Store{
		fs:           fs,
		uploadDir:    cfg.UploadDir,
		baseURL:      cfg.BaseURL,
		maxImageSize: cfg.MaxImageSize,
		logger:       logger,
	}
}

func (s *Store) folderPath(kind, slug string) string {
	return filepath.Join(s.uploadDir, "img", kind, slug)
}

func (s *Store) publicPath(kind, slug string) string {
	return path.Join(s.baseURL, "img", kind, slug, slug+".png")
}

// SaveImage сохраняет изображение и возвращает публичный путь
func (s *Store) SaveImage(ctx context.Context, kind, slug string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.Validation("Image data is empty")
	}
	if int64(len(data)) > s.maxImageSize {
		return "", errors.Validation("Image exceeds maximum size of %d bytes", s.maxImageSize)
	}

	dir := s.folderPath(kind, slug)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("Failed to create image folder", zap.String("dir", dir), zap.Error(err))
		return "", fmt.Errorf("create image folder: %w", err)
	}

	file := filepath.Join(dir, slug+".png")
	if err := afero.WriteFile(s.fs, file, data, 0o644); err != nil {
		s.logger.Error("Failed to write image", zap.String("file", file), zap.Error(err))
		return "", fmt.Errorf("write image: %w", err)
	}

	return s.publicPath(kind, slug), nil
}

// RenameFolder переносит изображения при смене слага и возвращает новый путь.
// Если у сущности нет своей папки, возвращается путь к изображению по умолчанию.
func (s *Store) RenameFolder(ctx context.Context, kind, oldSlug, newSlug string) (string, error) {
	oldDir := s.folderPath(kind, oldSlug)
	newDir := s.folderPath(kind, newSlug)

	exists, err := afero.DirExists(s.fs, oldDir)
	if err != nil {
		return "", fmt.Errorf("check image folder: %w", err)
	}
	if !exists {
		return s.DefaultPath(kind), nil
	}

	if err := s.fs.Rename(oldDir, newDir); err != nil {
		s.logger.Error("Failed to rename image folder",
			zap.String("old", oldDir), zap.String("new", newDir), zap.Error(err))
		return "", fmt.Errorf("rename image folder: %w", err)
	}

	// Файл внутри папки тоже носит имя слага
	oldFile := filepath.Join(newDir, oldSlug+".png")
	newFile := filepath.Join(newDir, newSlug+".png")
	if err := s.fs.Rename(oldFile, newFile); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("rename image file: %w", err)
	}

	return s.publicPath(kind, newSlug), nil
}

// DeleteFolder удаляет все изображения сущности
func (s *Store) DeleteFolder(ctx context.Context, kind, slug string) error {
	dir := s.folderPath(kind, slug)
	if err := s.fs.RemoveAll(dir); err != nil {
		s.logger.Error("Failed to delete image folder", zap.String("dir", dir), zap.Error(err))
		return fmt.Errorf("delete image folder: %w", err)
	}
	return nil
}

// DefaultPath возвращает путь к изображению по умолчанию
func (s *Store) DefaultPath(kind string) string {
	return path.Join(s.baseURL, "img", kind, domain.DefaultImageName)
}

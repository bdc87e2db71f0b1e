package repository

import (
	"context"

	"github.com/events-directory/internal/domain"
)

// TranslatorRepository определяет методы для машинного перевода
type TranslatorRepository interface {
	// Translate переводит текст между поддерживаемыми языками
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// GeocodeResult - результат геокодирования адреса
type GeocodeResult struct {
	Label    string
	Location domain.GeoPoint
}

// GeocoderRepository определяет методы для геокодирования адресов
type GeocoderRepository interface {
	// Geocode возвращает координаты и нормализованный адрес по строке запроса
	Geocode(ctx context.Context, query string) (*GeocodeResult, error)
}

// CityNames - локализованные названия города из справочника
type CityNames struct {
	NameEn string
	NameRu string
	NameHe string
}

// GeoDirectoryRepository определяет методы для проверки городов по
// географическому справочнику
type GeoDirectoryRepository interface {
	// LookupCity ищет город по английскому названию и возвращает его
	// каноническое имя с переводами
	LookupCity(ctx context.Context, nameEn string) (*CityNames, error)
}

// AssetStoreRepository определяет методы для хранения изображений
type AssetStoreRepository interface {
	// SaveImage сохраняет изображение и возвращает публичный путь
	SaveImage(ctx context.Context, kind, slug string, data []byte) (string, error)

	// RenameFolder переносит изображения при смене слага и возвращает новый путь
	RenameFolder(ctx context.Context, kind, oldSlug, newSlug string) (string, error)

	// DeleteFolder удаляет все изображения сущности
	DeleteFolder(ctx context.Context, kind, slug string) error

	// DefaultPath возвращает путь к изображению по умолчанию
	DefaultPath(kind string) string
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
	"github.com/events-directory/internal/pkg/translit"
)

// AddressResolver переводит адрес на иврит, геокодирует его и строит
// русский вариант из нормализованной метки геокодера. Геокодер отвечает
// точнее всего на ивритские запросы в пределах страны.
type AddressResolver struct {
	translator repository.TranslatorRepository
	geocoder   repository.GeocoderRepository
	logger     *zap.Logger
}

func NewAddressResolver(
	translator repository.TranslatorRepository,
	geocoder repository.GeocoderRepository,
	logger *zap.Logger,
) *AddressResolver {
	return &AddressResolver{
		translator: translator,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// Resolve заполняет все языки адреса и возвращает координаты.
// Адрес на иврите заменяется нормализованной меткой геокодера.
func (r *AddressResolver) Resolve(ctx context.Context, address *domain.LocalizedText) (*domain.GeoPoint, error) {
	source, sourceLang, ok := address.Source()
	if !ok {
		return nil, errors.ErrNoLanguageProvided
	}

	query, err := r.translator.Translate(ctx, source, sourceLang, langs.HE)
	if err != nil {
		r.logger.Error("Address translation to Hebrew failed", zap.Error(err))
		return nil, err
	}

	result, err := r.geocoder.Geocode(ctx, query)
	if err != nil {
		r.logger.Error("Address geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	address.He = result.Label

	ru, err := r.translator.Translate(ctx, result.Label, langs.HE, langs.RU)
	if err != nil {
		r.logger.Error("Address translation to Russian failed", zap.Error(err))
		return nil, err
	}
	address.Ru = translit.EnToRu(ru)

	if address.En == "" {
		en, err := r.translator.Translate(ctx, result.Label, langs.HE, langs.EN)
		if err != nil {
			r.logger.Error("Address translation to English failed", zap.Error(err))
			return nil, err
		}
		address.En = en
	}

	return &result.Location, nil
}

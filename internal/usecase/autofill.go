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

// AutoFiller дополняет частично заполненный мультиязычный текст недостающими
// языками: перевод через внешний сервис плюс транслитерация латинских
// остатков, которые переводчик пропустил без изменений.
type AutoFiller struct {
	translator repository.TranslatorRepository
	logger     *zap.Logger
}

func NewAutoFiller(translator repository.TranslatorRepository, logger *zap.Logger) *AutoFiller {
	return &AutoFiller{
		translator: translator,
		logger:     logger,
	}
}

// Fill заполняет недостающие языки текста. Источником служит первый
// заполненный язык в порядке en, he, ru. Либо заполняются все языки,
// либо операция завершается ошибкой целиком.
func (f *AutoFiller) Fill(ctx context.Context, text *domain.LocalizedText) error {
	source, sourceLang, ok := text.Source()
	if !ok {
		return errors.ErrNoLanguageProvided
	}

	for _, target := range langs.Supported {
		if text.Get(target) != "" {
			continue
		}

		translated, err := f.translator.Translate(ctx, source, sourceLang, target)
		if err != nil {
			f.logger.Error("Auto-fill translation failed",
				zap.String("source_lang", sourceLang),
				zap.String("target_lang", target),
				zap.Error(err))
			return err
		}

		// Переводчик иногда возвращает латинские имена собственные как есть,
		// транслитерация добивает их посимвольно
		switch target {
		case langs.RU:
			translated = translit.EnToRu(translated)
		case langs.HE:
			translated = translit.EnToHe(translated)
		}

		text.Set(target, translated)
	}

	return nil
}

// EnsureUniqueName проверяет, что исходное значение имени не занято другой
// сущностью того же типа, до первого обращения к переводчику
func EnsureUniqueName(
	ctx context.Context,
	lookup func(ctx context.Context, name string) error,
	text domain.LocalizedText,
	entity string,
) error {
	source, _, ok := text.Source()
	if !ok {
		return errors.ErrNoLanguageProvided
	}

	err := lookup(ctx, source)
	if err == nil {
		return errors.Conflict("%s with name %q already exists", entity, source)
	}
	if errors.IsCode(err, errors.CodeNotFound) {
		return nil
	}
	return err
}

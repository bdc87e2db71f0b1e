package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/events-directory/internal/pkg/errors"
)

var validate *validator.Validate

// Алфавитные ограничения мультиязычных полей: буквы, пробелы и дефисы
var (
	latinNameRe    = regexp.MustCompile(`^[a-zA-Z\s-]+$`)
	cyrillicNameRe = regexp.MustCompile(`^[а-яА-ЯёЁ\s-]+$`)
	hebrewNameRe   = regexp.MustCompile(`^[\x{0590}-\x{05FF}\s-]+$`)
	phoneRe        = regexp.MustCompile(`^\+?\d{9,15}$`)
)

func init() {
	validate = validator.New()

	mustRegister("name_en", latinNameRe)
	mustRegister("name_ru", cyrillicNameRe)
	mustRegister("name_he", hebrewNameRe)
	mustRegister("phone", phoneRe)
}

func mustRegister(tag string, re *regexp.Regexp) {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate - валидация структуры; нарушения возвращаются как
// VALIDATION_ERROR с перечнем полей в details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validation("Invalid request parameters")
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}

	return apperrors.Validation("Invalid request parameters").WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

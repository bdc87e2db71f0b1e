package domain

import (
	"strings"
	"time"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Типы цены события
const (
	PriceFree         = "free"
	PriceTBA          = "tba"
	PriceFixed        = "fixed"
	PriceStartingFrom = "starting_from"
)

func IsValidPriceType(pt string) bool {
	switch pt {
	case PriceFree, PriceTBA, PriceFixed, PriceStartingFrom:
		return true
	}
	return false
}

// ValidatePrice - price_amount обязателен для fixed/starting_from и
// запрещён для free/tba.
func ValidatePrice(priceType string, amount *int) error {
	if !IsValidPriceType(priceType) {
		return errors.Validation("Invalid price_type. Must be one of: free, tba, fixed, starting_from")
	}

	switch priceType {
	case PriceFixed, PriceStartingFrom:
		if amount == nil {
			return errors.Validation("Parameter 'price_amount' is required for price_type '%s'", priceType)
		}
		if *amount < 0 {
			return errors.Validation("Parameter 'price_amount' must be non-negative")
		}
	default:
		if amount != nil {
			return errors.Validation("Parameter 'price_amount' is not allowed for price_type '%s'", priceType)
		}
	}
	return nil
}

// Event - событие афиши. Даты хранятся в UTC; слаг выводится из
// английского названия и локального времени начала.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NameEn        string             `bson:"name_en" json:"name_en"`
	NameRu        string             `bson:"name_ru" json:"name_ru"`
	NameHe        string             `bson:"name_he" json:"name_he"`
	DescriptionEn string             `bson:"description_en" json:"description_en"`
	DescriptionRu string             `bson:"description_ru" json:"description_ru"`
	DescriptionHe string             `bson:"description_he" json:"description_he"`
	VenueID       primitive.ObjectID `bson:"venue" json:"venue_id"`
	EventTypeID   primitive.ObjectID `bson:"event_type" json:"event_type_id"`
	StartDate     time.Time          `bson:"start_date" json:"start_date"`
	EndDate       time.Time          `bson:"end_date" json:"end_date"`
	PriceType     string             `bson:"price_type" json:"price_type"`
	PriceAmount   *int               `bson:"price_amount,omitempty" json:"price_amount,omitempty"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
	ImagePath     string             `bson:"image_path" json:"image_path"`
	Slug          string             `bson:"slug" json:"slug"`
}

func (e *Event) Name(lang string) string {
	switch lang {
	case langs.RU:
		return e.NameRu
	case langs.HE:
		return e.NameHe
	default:
		return e.NameEn
	}
}

func (e *Event) Description(lang string) string {
	switch lang {
	case langs.RU:
		return e.DescriptionRu
	case langs.HE:
		return e.DescriptionHe
	default:
		return e.DescriptionEn
	}
}

func (e *Event) Names() LocalizedText {
	return LocalizedText{En: e.NameEn, Ru: e.NameRu, He: e.NameHe}
}

func (e *Event) HasCustomImage() bool {
	return e.ImagePath != "" && !strings.HasSuffix(e.ImagePath, DefaultImageName)
}

// ValidateDates - начало строго раньше окончания
func (e *Event) ValidateDates() error {
	if !e.StartDate.Before(e.EndDate) {
		return errors.Validation("End date must be after start date")
	}
	return nil
}

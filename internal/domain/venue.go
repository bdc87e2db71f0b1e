package domain

import (
	"strings"

	"github.com/events-directory/internal/pkg/langs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultImageName - имя картинки-заглушки; папка с ней никогда не
// переименовывается и не удаляется вместе с сущностью.
const DefaultImageName = "default.png"

// Venue - площадка. location всегда согласован с address_en: при
// изменении адреса координаты выводятся заново через геокодер.
type Venue struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NameEn        string             `bson:"name_en" json:"name_en"`
	NameRu        string             `bson:"name_ru" json:"name_ru"`
	NameHe        string             `bson:"name_he" json:"name_he"`
	AddressEn     string             `bson:"address_en" json:"address_en"`
	AddressRu     string             `bson:"address_ru" json:"address_ru"`
	AddressHe     string             `bson:"address_he" json:"address_he"`
	DescriptionEn string             `bson:"description_en" json:"description_en"`
	DescriptionRu string             `bson:"description_ru" json:"description_ru"`
	DescriptionHe string             `bson:"description_he" json:"description_he"`
	VenueTypeID   primitive.ObjectID `bson:"venue_type" json:"venue_type_id"`
	CityID        primitive.ObjectID `bson:"city" json:"city_id"`
	Location      GeoPoint           `bson:"location" json:"location"`
	Website       string             `bson:"website,omitempty" json:"website,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
	ImagePath     string             `bson:"image_path" json:"image_path"`
	Slug          string             `bson:"slug" json:"slug"`
}

func (v *Venue) Name(lang string) string {
	switch lang {
	case langs.RU:
		return v.NameRu
	case langs.HE:
		return v.NameHe
	default:
		return v.NameEn
	}
}

func (v *Venue) Address(lang string) string {
	switch lang {
	case langs.RU:
		return v.AddressRu
	case langs.HE:
		return v.AddressHe
	default:
		return v.AddressEn
	}
}

func (v *Venue) Description(lang string) string {
	switch lang {
	case langs.RU:
		return v.DescriptionRu
	case langs.HE:
		return v.DescriptionHe
	default:
		return v.DescriptionEn
	}
}

func (v *Venue) Names() LocalizedText {
	return LocalizedText{En: v.NameEn, Ru: v.NameRu, He: v.NameHe}
}

// HasCustomImage - загружена ли своя картинка вместо заглушки
func (v *Venue) HasCustomImage() bool {
	return v.ImagePath != "" && !strings.HasSuffix(v.ImagePath, DefaultImageName)
}

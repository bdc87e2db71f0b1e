package domain

import (
	"github.com/events-directory/internal/pkg/langs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// City - город афиши. Названия на трёх языках уникальны и приходят из
// GeoNames при создании, а не из переводчика.
type City struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NameEn string             `bson:"name_en" json:"name_en"`
	NameRu string             `bson:"name_ru" json:"name_ru"`
	NameHe string             `bson:"name_he" json:"name_he"`
	Slug   string             `bson:"slug" json:"slug"`
}

func (c *City) Name(lang string) string {
	switch lang {
	case langs.RU:
		return c.NameRu
	case langs.HE:
		return c.NameHe
	default:
		return c.NameEn
	}
}

func (c *City) Names() LocalizedText {
	return LocalizedText{En: c.NameEn, Ru: c.NameRu, He: c.NameHe}
}

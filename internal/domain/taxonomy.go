package domain

import (
	"github.com/events-directory/internal/pkg/langs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueType - тип площадки (theatre, club, gallery...).
// Названия хранятся в нижнем регистре.
type VenueType struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NameEn string             `bson:"name_en" json:"name_en"`
	NameRu string             `bson:"name_ru" json:"name_ru"`
	NameHe string             `bson:"name_he" json:"name_he"`
	Slug   string             `bson:"slug" json:"slug"`
}

func (t *VenueType) Name(lang string) string {
	switch lang {
	case langs.RU:
		return t.NameRu
	case langs.HE:
		return t.NameHe
	default:
		return t.NameEn
	}
}

func (t *VenueType) Names() LocalizedText {
	return LocalizedText{En: t.NameEn, Ru: t.NameRu, He: t.NameHe}
}

// EventType - тип события (concert, exhibition...).
// Названия хранятся в нижнем регистре.
type EventType struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NameEn string             `bson:"name_en" json:"name_en"`
	NameRu string             `bson:"name_ru" json:"name_ru"`
	NameHe string             `bson:"name_he" json:"name_he"`
	Slug   string             `bson:"slug" json:"slug"`
}

func (t *EventType) Name(lang string) string {
	switch lang {
	case langs.RU:
		return t.NameRu
	case langs.HE:
		return t.NameHe
	default:
		return t.NameEn
	}
}

func (t *EventType) Names() LocalizedText {
	return LocalizedText{En: t.NameEn, Ru: t.NameRu, He: t.NameHe}
}

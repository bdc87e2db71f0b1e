// Package slugs - генерация URL-идентификаторов сущностей.
package slugs

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// EventDateLayout - формат локальной даты начала события в слаге
const EventDateLayout = "2006-01-02-15-04"

// ForName - слаг из канонического (английского) названия.
// Детерминирован и идемпотентен: ForName(ForName(x)) == ForName(x).
func ForName(nameEn string) string {
	return slug.Make(nameEn)
}

// ForEvent - слаг события из английского названия и локального
// времени начала. Меняется название или дата - меняется слаг.
func ForEvent(nameEn string, localStart time.Time) string {
	return slug.Make(fmt.Sprintf("%s-%s", nameEn, localStart.Format(EventDateLayout)))
}

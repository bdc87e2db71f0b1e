// Package diff собирает пофамильный отчёт об изменениях при обновлении
// сущности: какие поля изменились и какие остались прежними.
package diff

import (
	"fmt"
	"strings"
)

// NoChangesMessage возвращается, когда все присланные значения совпали с текущими
const NoChangesMessage = "No fields were updated as all values are the same."

// Field - одно сравниваемое поле сущности. Equal сравнивает присланное
// значение с текущим, Apply записывает новое значение.
type Field struct {
	Name  string
	Equal func() bool
	Apply func()
}

// Tracker прогоняет набор полей и запоминает, что изменилось
type Tracker struct {
	updated   []string
	unchanged []string
	changed   map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{changed: make(map[string]bool)}
}

// Visit сравнивает поле и применяет новое значение, если оно отличается.
// Порядок вызовов определяет порядок полей в итоговом сообщении.
func (t *Tracker) Visit(f Field) {
	if f.Equal() {
		t.unchanged = append(t.unchanged, f.Name)
		return
	}
	f.Apply()
	t.updated = append(t.updated, f.Name)
	t.changed[f.Name] = true
}

// Skip отмечает поле как не изменившееся без сравнения.
// Используется для полей, которых не было в запросе.
func (t *Tracker) Skip(name string) {
	t.unchanged = append(t.unchanged, name)
}

// MarkUpdated отмечает поле изменившимся без сравнения. Используется для
// производных полей, пересчитанных каскадом (слаг, координаты, пути картинок).
// Поле, ранее отмеченное как не изменившееся, переносится в изменённые.
func (t *Tracker) MarkUpdated(name string) {
	if t.changed[name] {
		return
	}
	for i, n := range t.unchanged {
		if n == name {
			t.unchanged = append(t.unchanged[:i], t.unchanged[i+1:]...)
			break
		}
	}
	t.updated = append(t.updated, name)
	t.changed[name] = true
}

// Changed сообщает, изменилось ли конкретное поле
func (t *Tracker) Changed(name string) bool {
	return t.changed[name]
}

// HasChanges сообщает, изменилось ли хоть одно поле
func (t *Tracker) HasChanges() bool {
	return len(t.updated) > 0
}

// Updated возвращает имена изменившихся полей в порядке обхода
func (t *Tracker) Updated() []string {
	return t.updated
}

// Message строит человекочитаемый отчёт об изменениях
func (t *Tracker) Message() string {
	if !t.HasChanges() {
		return NoChangesMessage
	}
	msg := fmt.Sprintf("Updated fields: %s.", strings.Join(t.updated, ", "))
	if len(t.unchanged) > 0 {
		msg += fmt.Sprintf(" Unchanged fields: %s.", strings.Join(t.unchanged, ", "))
	}
	return msg
}

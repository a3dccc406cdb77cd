// Package notify turns meal list events into user-facing notices and fans
// them out to their sinks.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/pkordes/meal-board/internal/domain"
)

// Message keys double as the English text.
const (
	keyValidationTitle = "Error"
	keyValidationBody  = "Please fill in all fields"
	keyAddedTitle      = "New meal added"
	keyAddedBody       = "You added %s"
	keyRemovedTitle    = "Meal deleted"
	keyRemovedBody     = "You deleted %s"
	keyReorderedTitle  = "Meal moved"
	keyReorderedBody   = "You reordered your meals."
)

var french = map[string]string{
	keyValidationTitle: "Erreur",
	keyValidationBody:  "Veuillez remplir tous les champs",
	keyAddedTitle:      "Nouveau repas ajouté",
	keyAddedBody:       "Vous avez ajouté %s",
	keyRemovedTitle:    "Repas supprimé",
	keyRemovedBody:     "Vous avez supprimé %s",
	keyReorderedTitle:  "Repas déplacé",
	keyReorderedBody:   "Vous avez réorganisé vos repas.",
}

var supported = []language.Tag{language.English, language.French}

// Messages builds localized notices.
type Messages struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMessages returns Messages for locale, a BCP 47 tag such as "en" or
// "fr-CA". Regional variants resolve to their base language. Returns an
// error for a malformed tag or a language with no translations.
func NewMessages(locale string) (*Messages, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("notify.NewMessages: parse locale %q: %w", locale, err)
	}
	_, idx, conf := language.NewMatcher(supported).Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("notify.NewMessages: unsupported locale %q", locale)
	}

	cat := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, fr := range french {
		if err := cat.SetString(language.English, key, key); err != nil {
			return nil, fmt.Errorf("notify.NewMessages: %w", err)
		}
		if err := cat.SetString(language.French, key, fr); err != nil {
			return nil, fmt.Errorf("notify.NewMessages: %w", err)
		}
	}

	return &Messages{
		printer: message.NewPrinter(supported[idx], message.Catalog(cat)),
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Validation is shown when a submit is rejected for a blank field.
func (m *Messages) Validation() domain.Notice {
	return m.notice(domain.NoticeValidation,
		m.printer.Sprintf(keyValidationTitle), m.printer.Sprintf(keyValidationBody), nil)
}

// Added names the meal that was just appended.
func (m *Messages) Added(meal domain.Meal) domain.Notice {
	return m.notice(domain.NoticeAdded,
		m.printer.Sprintf(keyAddedTitle), m.printer.Sprintf(keyAddedBody, meal.Name), &meal.ID)
}

// Removed names the meal that was just deleted.
func (m *Messages) Removed(meal domain.Meal) domain.Notice {
	return m.notice(domain.NoticeRemoved,
		m.printer.Sprintf(keyRemovedTitle), m.printer.Sprintf(keyRemovedBody, meal.Name), &meal.ID)
}

// Reordered does not say which meal moved.
func (m *Messages) Reordered() domain.Notice {
	return m.notice(domain.NoticeReordered,
		m.printer.Sprintf(keyReorderedTitle), m.printer.Sprintf(keyReorderedBody), nil)
}

func (m *Messages) notice(kind domain.NoticeKind, title, body string, id *uuid.UUID) domain.Notice {
	n := domain.Notice{Kind: kind, Title: title, Message: body, At: m.now()}
	if id != nil {
		v := *id
		n.MealID = &v
	}
	return n
}

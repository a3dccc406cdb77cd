package notify_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/meal-board/internal/domain"
	"github.com/pkordes/meal-board/internal/notify"
)

func pasta() domain.Meal {
	return domain.Meal{ID: uuid.New(), Name: "Pasta", Description: "Creamy", ImageURL: "http://x/img.png"}
}

func TestMessages_English(t *testing.T) {
	msgs, err := notify.NewMessages("en")
	require.NoError(t, err)
	meal := pasta()

	added := msgs.Added(meal)
	assert.Equal(t, domain.NoticeAdded, added.Kind)
	assert.Equal(t, "New meal added", added.Title)
	assert.Equal(t, "You added Pasta", added.Message)
	require.NotNil(t, added.MealID)
	assert.Equal(t, meal.ID, *added.MealID)
	assert.False(t, added.At.IsZero())

	removed := msgs.Removed(meal)
	assert.Equal(t, "Meal deleted", removed.Title)
	assert.Equal(t, "You deleted Pasta", removed.Message)

	reordered := msgs.Reordered()
	assert.Equal(t, domain.NoticeReordered, reordered.Kind)
	assert.Equal(t, "You reordered your meals.", reordered.Message)
	assert.Nil(t, reordered.MealID)

	invalid := msgs.Validation()
	assert.Equal(t, domain.NoticeValidation, invalid.Kind)
	assert.Equal(t, "Error", invalid.Title)
	assert.Equal(t, "Please fill in all fields", invalid.Message)
}

func TestMessages_French(t *testing.T) {
	for _, locale := range []string{"fr", "fr-CA"} {
		t.Run(locale, func(t *testing.T) {
			msgs, err := notify.NewMessages(locale)
			require.NoError(t, err)

			added := msgs.Added(pasta())
			assert.Equal(t, "Nouveau repas ajouté", added.Title)
			assert.Equal(t, "Vous avez ajouté Pasta", added.Message)

			assert.Equal(t, "Vous avez supprimé Pasta", msgs.Removed(pasta()).Message)
			assert.Equal(t, "Repas déplacé", msgs.Reordered().Title)
			assert.Equal(t, "Veuillez remplir tous les champs", msgs.Validation().Message)
		})
	}
}

func TestNewMessages_Errors(t *testing.T) {
	_, err := notify.NewMessages("not a locale!")
	require.Error(t, err)

	_, err = notify.NewMessages("ja")
	require.ErrorContains(t, err, "unsupported locale")
}

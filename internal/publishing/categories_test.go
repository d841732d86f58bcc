package publishing

import (
	"testing"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFamily(t *testing.T) {
	all := []models.Category{
		{ID: "news", Name: "Thời sự"},
		{ID: "politics", Name: "Chính trị", Parent: "news"},
		{ID: "law", Name: "Pháp luật", Parent: "news"},
		{ID: "sport", Name: "Thể thao"},
		{ID: "football", Name: "Bóng đá", Parent: "sport"},
	}

	byID := func(cs []models.Category) []string {
		ids := make([]string, len(cs))
		for i, c := range cs {
			ids[i] = c.ID
		}
		return ids
	}

	t.Run("root category includes its children", func(t *testing.T) {
		family := CategoryFamily(all, all[0])
		assert.ElementsMatch(t, []string{"news", "politics", "law"}, byID(family))
		assert.Equal(t, "news", family[0].ID, "the category itself comes first")
	})

	t.Run("child category includes parent and siblings", func(t *testing.T) {
		family := CategoryFamily(all, all[1])
		assert.ElementsMatch(t, []string{"politics", "news", "law"}, byID(family))
		assert.Equal(t, "politics", family[0].ID)
	})

	t.Run("only child has just itself and its parent", func(t *testing.T) {
		family := CategoryFamily(all, all[4])
		assert.ElementsMatch(t, []string{"football", "sport"}, byID(family))
	})

	t.Run("childless root is alone", func(t *testing.T) {
		solo := models.Category{ID: "opinion", Name: "Góc nhìn"}
		family := CategoryFamily(append(all, solo), solo)
		assert.Equal(t, []string{"opinion"}, byID(family))
	})
}

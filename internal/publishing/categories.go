package publishing

import "newsroom/internal/models"

// CategoryFamily collects the categories shown in breadcrumb navigation
// around c: for a root category, itself plus its children; otherwise itself,
// its parent and its siblings.
func CategoryFamily(all []models.Category, c models.Category) []models.Category {
	family := []models.Category{c}

	if c.IsRoot() {
		for _, other := range all {
			if other.Parent == c.ID {
				family = append(family, other)
			}
		}
		return family
	}

	for _, other := range all {
		if other.ID == c.Parent {
			family = append(family, other)
		}
		if other.Parent == c.Parent && other.ID != c.ID {
			family = append(family, other)
		}
	}
	return family
}

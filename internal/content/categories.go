package content

import "github.com/darrkasamna/catalog/internal/models"

// UnknownLabel is returned for values outside the category set
const UnknownLabel = "Unknown"

// Category is static reference data for one story category
type Category struct {
	ID          string
	Label       string
	Value       models.StoryCategory
	Description string
}

var categories = []Category{
	{
		ID:          "indian-horror",
		Label:       "Indian Horror",
		Value:       models.CategoryIndianHorror,
		Description: "Terrifying tales rooted in Indian folklore and mythology",
	},
	{
		ID:          "haunted-places",
		Label:       "Haunted Places",
		Value:       models.CategoryHauntedPlaces,
		Description: "Spine-chilling stories from cursed and haunted locations",
	},
	{
		ID:          "true-stories",
		Label:       "True Stories",
		Value:       models.CategoryTrueStories,
		Description: "Real-life horror experiences that will make you question reality",
	},
	{
		ID:          "psychological-horror",
		Label:       "Psychological Horror",
		Value:       models.CategoryPsychologicalHorror,
		Description: "Mind-bending tales that will haunt your thoughts",
	},
}

// Categories returns the category set in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryBySlug looks up a category by its URL slug
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range categories {
		if c.ID == slug {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByValue looks up a category by its enum value
func CategoryByValue(value models.StoryCategory) (Category, bool) {
	for _, c := range categories {
		if c.Value == value {
			return c, true
		}
	}
	return Category{}, false
}

// IsValidCategory reports whether value belongs to the category set
func IsValidCategory(value models.StoryCategory) bool {
	_, ok := CategoryByValue(value)
	return ok
}

// ParseCategory accepts either an enum value or a slug
func ParseCategory(s string) (models.StoryCategory, bool) {
	if c, ok := CategoryByValue(models.StoryCategory(s)); ok {
		return c.Value, true
	}
	if c, ok := CategoryBySlug(s); ok {
		return c.Value, true
	}
	return "", false
}

// CategoryLabel returns the human label of a category, or UnknownLabel
func CategoryLabel(value models.StoryCategory) string {
	if c, ok := CategoryByValue(value); ok {
		return c.Label
	}
	return UnknownLabel
}

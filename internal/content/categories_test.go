package content

import (
	"testing"

	"github.com/darrkasamna/catalog/internal/models"
)

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name     string
		value    models.StoryCategory
		expected string
	}{
		{"true stories", models.CategoryTrueStories, "True Stories"},
		{"indian horror", models.CategoryIndianHorror, "Indian Horror"},
		{"haunted places", models.CategoryHauntedPlaces, "Haunted Places"},
		{"psychological horror", models.CategoryPsychologicalHorror, "Psychological Horror"},
		{"unknown", models.StoryCategory("zombieApocalypse"), UnknownLabel},
		{"empty", models.StoryCategory(""), UnknownLabel},
		{"slug is not a value", models.StoryCategory("true-stories"), UnknownLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CategoryLabel(tt.value)
			if result != tt.expected {
				t.Errorf("CategoryLabel(%q) = %v, want %v", tt.value, result, tt.expected)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected models.StoryCategory
		ok       bool
	}{
		{"hauntedPlaces", models.CategoryHauntedPlaces, true},
		{"haunted-places", models.CategoryHauntedPlaces, true},
		{"psychological-horror", models.CategoryPsychologicalHorror, true},
		{"Haunted Places", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, ok := ParseCategory(tt.input)
			if result != tt.expected || ok != tt.ok {
				t.Errorf("ParseCategory(%q) = %v, %v, want %v, %v", tt.input, result, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	list := Categories()
	if len(list) != 4 {
		t.Fatalf("Categories() returned %d entries, want 4", len(list))
	}
	list[0].Label = "changed"
	if CategoryLabel(models.CategoryIndianHorror) != "Indian Horror" {
		t.Error("mutating the returned slice changed the reference data")
	}
}

func TestCategoryBySlug(t *testing.T) {
	c, ok := CategoryBySlug("true-stories")
	if !ok || c.Value != models.CategoryTrueStories {
		t.Errorf("CategoryBySlug(true-stories) = %+v, %v", c, ok)
	}
	if _, ok := CategoryBySlug("nope"); ok {
		t.Error("CategoryBySlug(nope) should not be found")
	}
}

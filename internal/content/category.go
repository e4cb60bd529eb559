package content

import (
	"fmt"
	"strings"
)

// Category identifies the kind of serialized work a page belongs to.
type Category string

const (
	CategoryManga    Category = "manga"
	CategoryAnime    Category = "anime"
	CategoryWebcomic Category = "webcomic"
	CategoryNovel    Category = "novel"
)

// DefaultCategory is returned when no signal favours any category.
const DefaultCategory = CategoryManga

// Categories returns every category in tie-breaking priority order.
func Categories() []Category {
	return []Category{CategoryManga, CategoryAnime, CategoryWebcomic, CategoryNovel}
}

// ParseCategory maps a user supplied name onto a Category.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "manga", "manhwa", "manhua":
		return CategoryManga, nil
	case "anime":
		return CategoryAnime, nil
	case "webcomic", "webtoon", "comic":
		return CategoryWebcomic, nil
	case "novel", "lightnovel", "light-novel", "webnovel":
		return CategoryNovel, nil
	default:
		return "", fmt.Errorf("unknown category %q (expected anime, manga, webcomic or novel)", value)
	}
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryManga, CategoryAnime, CategoryWebcomic, CategoryNovel:
		return true
	default:
		return false
	}
}

// Episodic reports whether progress in this category is counted in episodes.
func (c Category) Episodic() bool {
	return c == CategoryAnime
}

func (c Category) String() string {
	return string(c)
}

package resolver

import (
	"readmark/internal/content"
)

// Strategy orders the catalogs consulted for one category.
type Strategy struct {
	Primary   content.CatalogName
	Fallbacks []content.CatalogName
}

// Order returns the primary catalog followed by the fallbacks.
func (s Strategy) Order() []content.CatalogName {
	order := make([]content.CatalogName, 0, 1+len(s.Fallbacks))
	if s.Primary != "" {
		order = append(order, s.Primary)
	}
	return append(order, s.Fallbacks...)
}

var strategies = map[content.Category]Strategy{
	content.CategoryAnime: {
		Primary:   content.CatalogAniList,
		Fallbacks: []content.CatalogName{content.CatalogJikan, content.CatalogKitsu},
	},
	content.CategoryManga: {
		Primary:   content.CatalogAniList,
		Fallbacks: []content.CatalogName{content.CatalogMangaDex, content.CatalogKitsu},
	},
	content.CategoryWebcomic: {
		Primary:   content.CatalogMangaDex,
		Fallbacks: []content.CatalogName{content.CatalogAniList},
	},
	content.CategoryNovel: {
		Primary: content.CatalogOpenLibrary,
	},
}

// StrategyFor returns the catalog order for category. Unknown categories use
// the default category's strategy.
func StrategyFor(category content.Category) Strategy {
	if s, ok := strategies[category]; ok {
		return s
	}
	return strategies[content.DefaultCategory]
}

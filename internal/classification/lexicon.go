package classification

import "readmark/internal/content"

// Lexicon is the keyword and known-site table for one category.
type Lexicon struct {
	Keywords []string
	Sites    []string
}

var mangaLexicon = Lexicon{
	Keywords: []string{
		"manga", "manhwa", "manhua", "chapter", "scanlation", "scans",
		"mangaka", "shonen", "shounen", "seinen", "shoujo", "shojo", "josei",
		"doujin", "tankobon", "oneshot", "raw",
	},
	Sites: []string{
		"mangadex.org", "mangakakalot.com", "manganato.com", "chapmanganato.to",
		"mangasee123.com", "mangapark.net", "mangaplus.shueisha.co.jp", "bato.to",
		"mangafire.to", "comick.io", "asuracomic.net", "reaperscans.com",
		"flamecomics.xyz", "mangabuddy.com", "mangareader.to", "weebcentral.com",
		"readm.org", "mangahere.cc", "mangatown.com",
	},
}

var animeLexicon = Lexicon{
	Keywords: []string{
		"anime", "episode", "watch", "subbed", "dubbed", "english sub",
		"season", "ova", "simulcast", "streaming", "1080p", "720p",
	},
	Sites: []string{
		"crunchyroll.com", "funimation.com", "hidive.com", "hianime.to",
		"aniwave.to", "9anime.to", "gogoanime.to", "gogoanime3.co", "animepahe.ru",
		"zoro.to", "animixplay.to", "kickassanime.am", "aniwatch.to",
	},
}

var webcomicLexicon = Lexicon{
	Keywords: []string{
		"webtoon", "webcomic", "web comic", "comic", "toon", "canvas",
		"originals", "strip", "panel", "tapas",
	},
	Sites: []string{
		"webtoons.com", "tapas.io", "lezhin.com", "tappytoon.com",
		"mangatoon.mobi", "globalcomix.com", "xkcd.com", "smbc-comics.com",
		"webcomics.com", "toomics.com",
	},
}

var novelLexicon = Lexicon{
	Keywords: []string{
		"novel", "light novel", "web novel", "lightnovel", "wuxia", "xianxia",
		"xuanhuan", "cultivation", "prologue", "epilogue", "translator",
		"epub", "fanfic", "fiction",
	},
	Sites: []string{
		"royalroad.com", "novelupdates.com", "wuxiaworld.com", "webnovel.com",
		"scribblehub.com", "novelbin.com", "lightnovelpub.com", "wattpad.com",
		"archiveofourown.org", "ranobes.net", "novelfull.com", "fanfiction.net",
	},
}

// Lexicons returns a copy of the built-in tables keyed by category.
func Lexicons() map[content.Category]Lexicon {
	out := make(map[content.Category]Lexicon, 4)
	for category, lex := range map[content.Category]Lexicon{
		content.CategoryManga:    mangaLexicon,
		content.CategoryAnime:    animeLexicon,
		content.CategoryWebcomic: webcomicLexicon,
		content.CategoryNovel:    novelLexicon,
	} {
		out[category] = Lexicon{
			Keywords: append([]string(nil), lex.Keywords...),
			Sites:    append([]string(nil), lex.Sites...),
		}
	}
	return out
}

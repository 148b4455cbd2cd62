package streams

import (
	"cmp"
	"math"
	"slices"

	"github.com/sourcegraph/conc/iter"

	"streamprefs/utils/format"
	"streamprefs/utils/language"
)

// Stream is one scraped result as the aggregator hands it to the UI.
type Stream struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	SizeBytes  int64    `json:"sizeBytes,omitempty"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Languages  []string `json:"languages"`
}

// Presented is a stream ready for rendering.
type Presented struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Size      string   `json:"size,omitempty"`
	Duration  string   `json:"duration,omitempty"`
	Languages []string `json:"languages"`
	// LanguageRank is the best group index among the stream's languages, or -1.
	LanguageRank int `json:"languageRank"`
}

// Options controls presentation.
type Options struct {
	Preferences    language.Preferences
	ShowFlags      bool
	ShowSize       bool
	ShowDuration   bool
	SortByLanguage bool // reorder streams by their best language rank
}

// Present formats every stream and orders its languages by preference.
// Streams are processed concurrently; output order follows input order unless
// SortByLanguage is set, in which case streams are stably sorted by rank with
// unranked streams last.
func Present(streams []Stream, opts Options) []Presented {
	presented := iter.Map(streams, func(s *Stream) Presented {
		return presentOne(*s, opts)
	})

	if opts.SortByLanguage {
		slices.SortStableFunc(presented, func(a, b Presented) int {
			return cmp.Compare(sortRank(a.LanguageRank), sortRank(b.LanguageRank))
		})
	}
	return presented
}

func presentOne(s Stream, opts Options) Presented {
	p := Presented{
		ID:           s.ID,
		Name:         s.Name,
		LanguageRank: -1,
	}
	if opts.ShowSize && s.SizeBytes > 0 {
		p.Size = format.Size(s.SizeBytes)
	}
	if opts.ShowDuration && s.DurationMs > 0 {
		p.Duration = format.DurationMillis(s.DurationMs)
	}

	sorted, rank, ok := language.SortWithRank(s.Languages, opts.Preferences)
	if ok {
		p.LanguageRank = rank
	}

	p.Languages = make([]string, len(sorted))
	for i, lang := range sorted {
		p.Languages[i] = displayLanguage(lang, opts.ShowFlags)
	}
	return p
}

// displayLanguage renders lang as a flag when asked and known, otherwise as
// its catalog name. Unknown entries pass through untouched.
func displayLanguage(lang string, flags bool) string {
	if flags {
		if emoji, ok := language.NameToEmoji(lang); ok {
			return emoji
		}
		return lang
	}
	if name, ok := language.EmojiToName(lang); ok {
		return name
	}
	if name, ok := language.CanonicalName(lang); ok {
		return name
	}
	return lang
}

func sortRank(rank int) int {
	if rank < 0 {
		return math.MaxInt
	}
	return rank
}

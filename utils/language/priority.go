package language

import (
	"cmp"
	"math"
	"slices"
)

// unranked sorts after every language that appears in a preference group.
const unranked = math.MaxInt

// SortByPriority returns a reordered copy of langs, most preferred first.
//
// Entries may be names in any case or flag emoji. Lower group index wins;
// entries sharing a rank keep their input order; entries that match no group
// go last. Duplicates are kept. With empty preferences the copy is in input
// order.
func SortByPriority(langs []string, prefs Preferences) []string {
	sorted, _, _ := SortWithRank(langs, prefs)
	return sorted
}

// SortWithRank is SortByPriority that also reports the rank of the first
// sorted entry, and false when nothing in langs matches a group.
func SortWithRank(langs []string, prefs Preferences) ([]string, int, bool) {
	if prefs.IsEmpty() {
		return slices.Clone(langs), 0, false
	}

	ranks := priorityMap(Normalize(prefs))

	type ranked struct {
		index int
		rank  int
	}
	order := make([]ranked, len(langs))
	for i, lang := range langs {
		order[i] = ranked{index: i, rank: rankOf(ranks, lang)}
	}

	slices.SortFunc(order, func(a, b ranked) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	sorted := make([]string, len(langs))
	for i, r := range order {
		sorted[i] = langs[r.index]
	}
	if len(order) == 0 || order[0].rank == unranked {
		return sorted, 0, false
	}
	return sorted, order[0].rank, true
}

// Rank returns the priority rank of lang under prefs, and false when it
// matches no group.
func Rank(lang string, prefs Preferences) (int, bool) {
	if prefs.IsEmpty() {
		return 0, false
	}
	rank := rankOf(priorityMap(Normalize(prefs)), lang)
	return rank, rank != unranked
}

// priorityMap maps resolved names to their group index. A language listed in
// several groups keeps the first one.
func priorityMap(groups [][]string) map[string]int {
	ranks := make(map[string]int)
	for g, group := range groups {
		for _, lang := range group {
			key := resolveKey(lang)
			if _, seen := ranks[key]; !seen {
				ranks[key] = g
			}
		}
	}
	return ranks
}

func rankOf(ranks map[string]int, lang string) int {
	if name, ok := EmojiToName(lang); ok {
		lang = name
	}
	if rank, ok := ranks[resolveKey(lang)]; ok {
		return rank
	}
	return unranked
}

// resolveKey maps a name onto its catalog key, or leaves it verbatim.
func resolveKey(lang string) string {
	if name, ok := CanonicalName(lang); ok {
		return name
	}
	return lang
}

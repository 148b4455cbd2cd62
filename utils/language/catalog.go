package language

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"
)

// Entry describes one catalog language.
type Entry struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// emojiTable maps canonical language names to flag emoji, in declaration order.
// Adapted from the comet project's language table. "latino" and "Latino" are
// distinct keys; reverse lookups return whichever comes first.
var emojiTable = []Entry{
	{"multi", "🌎"},
	{"english", "🇺🇸"},
	{"japanese", "🇯🇵"},
	{"chinese", "🇨🇳"},
	{"russian", "🇷🇺"},
	{"arabic", "🇸🇦"},
	{"portuguese", "🇵🇹"},
	{"spanish", "🇪🇸"},
	{"french", "🇫🇷"},
	{"german", "🇩🇪"},
	{"italian", "🇮🇹"},
	{"korean", "🇰🇷"},
	{"hindi", "🇮🇳"},
	{"bengali", "🇧🇩"},
	{"punjabi", "🇵🇰"},
	{"marathi", "🇮🇳"},
	{"gujarati", "🇮🇳"},
	{"tamil", "🇮🇳"},
	{"telugu", "🇮🇳"},
	{"kannada", "🇮🇳"},
	{"malayalam", "🇮🇳"},
	{"thai", "🇹🇭"},
	{"vietnamese", "🇻🇳"},
	{"indonesian", "🇮🇩"},
	{"turkish", "🇹🇷"},
	{"hebrew", "🇮🇱"},
	{"persian", "🇮🇷"},
	{"ukrainian", "🇺🇦"},
	{"greek", "🇬🇷"},
	{"lithuanian", "🇱🇹"},
	{"latvian", "🇱🇻"},
	{"estonian", "🇪🇪"},
	{"polish", "🇵🇱"},
	{"czech", "🇨🇿"},
	{"slovak", "🇸🇰"},
	{"hungarian", "🇭🇺"},
	{"romanian", "🇷🇴"},
	{"bulgarian", "🇧🇬"},
	{"serbian", "🇷🇸"},
	{"croatian", "🇭🇷"},
	{"slovenian", "🇸🇮"},
	{"dutch", "🇳🇱"},
	{"danish", "🇩🇰"},
	{"finnish", "🇫🇮"},
	{"swedish", "🇸🇪"},
	{"norwegian", "🇳🇴"},
	{"malay", "🇲🇾"},
	{"latino", "🇲🇽"},
	{"Latino", "🇲🇽"},
}

// codeTable maps uppercase two-letter codes to canonical names.
var codeTable = []struct {
	Code string
	Name string
}{
	{"EN", "english"},
	{"JA", "japanese"},
	{"ZH", "chinese"},
	{"RU", "russian"},
	{"AR", "arabic"},
	{"PT", "portuguese"},
	{"ES", "spanish"},
	{"FR", "french"},
	{"DE", "german"},
	{"IT", "italian"},
	{"KO", "korean"},
	{"HI", "hindi"},
	{"BN", "bengali"},
	{"PA", "punjabi"},
	{"MR", "marathi"},
	{"GU", "gujarati"},
	{"TA", "tamil"},
	{"TE", "telugu"},
	{"KN", "kannada"},
	{"ML", "malayalam"},
	{"TH", "thai"},
	{"VI", "vietnamese"},
	{"ID", "indonesian"},
	{"TR", "turkish"},
	{"HE", "hebrew"},
	{"FA", "persian"},
	{"UK", "ukrainian"},
	{"EL", "greek"},
	{"LT", "lithuanian"},
	{"LV", "latvian"},
	{"ET", "estonian"},
	{"PL", "polish"},
	{"CS", "czech"},
	{"SK", "slovak"},
	{"HU", "hungarian"},
	{"RO", "romanian"},
	{"BG", "bulgarian"},
	{"SR", "serbian"},
	{"HR", "croatian"},
	{"SL", "slovenian"},
	{"NL", "dutch"},
	{"DA", "danish"},
	{"FI", "finnish"},
	{"SV", "swedish"},
	{"NO", "norwegian"},
	{"MS", "malay"},
	{"LA", "latino"},
	{"MX", "Latino"},
}

// Lookup indexes, built once at init and never written afterwards.
var (
	emojiByName   = make(map[string]string, len(emojiTable))
	nameByEmoji   = make(map[string]string, len(emojiTable))
	nameByCode    = make(map[string]string, len(codeTable))
	codeByName    = make(map[string]string, len(codeTable))
	canonicalKeys = make(map[string]string, len(emojiTable))
)

func init() {
	for _, e := range emojiTable {
		emojiByName[e.Name] = e.Emoji
		// first declared name wins the reverse mapping
		if _, ok := nameByEmoji[e.Emoji]; !ok {
			nameByEmoji[e.Emoji] = e.Name
		}
		folded := lower(e.Name)
		if _, ok := canonicalKeys[folded]; !ok {
			canonicalKeys[folded] = e.Name
		}
	}
	for _, c := range codeTable {
		nameByCode[c.Code] = c.Name
		if _, ok := codeByName[c.Name]; !ok {
			codeByName[c.Name] = c.Code
		}
	}
}

// lower folds s the same way for table keys and user input. A Caser is
// stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(textlang.Und).String(s)
}

// NameToEmoji returns the flag for a language name, matching case-insensitively.
func NameToEmoji(name string) (string, bool) {
	emoji, ok := emojiByName[lower(name)]
	return emoji, ok
}

// EmojiToName returns the first canonical name, in table order, whose flag is emoji.
// Several languages share a flag (🇮🇳), so the mapping is not one-to-one.
func EmojiToName(emoji string) (string, bool) {
	name, ok := nameByEmoji[emoji]
	return name, ok
}

// CodeToName resolves an uppercase two-letter code. Codes are case-sensitive.
func CodeToName(code string) (string, bool) {
	name, ok := nameByCode[code]
	return name, ok
}

// CanonicalName returns the catalog key matching s case-insensitively.
func CanonicalName(s string) (string, bool) {
	name, ok := canonicalKeys[lower(s)]
	return name, ok
}

// Names returns the catalog keys in declaration order.
func Names() []string {
	names := make([]string, len(emojiTable))
	for i, e := range emojiTable {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the name/emoji table.
func Entries() []Entry {
	out := make([]Entry, len(emojiTable))
	copy(out, emojiTable)
	return out
}

// Option is a select-box entry for the configuration UI.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Code  string `json:"code,omitempty"`
	Emoji string `json:"emoji"`
}

// Options lists catalog languages as UI options, optionally filtered by query.
// The query is transliterated and lowercased, then matched as a substring of
// the name or code.
func Options(query string) []Option {
	needle := fold(query)
	options := make([]Option, 0, len(emojiTable))
	for _, e := range emojiTable {
		code := codeByName[e.Name]
		if needle != "" &&
			!strings.Contains(fold(e.Name), needle) &&
			!strings.Contains(fold(code), needle) {
			continue
		}
		options = append(options, Option{
			Value: e.Name,
			Label: e.Emoji + " " + titleCase(e.Name),
			Code:  code,
			Emoji: e.Emoji,
		})
	}
	return options
}

func fold(s string) string {
	return lower(strings.TrimSpace(unidecode.Unidecode(s)))
}

func titleCase(s string) string {
	return cases.Title(textlang.English).String(s)
}

package language

import (
	"testing"
)

func TestCodeToName(t *testing.T) {
	tests := []struct {
		code string
		want string
		ok   bool
	}{
		{"EN", "english", true},
		{"JA", "japanese", true},
		{"LA", "latino", true},
		{"MX", "Latino", true},
		{"en", "", false},
		{"XX", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CodeToName(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CodeToName(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNameToEmoji_CaseInsensitive(t *testing.T) {
	upper, ok := NameToEmoji("ENGLISH")
	if !ok {
		t.Fatal("expected ENGLISH to resolve")
	}
	lowerEmoji, _ := NameToEmoji("english")
	if upper != lowerEmoji || upper != "🇺🇸" {
		t.Errorf("NameToEmoji mismatch: %q vs %q", upper, lowerEmoji)
	}

	if got, _ := NameToEmoji("Latino"); got != "🇲🇽" {
		t.Errorf("NameToEmoji(Latino) = %q, want 🇲🇽", got)
	}
	if _, ok := NameToEmoji("klingon"); ok {
		t.Error("unknown language should not resolve")
	}
}

func TestEmojiToName_FirstDeclaredWins(t *testing.T) {
	tests := []struct {
		emoji string
		want  string
	}{
		{"🇲🇽", "latino"},
		{"🇮🇳", "hindi"},
		{"🇺🇸", "english"},
		{"🌎", "multi"},
	}
	for _, tt := range tests {
		got, ok := EmojiToName(tt.emoji)
		if !ok || got != tt.want {
			t.Errorf("EmojiToName(%q) = (%q, %v), want %q", tt.emoji, got, ok, tt.want)
		}
	}

	if _, ok := EmojiToName("🏴‍☠️"); ok {
		t.Error("unknown emoji should not resolve")
	}
	if _, ok := EmojiToName("english"); ok {
		t.Error("a name is not an emoji")
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"French", "french", true},
		{"LATINO", "latino", true},
		{"Latino", "latino", true},
		{"latino", "latino", true},
		{"elvish", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalName(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	names := Names()
	names[0] = "mutated"
	if Names()[0] != "multi" {
		t.Error("Names should not expose the underlying table")
	}

	entries := Entries()
	entries[1].Emoji = "x"
	if got, _ := NameToEmoji("english"); got != "🇺🇸" {
		t.Error("Entries should not expose the underlying table")
	}

	if len(Names()) != len(Entries()) {
		t.Errorf("Names and Entries disagree: %d vs %d", len(Names()), len(Entries()))
	}
}

func TestEveryCodeResolvesToAnEmoji(t *testing.T) {
	for _, c := range codeTable {
		name, ok := CodeToName(c.Code)
		if !ok {
			t.Fatalf("code %s did not resolve", c.Code)
		}
		if _, ok := NameToEmoji(name); !ok {
			t.Errorf("code %s -> %q has no emoji", c.Code, name)
		}
	}
}

func TestOptions(t *testing.T) {
	all := Options("")
	if len(all) != len(emojiTable) {
		t.Fatalf("expected %d options, got %d", len(emojiTable), len(all))
	}
	if all[1].Value != "english" || all[1].Code != "EN" || all[1].Label != "🇺🇸 English" {
		t.Errorf("unexpected english option: %+v", all[1])
	}
	if all[0].Code != "" {
		t.Errorf("multi has no code, got %q", all[0].Code)
	}

	filtered := Options("  GERM ")
	if len(filtered) != 1 || filtered[0].Value != "german" {
		t.Errorf("expected only german, got %+v", filtered)
	}

	byCode := Options("mx")
	if len(byCode) != 1 || byCode[0].Value != "Latino" {
		t.Errorf("expected Latino by code, got %+v", byCode)
	}

	if got := Options("Türkish"); len(got) != 1 || got[0].Value != "turkish" {
		t.Errorf("transliterated query should match turkish, got %+v", got)
	}
}

package models

import (
	"encoding/json"
	"testing"

	"streamprefs/utils/language"
)

func TestBoolPtr(t *testing.T) {
	b := BoolPtr(true)
	if b == nil || !*b {
		t.Fatal("BoolPtr failed")
	}
}

func TestDefaultUserSettings_NoLanguages(t *testing.T) {
	s := DefaultUserSettings(nil)
	if !s.Languages.PrioritisedLanguages.IsEmpty() {
		t.Errorf("expected empty preferences, got %+v", s.Languages.PrioritisedLanguages)
	}
	if s.LanguageGroups() != nil {
		t.Errorf("expected nil groups, got %v", s.LanguageGroups())
	}
	if s.Languages.ShowFlags == nil || !*s.Languages.ShowFlags {
		t.Error("flags should be shown by default")
	}
}

func TestDefaultUserSettings_FlatDefaults(t *testing.T) {
	s := DefaultUserSettings([]string{"english", "japanese"})
	groups := s.LanguageGroups()
	if len(groups) != 2 || groups[0][0] != "english" || groups[1][0] != "japanese" {
		t.Errorf("LanguageGroups() = %v, want [[english] [japanese]]", groups)
	}
}

func TestUserSettings_DecodeLegacyFlatConfig(t *testing.T) {
	raw := `{"languages":{"prioritisedLanguages":["english","french"]}}`

	var s UserSettings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Languages.PrioritisedLanguages.Shape() != language.ShapeFlat {
		t.Errorf("expected flat shape, got %v", s.Languages.PrioritisedLanguages.Shape())
	}
	if groups := s.LanguageGroups(); len(groups) != 2 {
		t.Errorf("expected two singleton groups, got %v", groups)
	}

	// legacy configs are written back unchanged
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var back map[string]map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("decode encoded: %v", err)
	}
	list, ok := back["languages"]["prioritisedLanguages"].([]any)
	if !ok || len(list) != 2 || list[0] != "english" {
		t.Errorf("unexpected encoded preferences: %v", back["languages"]["prioritisedLanguages"])
	}
}

func TestUserSettings_DecodeGroupedConfig(t *testing.T) {
	raw := `{"languages":{"prioritisedLanguages":[["english","french"],["german"]]}}`

	var s UserSettings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	groups := s.LanguageGroups()
	if len(groups) != 2 || len(groups[0]) != 2 || groups[1][0] != "german" {
		t.Errorf("LanguageGroups() = %v", groups)
	}
}

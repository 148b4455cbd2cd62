package models

import "streamprefs/utils/language"

// UserSettings contains per-user customizable settings.
// These override global defaults when set.
type UserSettings struct {
	Languages LanguageSettings `json:"languages"`
	Display   DisplaySettings  `json:"display"`
}

// LanguageSettings controls how stream languages are ranked and shown.
type LanguageSettings struct {
	// PrioritisedLanguages accepts both the legacy flat list and the grouped form.
	PrioritisedLanguages language.Preferences `json:"prioritisedLanguages"`
	ShowFlags            *bool                `json:"showFlags,omitempty"` // Render languages as flag emoji
}

// DisplaySettings controls how stream metadata is rendered in result lists.
type DisplaySettings struct {
	ShowSize     *bool `json:"showSize,omitempty"`
	ShowDuration *bool `json:"showDuration,omitempty"`
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// DefaultUserSettings returns the default settings for a new user.
// defaultLanguages is the server-wide flat preference list, which may be empty.
func DefaultUserSettings(defaultLanguages []string) UserSettings {
	return UserSettings{
		Languages: LanguageSettings{
			PrioritisedLanguages: language.Flat(defaultLanguages...),
			ShowFlags:            BoolPtr(true),
		},
		Display: DisplaySettings{
			ShowSize:     BoolPtr(true),
			ShowDuration: BoolPtr(true),
		},
	}
}

// LanguageGroups returns the canonical grouped preferences, or nil when unset.
func (s UserSettings) LanguageGroups() [][]string {
	return language.Normalize(s.Languages.PrioritisedLanguages)
}

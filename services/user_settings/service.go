package user_settings

import (
	"errors"
	"log"
	"strings"
	"sync"

	"streamprefs/models"
	"streamprefs/utils/language"
)

var ErrUserIDRequired = errors.New("user id is required")

// Service holds per-user settings in memory. It is the configuration state
// that language group editors publish into.
type Service struct {
	mu       sync.RWMutex
	settings map[string]models.UserSettings
}

// NewService creates an empty user settings service.
func NewService() *Service {
	return &Service{
		settings: make(map[string]models.UserSettings),
	}
}

// Get returns the user's settings, or nil if not set.
func (s *Service) Get(userID string) (*models.UserSettings, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if settings, ok := s.settings[userID]; ok {
		copy := cloneSettings(settings)
		return &copy, nil
	}

	return nil, nil
}

// HasOverrides returns true if the user has custom settings stored.
func (s *Service) HasOverrides(userID string) bool {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.settings[userID]
	return exists
}

// GetWithDefaults returns the user's settings merged with defaults.
// Unset fields inherit from defaults.
func (s *Service) GetWithDefaults(userID string, defaults models.UserSettings) (models.UserSettings, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return models.UserSettings{}, ErrUserIDRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.settings[userID]
	if !ok {
		return cloneSettings(defaults), nil
	}

	settings = cloneSettings(settings)
	if !settings.Languages.PrioritisedLanguages.HasLanguages() {
		settings.Languages.PrioritisedLanguages = defaults.Languages.PrioritisedLanguages
	}
	if settings.Languages.ShowFlags == nil {
		settings.Languages.ShowFlags = defaults.Languages.ShowFlags
	}
	if settings.Display.ShowSize == nil {
		settings.Display.ShowSize = defaults.Display.ShowSize
	}
	if settings.Display.ShowDuration == nil {
		settings.Display.ShowDuration = defaults.Display.ShowDuration
	}
	return settings, nil
}

// Update saves the user's settings.
// If the settings are empty (no actual overrides), the user entry is deleted instead.
func (s *Service) Update(userID string, settings models.UserSettings) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if isSettingsEmpty(settings) {
		delete(s.settings, userID)
	} else {
		s.settings[userID] = cloneSettings(settings)
	}
	return nil
}

// SetLanguageGroups replaces only the user's prioritised languages.
func (s *Service) SetLanguageGroups(userID string, groups [][]string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings[userID]
	settings.Languages.PrioritisedLanguages = language.Grouped(groups)
	if isSettingsEmpty(settings) {
		delete(s.settings, userID)
		return nil
	}
	s.settings[userID] = settings
	return nil
}

// Publisher returns a function that stores editor snapshots as userID's
// prioritised languages.
func (s *Service) Publisher(userID string) func(groups [][]string) {
	return func(groups [][]string) {
		if err := s.SetLanguageGroups(userID, groups); err != nil {
			log.Printf("[user_settings] publish language groups for %q: %v", userID, err)
		}
	}
}

// isSettingsEmpty checks if user settings have no actual values set.
func isSettingsEmpty(s models.UserSettings) bool {
	if s.Languages.PrioritisedLanguages.HasLanguages() || s.Languages.ShowFlags != nil {
		return false
	}
	if s.Display.ShowSize != nil || s.Display.ShowDuration != nil {
		return false
	}
	return true
}

// Delete removes a user's settings.
func (s *Service) Delete(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.settings, userID)
	return nil
}

// cloneSettings detaches pointer fields so callers cannot reach stored state.
// Preferences copy their slices on construction and are immutable afterwards.
func cloneSettings(s models.UserSettings) models.UserSettings {
	s.Languages.ShowFlags = cloneBool(s.Languages.ShowFlags)
	s.Display.ShowSize = cloneBool(s.Display.ShowSize)
	s.Display.ShowDuration = cloneBool(s.Display.ShowDuration)
	return s
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"streamprefs/models"
	"streamprefs/services/language_groups"
	"streamprefs/services/streams"
	"streamprefs/services/user_settings"
	"streamprefs/utils/language"
)

// LanguagesHandler serves the language catalog, priority sorting and the
// grouped language editor used by the configuration UI.
type LanguagesHandler struct {
	Settings *user_settings.Service
	Editors  *language_groups.Registry
	Defaults models.UserSettings
}

func NewLanguagesHandler(settings *user_settings.Service, editors *language_groups.Registry, defaults models.UserSettings) *LanguagesHandler {
	return &LanguagesHandler{Settings: settings, Editors: editors, Defaults: defaults}
}

// Register mounts the routes on r. limit wraps editor creation and mutations
// and may be nil.
func (h *LanguagesHandler) Register(r *mux.Router, limit mux.MiddlewareFunc) {
	wrap := func(f http.HandlerFunc) http.Handler {
		if limit == nil {
			return f
		}
		return limit(f)
	}

	r.HandleFunc("/api/languages", h.ListLanguages).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/languages/normalize", h.Normalize).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/languages/sort", h.Sort).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/streams/present", h.PresentStreams).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/api/users/{userID}/settings", h.GetUserSettings).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/users/{userID}/settings", h.PutUserSettings).Methods(http.MethodPut)
	r.HandleFunc("/api/users/{userID}/settings", h.DeleteUserSettings).Methods(http.MethodDelete)
	r.Handle("/api/users/{userID}/language-editors", wrap(h.OpenEditor)).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/api/language-editors/{editorID}", h.GetEditor).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/language-editors/{editorID}", h.CloseEditor).Methods(http.MethodDelete)
	r.Handle("/api/language-editors/{editorID}/groups", wrap(h.AddGroup)).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/api/language-editors/{editorID}/groups/{index:[0-9]+}", wrap(h.ReplaceGroup)).Methods(http.MethodPut, http.MethodOptions)
	r.Handle("/api/language-editors/{editorID}/groups/{index:[0-9]+}", wrap(h.RemoveGroup)).Methods(http.MethodDelete)
	r.Handle("/api/language-editors/{editorID}/groups/{index:[0-9]+}/{direction:up|down}", wrap(h.MoveGroup)).Methods(http.MethodPost, http.MethodOptions)
}

type preferencesRequest struct {
	UserID               string               `json:"userId,omitempty"`
	PrioritisedLanguages language.Preferences `json:"prioritisedLanguages"`
}

type sortRequest struct {
	preferencesRequest
	Languages []string `json:"languages"`
}

type presentRequest struct {
	preferencesRequest
	Streams        []streams.Stream `json:"streams"`
	SortByLanguage bool             `json:"sortByLanguage"`
}

type groupsResponse struct {
	Groups [][]string `json:"groups"`
}

type editorResponse struct {
	ID     string     `json:"id"`
	Groups [][]string `json:"groups"`
}

func (h *LanguagesHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": language.Options(r.URL.Query().Get("q")),
	})
}

func (h *LanguagesHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, groupsResponse{Groups: language.Normalize(req.PrioritisedLanguages)})
}

func (h *LanguagesHandler) Sort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if !decodeBody(w, r, &req) {
		return
	}
	settings, ok := h.effectiveSettings(w, req.preferencesRequest)
	if !ok {
		return
	}
	sorted := language.SortByPriority(req.Languages, settings.Languages.PrioritisedLanguages)
	if sorted == nil {
		sorted = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"languages": sorted})
}

func (h *LanguagesHandler) PresentStreams(w http.ResponseWriter, r *http.Request) {
	var req presentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	settings, ok := h.effectiveSettings(w, req.preferencesRequest)
	if !ok {
		return
	}

	presented := streams.Present(req.Streams, streams.Options{
		Preferences:    settings.Languages.PrioritisedLanguages,
		ShowFlags:      isSet(settings.Languages.ShowFlags),
		ShowSize:       isSet(settings.Display.ShowSize),
		ShowDuration:   isSet(settings.Display.ShowDuration),
		SortByLanguage: req.SortByLanguage,
	})
	writeJSON(w, http.StatusOK, map[string][]streams.Presented{"streams": presented})
}

// effectiveSettings resolves the settings a request runs under. Explicit
// preferences in the body win over the user's stored ones.
func (h *LanguagesHandler) effectiveSettings(w http.ResponseWriter, req preferencesRequest) (models.UserSettings, bool) {
	settings := h.Defaults
	if req.UserID != "" {
		var err error
		settings, err = h.Settings.GetWithDefaults(req.UserID, h.Defaults)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return models.UserSettings{}, false
		}
	}
	if req.PrioritisedLanguages.HasLanguages() {
		settings.Languages.PrioritisedLanguages = req.PrioritisedLanguages
	}
	return settings, true
}

func (h *LanguagesHandler) GetUserSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.GetWithDefaults(mux.Vars(r)["userID"], h.Defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *LanguagesHandler) PutUserSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.UserSettings
	if !decodeBody(w, r, &settings) {
		return
	}
	userID := mux.Vars(r)["userID"]
	if err := h.Settings.Update(userID, settings); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	log.Printf("[languages] settings updated for user %q", userID)
	h.GetUserSettings(w, r)
}

func (h *LanguagesHandler) DeleteUserSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.Settings.Delete(mux.Vars(r)["userID"]); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LanguagesHandler) OpenEditor(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	// seed with what the user effectively sorts by, so the first publish
	// does not silently drop inherited defaults
	effective, err := h.Settings.GetWithDefaults(userID, h.Defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, editor := h.Editors.Open(effective.LanguageGroups(), language_groups.PublisherFunc(h.Settings.Publisher(userID)))
	log.Printf("[languages] opened editor %s for user %q", id, userID)

	writeJSON(w, http.StatusCreated, editorResponse{ID: id, Groups: editor.Groups()})
}

func (h *LanguagesHandler) GetEditor(w http.ResponseWriter, r *http.Request) {
	id, editor, ok := h.editor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, editorResponse{ID: id, Groups: editor.Groups()})
}

func (h *LanguagesHandler) CloseEditor(w http.ResponseWriter, r *http.Request) {
	h.Editors.Close(mux.Vars(r)["editorID"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *LanguagesHandler) AddGroup(w http.ResponseWriter, r *http.Request) {
	id, editor, ok := h.editor(w, r)
	if !ok {
		return
	}
	editor.AddGroup()
	writeJSON(w, http.StatusOK, editorResponse{ID: id, Groups: editor.Groups()})
}

func (h *LanguagesHandler) ReplaceGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Languages []string `json:"languages"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	h.mutateGroup(w, r, func(e *language_groups.Editor, index int) error {
		return e.ReplaceGroup(index, body.Languages)
	})
}

func (h *LanguagesHandler) RemoveGroup(w http.ResponseWriter, r *http.Request) {
	h.mutateGroup(w, r, (*language_groups.Editor).RemoveGroup)
}

func (h *LanguagesHandler) MoveGroup(w http.ResponseWriter, r *http.Request) {
	move := (*language_groups.Editor).MoveGroupDown
	if mux.Vars(r)["direction"] == "up" {
		move = (*language_groups.Editor).MoveGroupUp
	}
	h.mutateGroup(w, r, move)
}

func (h *LanguagesHandler) mutateGroup(w http.ResponseWriter, r *http.Request, mutate func(*language_groups.Editor, int) error) {
	id, editor, ok := h.editor(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := mutate(editor, index); err != nil {
		if errors.Is(err, language_groups.ErrGroupIndexOutOfRange) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, editorResponse{ID: id, Groups: editor.Groups()})
}

func (h *LanguagesHandler) editor(w http.ResponseWriter, r *http.Request) (string, *language_groups.Editor, bool) {
	id := mux.Vars(r)["editorID"]
	editor, err := h.Editors.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return "", nil, false
	}
	return id, editor, true
}

func isSet(b *bool) bool {
	return b != nil && *b
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[languages] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

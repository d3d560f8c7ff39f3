package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/propflow/leadboard/internal/logger"
	"github.com/propflow/leadboard/internal/settings"
	"github.com/propflow/leadboard/models"
)

type addLocationRequest struct {
	Name string `json:"name"`
}

type locationChangedResponse struct {
	Name    string `json:"name"`
	Changed bool   `json:"changed"`
}

type propertyTypesPayload struct {
	PropertyTypes []string `json:"property_types"`
}

func (h *Handler) getSearchCriteria(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.store.SearchCriteria()
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, criteria)
}

func (h *Handler) updateSearchCriteria(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	// keep numbers as json.Number so integer overlays stay integers
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	fields := make(map[string]settings.Value, len(raw))
	for key, v := range raw {
		value, err := settings.ValueOf(v)
		if err != nil {
			log.Err(err).Str("key", key).Msg("unsupported criteria value")
			http.Error(w, "unsupported value for key "+key, http.StatusBadRequest)
			return
		}
		fields[key] = value
	}

	if err := h.store.UpdateSearchCriteria(fields); err != nil {
		h.storeError(w, r, err)
		return
	}

	criteria, err := h.store.SearchCriteria()
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, criteria)
}

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.store.SearchLocations()
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, locations)
}

func (h *Handler) addLocation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req addLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "location name is required", http.StatusBadRequest)
		return
	}

	changed, err := h.store.AddLocation(req.Name)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	status := http.StatusOK
	if changed {
		status = http.StatusCreated
	}
	respondJSON(w, status, locationChangedResponse{Name: req.Name, Changed: changed})
}

func (h *Handler) removeLocation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	changed, err := h.store.RemoveLocation(name)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if !changed {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, locationChangedResponse{Name: name, Changed: true})
}

func (h *Handler) getPriceRange(w http.ResponseWriter, r *http.Request) {
	priceRange, err := h.store.PriceRange()
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, priceRange)
}

func (h *Handler) updatePriceRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var priceRange models.PriceRange
	if err := json.NewDecoder(r.Body).Decode(&priceRange); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// min > max is stored as given; the dashboard surfaces it to the operator
	if err := h.store.UpdatePriceRange(priceRange.Min, priceRange.Max); err != nil {
		h.storeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, priceRange)
}

func (h *Handler) getPropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.store.PropertyTypes()
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, propertyTypesPayload{PropertyTypes: types})
}

func (h *Handler) updatePropertyTypes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload propertyTypesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.store.UpdatePropertyTypes(payload.PropertyTypes); err != nil {
		h.storeError(w, r, err)
		return
	}

	types, err := h.store.PropertyTypes()
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, propertyTypesPayload{PropertyTypes: types})
}

func (h *Handler) getIntegration(w http.ResponseWriter, r *http.Request) {
	integration, err := h.store.IntegrationConfig()
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, integration)
}

// storeError maps settings store failures onto HTTP responses. A malformed
// settings file stays a visible error for the operator to fix; it is never
// papered over with defaults.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var parseErr *settings.ParseError
	if errors.As(err, &parseErr) {
		log.Err(err).Str("path", parseErr.Path).Msg("settings file is not valid JSON")
		http.Error(w, "settings file is not valid JSON", http.StatusInternalServerError)
		return
	}

	log.Err(err).Msg("error accessing settings")
	http.Error(w, "error accessing settings", http.StatusInternalServerError)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package decoder

import (
	"encoding/json"
	"net/http"

	"github.com/cardops/magstripe/decoder/models"
	"github.com/go-chi/chi/v5"
)

// API is the HTTP API for the decode service.
type API struct {
	decoder *Service
}

func NewAPI(decoder *Service) *API {
	return &API{
		decoder: decoder,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/decode", a.decode)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request) {
	req := models.DecodeRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Swipe == "" && req.Track1 == "" && req.Track2 == "" && req.Track3 == "" {
		http.Error(w, "swipe or track data is required", http.StatusBadRequest)
		return
	}

	resp := a.decoder.Decode(req)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jermspeaks/slowtube/pkg/feed"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/manager"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/youtube"
)

type ImportSavedRequest struct {
	Entries      []feed.SavedEntry `json:"entries" validate:"required,min=1"`
	ExpectedKind string            `json:"expectedKind" validate:"omitempty,oneof=canonical thirdparty"`
}

// ImportSaved imports a saved-media export
func (s Server) ImportSaved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var req ImportSavedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		summary, err := s.manager.ImportBatch(r.Context(), req.Entries, manager.RefKind(req.ExpectedKind))
		if err != nil {
			log.Errorw("import failed", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
	}
}

// ImportLetterboxd imports a Letterboxd watchlist export. The request body is
// the raw csv file.
func (s Server) ImportLetterboxd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		entries, err := feed.ParseLetterboxd(r.Body)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if len(entries) == 0 {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("no entries in csv"))
			return
		}

		summary, err := s.manager.ImportFromCSV(r.Context(), entries)
		if err != nil {
			log.Errorw("letterboxd import failed", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
	}
}

// ImportWatchLater mirrors the watch-later playlist into the video feed
func (s Server) ImportWatchLater() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		result, err := s.manager.ImportWatchLater(r.Context())
		if err != nil {
			if errors.Is(err, youtube.ErrAuthRequired) {
				writeResponse(w, http.StatusUnauthorized, AuthRequiredResponse{AuthRequired: true})
				return
			}
			if errors.Is(err, manager.ErrWatchLaterNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Errorw("watch-later import failed", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

// RefreshShow re-syncs one show's metadata and episodes
func (s Server) RefreshShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		result, err := s.manager.RefreshShow(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			log.Errorw("refresh failed", "show", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}

// RefreshAllShows re-syncs every tracked show
func (s Server) RefreshAllShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		includeArchived := r.URL.Query().Get("includeArchived") == "true"

		summary, err := s.manager.RefreshAllShows(r.Context(), includeArchived)
		if err != nil {
			log.Errorw("refresh all failed", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
	}
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/machine"
	"github.com/jermspeaks/slowtube/pkg/storage"
)

// ListShows lists tracked shows
func (s Server) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		shows, err := s.manager.ListShows(r.Context())
		if err != nil {
			log.Errorw("failed to list shows", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: paginate(shows, params)})
	}
}

// ListMovies lists tracked movies
func (s Server) ListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		movies, err := s.manager.ListMovies(r.Context())
		if err != nil {
			log.Errorw("failed to list movies", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: paginate(movies, params)})
	}
}

// ListVideos lists tracked videos, optionally filtered by triage state
func (s Server) ListVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		state := storage.VideoState(r.URL.Query().Get("state"))
		switch state {
		case storage.VideoStateNew, storage.VideoStateFeed, storage.VideoStateInbox, storage.VideoStateArchive:
		default:
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid state parameter"))
			return
		}

		videos, err := s.manager.ListVideos(r.Context(), state)
		if err != nil {
			log.Errorw("failed to list videos", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: paginate(videos, params)})
	}
}

type UpdateVideoStateRequest struct {
	State string `json:"state" validate:"required,oneof=feed inbox archive"`
}

// UpdateVideoState moves a video through its triage workflow
func (s Server) UpdateVideoState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid video id"))
			return
		}

		var req UpdateVideoStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = s.manager.SetVideoState(r.Context(), id, storage.VideoState(req.State))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				writeErrorResponse(w, http.StatusNotFound, err)
			case errors.Is(err, machine.ErrInvalidTransition):
				writeErrorResponse(w, http.StatusBadRequest, err)
			default:
				log.Errorw("failed to update video state", "video", id, "error", err)
				writeErrorResponse(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

// GetStats summarizes the tracked library
func (s Server) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		stats, err := s.manager.Stats(r.Context())
		if err != nil {
			log.Errorw("failed to get stats", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: stats})
	}
}

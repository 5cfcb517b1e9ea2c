package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jermspeaks/slowtube/pkg/manager"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// AuthRequiredResponse tells clients the synchronization credentials are
// missing or expired and the OAuth flow has to be redone
type AuthRequiredResponse struct {
	AuthRequired bool `json:"authRequired"`
}

// Server houses all dependencies for the sync server to work such as loggers, managers, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.MediaManager
	validate   *validator.Validate
}

// New creates a new sync server
func New(logger *zap.SugaredLogger, manager manager.MediaManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/import/saved", s.ImportSaved()).Methods(http.MethodPost)
	v1.HandleFunc("/import/letterboxd", s.ImportLetterboxd()).Methods(http.MethodPost)

	v1.HandleFunc("/shows", s.ListShows()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/refresh", s.RefreshAllShows()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id}/refresh", s.RefreshShow()).Methods(http.MethodPost)

	v1.HandleFunc("/movies", s.ListMovies()).Methods(http.MethodGet)

	v1.HandleFunc("/videos", s.ListVideos()).Methods(http.MethodGet)
	v1.HandleFunc("/videos/import", s.ImportWatchLater()).Methods(http.MethodPost)
	v1.HandleFunc("/videos/{id}/state", s.UpdateVideoState()).Methods(http.MethodPut)

	v1.HandleFunc("/stats", s.GetStats()).Methods(http.MethodGet)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

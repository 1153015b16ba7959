// Package server exposes a gamemaster.Manager over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"cerke/communication"
	"cerke/game"
	"cerke/gamemaster"
	"cerke/perspective"
)

type Server struct {
	manager *gamemaster.Manager
	first   game.AbsoluteSide
	mux     *http.ServeMux
}

// New creates a server whose games start with first to move.
func New(manager *gamemaster.Manager, first game.AbsoluteSide) *Server {
	s := &Server{
		manager: manager,
		first:   first,
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /games", s.handleNewGame)
	s.mux.HandleFunc("GET /games/{id}", s.handleGetGame)
	s.mux.HandleFunc("POST /games/{id}/moves", s.handlePlay)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("serving games")
	return srv.ListenAndServe()
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := s.manager.NewGame(s.first)
	log.Info().Str("game", g.ID).Msg("game created")
	writeJSON(w, http.StatusCreated, gameResponse(g))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.manager.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("perspective"))
	if raw == "" {
		writeJSON(w, http.StatusOK, gameResponse(g))
		return
	}
	p, err := perspective.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.NewRelativeField(g.Engine.Field(), p))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.manager.Get(id); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req communication.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	move, side, err := req.Move()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	_, err = s.manager.Play(id, move, side)
	switch {
	case errors.Is(err, gamemaster.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(w, http.StatusConflict, err)
		return
	}

	g, err := s.manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(g))
}

func gameResponse(g *gamemaster.Game) communication.GameResponse {
	snap := g.Engine.Snapshot()
	return communication.GameResponse{
		ID:        g.ID,
		Turn:      snap.Turn,
		Moves:     snap.Moves,
		Field:     snap.Field,
		UpdatedAt: g.UpdatedAt(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Debug().Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}

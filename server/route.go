package server

import (
	"context"
	"net/http"

	"github.com/matryer/way"
	"github.com/zucenko/ludo/model"
)

const URI_WS = "/watch"
const URI_STATE = "/state"

func (s *GameServer) Router() *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_WS, s.HandleHttpCall())
	router.HandleFunc("GET", URI_STATE, s.HandleState())
	return router
}

// HandleState writes the latest state as text.
func (s *GameServer) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.Timeout)
		defer cancel()
		snap, found := s.Last(ctx)
		if !found {
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(HTTP_SUCCESS)
		w.Write([]byte(model.Render(s.Board, snap)))
	}
}

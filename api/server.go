package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/blueprint/stream"
)

// StatsSource reports the progress of the animation stream.
type StatsSource interface {
	Stats() stream.Stats
}

type Api struct {
	addr  string
	stats StatsSource
}

func NewApi(addr string, stats StatsSource) *Api {
	a := new(Api)
	a.addr = addr
	a.stats = stats
	return a
}

// Handler serves the client pages and the stats endpoint.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("client/dist")))
	mux.HandleFunc("/stats", a.handleStats)
	return mux
}

func (a *Api) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.stats.Stats()); err != nil {
		log.Printf("stats: %v", err)
	}
}

// Serve listens until ctx is done, then shuts the server down.
func (a *Api) Serve(ctx context.Context) error {
	server := &http.Server{Addr: a.addr, Handler: a.Handler()}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s...", a.addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

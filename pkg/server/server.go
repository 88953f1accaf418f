// Package server exposes the session state over HTTP and WebSocket so
// a UI or the developer panel can drive the same store the CLI uses.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bridgeswap/pkg/catalog"
	swaperr "bridgeswap/pkg/errors"
	"bridgeswap/pkg/liquidity"
	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/session"
	"bridgeswap/pkg/stats"
	"bridgeswap/pkg/tracker"
	"bridgeswap/pkg/types"
)

// statsInterval is the cadence of the periodic stats broadcast.
const statsInterval = time.Second

// Server serves the REST API and the WebSocket feed.
type Server struct {
	log   *zap.Logger
	store *session.Store
	calc  *quote.Calculator
	hub   *Hub

	quoteMu sync.RWMutex
	quotes  map[string]*types.QuoteResult

	stageInterval time.Duration
	now           func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithStageInterval overrides the cadence used to derive swap status
// from quote age.
func WithStageInterval(d time.Duration) Option {
	return func(s *Server) { s.stageInterval = d }
}

// WithNow injects the clock.
func WithNow(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a server over the given store and calculator.
func New(log *zap.Logger, store *session.Store, calc *quote.Calculator, opts ...Option) *Server {
	s := &Server{
		log:           log,
		store:         store,
		calc:          calc,
		hub:           newHub(log),
		quotes:        make(map[string]*types.QuoteResult),
		stageInterval: tracker.DefaultInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/networks", s.handleNetworks).Methods(http.MethodGet)
	api.HandleFunc("/pools", s.handlePools).Methods(http.MethodGet)
	api.HandleFunc("/positions", s.handlePositions).Methods(http.MethodGet)
	api.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/portfolio", s.handlePortfolio).Methods(http.MethodGet)
	api.HandleFunc("/quote", s.handleCreateQuote).Methods(http.MethodPost)
	api.HandleFunc("/quote/{id}", s.handleGetQuote).Methods(http.MethodGet)
	api.HandleFunc("/status/{id}", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.hub.serveWS)
	return r
}

// ListenAndServe runs the server until ctx is cancelled. The hub, the
// ledger-append feed and the stats ticker run alongside the listener.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	go s.hub.Run(ctx)

	cancelAppend := s.store.History.SubscribeAppend(func(rec types.TransactionRecord) {
		s.hub.Broadcast("transaction", rec)
	})
	defer cancelAppend()

	go s.statsLoop(ctx)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.Info("server listening", zap.String("addr", addr))
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) statsLoop(ctx context.Context) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.hub.ClientCount() == 0 {
				continue
			}
			s.hub.Broadcast("stats", stats.Summarize(s.store.History.Transactions()))
		}
	}
}

func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

func (s *Server) handlePools(w http.ResponseWriter, r *http.Request) {
	pools := liquidity.Pools()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pools": pools,
		"stats": liquidity.SummarizePools(pools),
	})
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	positions := liquidity.Positions()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"positions": positions,
		"stats":     liquidity.SummarizePositions(positions),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records := s.store.History.Transactions()
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]types.TransactionRecord, 0, len(records))
		for _, rec := range records {
			if string(rec.Status) == status {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stats.Summarize(s.store.History.Transactions()))
}

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req types.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, swaperr.Wrap(swaperr.KindImportFormat, "invalid request body", err))
		return
	}
	q, err := s.calc.Quote(req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.quoteMu.Lock()
	s.quotes[q.ID] = q
	s.quoteMu.Unlock()

	s.store.History.Add(types.TransactionRecord{
		SourceChain:  req.SourceChain,
		SourceToken:  q.SourceToken,
		SourceAmount: q.SourceAmount,
		DestChain:    req.DestChain,
		DestToken:    q.DestToken,
		DestAmount:   q.ExpectedAmount,
	})

	s.log.Info("quote created",
		zap.String("id", q.ID),
		zap.String("source", q.SourceToken),
		zap.String("dest", q.DestToken))
	writeJSON(w, http.StatusCreated, q)
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.quoteMu.RLock()
	q, ok := s.quotes[id]
	s.quoteMu.RUnlock()
	if !ok {
		writeError(w, swaperr.Newf(swaperr.KindNotFound, "quote %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// handleStatus derives the swap stage from the quote's age, stepping
// one stage per interval without running a scheduler per quote.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.quoteMu.RLock()
	q, ok := s.quotes[id]
	s.quoteMu.RUnlock()
	if !ok {
		writeError(w, swaperr.Newf(swaperr.KindNotFound, "quote %s not found", id))
		return
	}

	stage, progress := tracker.StageAfter(s.now().Sub(q.CreatedAt), s.stageInterval)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote_id":    q.ID,
		"stage":       stage,
		"stage_label": stage.Label(),
		"progress":    progress,
		"terminal":    stage == tracker.StageCompleted,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"clients":   s.hub.ClientCount(),
		"timestamp": s.now().UnixMilli(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, `{"error":"json_encoding_failed"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := ""
	if typed, ok := swaperr.As(err); ok {
		kind = string(typed.Kind)
		switch typed.Kind {
		case swaperr.KindNotFound:
			status = http.StatusNotFound
		default:
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"kind":    kind,
			"message": err.Error(),
		},
	})
}

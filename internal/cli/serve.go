package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/scenewire/scenewire/pkg/errors"
	"github.com/scenewire/scenewire/pkg/mirror"
	"github.com/scenewire/scenewire/pkg/scene"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string        // listen address
	sessionID string        // stable session id for snapshot keys
	noStore   bool          // skip snapshot publishing
	sweep     time.Duration // idle window for POST /sweep
}

// serveCommand creates the serve command. It loads a scene description once
// and serves serialization passes over HTTP, the way a notebook kernel
// serves scene state to a browser viewer.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [scene.toml]",
		Short: "Serve a scene over HTTP for remote viewers",
		Long: `Serve exposes a scene over HTTP:

  GET  /scene        serialize the scene and return the wire tree
  GET  /data/{hash}  return a cached array payload (?encoding=base64 for text)
  POST /sweep        evict idle arrays from the session cache
  GET  /healthz      liveness probe

Repeated GET /scene requests are incremental: unchanged arrays are served
from the content-addressed cache and dependency lists are diffed against
the previous pass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8742", "listen address")
	cmd.Flags().StringVar(&opts.sessionID, "session", "", "session id for snapshot keys (default: random)")
	cmd.Flags().BoolVar(&opts.noStore, "no-store", false, "skip snapshot publishing")
	cmd.Flags().DurationVar(&opts.sweep, "sweep-window", mirror.DefaultSweepWindow, "idle window for POST /sweep")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, input string, opts *serveOpts) error {
	win, err := loadSceneFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noStore)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &sceneServer{
		runner: runner,
		root:   win,
		opts:   opts,
	}

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shut down when the command context is cancelled (SIGINT/SIGTERM).
	go func() {
		<-cmd.Context().Done()
		_ = httpServer.Close()
	}()

	c.Logger.Info("serving scene", "addr", opts.addr, "scene", input)
	printInfo("Serving %s on %s", input, opts.addr)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// =============================================================================
// Scene Server
// =============================================================================

// sceneServer serves serialization passes over one shared session. The
// mutex serializes passes: concurrent passes over the same session would
// race on the dependency history.
type sceneServer struct {
	mu     sync.Mutex
	runner *mirror.Runner
	root   scene.Object
	opts   *serveOpts
}

func (s *sceneServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/scene", s.handleScene)
	r.Get("/data/{hash}", s.handleData)
	r.Post("/sweep", s.handleSweep)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (s *sceneServer) handleScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	result, err := s.runner.Synchronize(r.Context(), s.root, mirror.Options{
		SessionID:     s.opts.sessionID,
		SkipPublish:   s.opts.noStore,
		IgnoreHistory: r.URL.Query().Get("full") == "true",
	})
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Key != "" {
		w.Header().Set("X-Snapshot-Key", result.Key)
	}
	_, _ = w.Write(result.Data)
}

func (s *sceneServer) handleData(w http.ResponseWriter, r *http.Request) {
	// Content hashes use the standard base64 alphabet, so clients must
	// percent-encode the embedded "/" and "+" characters.
	hash := chi.URLParam(r, "hash")
	if unescaped, err := url.PathUnescape(hash); err == nil {
		hash = unescaped
	}
	binary := r.URL.Query().Get("encoding") != "base64"

	s.mu.Lock()
	data, err := s.runner.FetchData(r.Context(), hash, binary)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	if binary {
		w.Header().Set("Content-Type", "application/octet-stream")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	_, _ = w.Write(data)
}

func (s *sceneServer) handleSweep(w http.ResponseWriter, r *http.Request) {
	window := s.opts.sweep
	if v := r.URL.Query().Get("window"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid window %q", v))
			return
		}
		window = parsed
	}

	s.mu.Lock()
	evicted := s.runner.Sweep(r.Context(), window)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"evicted": evicted})
}

// writeError maps domain error codes onto HTTP statuses and emits a JSON
// error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeArrayNotFound, apperrors.ErrCodeSnapshotNotFound, apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidHash, apperrors.ErrCodeInvalidScene, apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": apperrors.UserMessage(err)})
}

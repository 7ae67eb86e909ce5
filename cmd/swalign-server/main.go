// Command swalign-server provides a REST API for local alignment.
//
// Usage:
//
//	swalign-server [options]
//
// Options:
//
//	-port           Port to listen on (default: 8080)
//	-host           Host to bind to (default: localhost)
//	-max-len        Longest accepted sequence, 0 for no limit (default: 2000)
//	-max-naive-len  Longest sequence for the naive strategy, 0 for no limit (default: 300)
//	-config         YAML configuration file
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aria-lang/swaffine-go/api/handlers"
	"github.com/aria-lang/swaffine-go/api/middleware"
	"github.com/aria-lang/swaffine-go/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	port := flag.Int("port", config.DefaultPort, "Port to listen on")
	host := flag.String("host", config.DefaultHost, "Host to bind to")
	maxLen := flag.Int("max-len", config.DefaultMaxSequenceLength, "Longest accepted sequence, 0 for no limit")
	maxNaive := flag.Int("max-naive-len", config.DefaultMaxNaiveLength, "Longest sequence for the naive strategy, 0 for no limit")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Could not load config: %v\n", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "host":
			cfg.Server.Host = *host
		case "max-len":
			cfg.Server.MaxSequenceLength = *maxLen
		case "max-naive-len":
			cfg.Server.MaxNaiveLength = *maxNaive
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v\n", err)
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	api := &handlers.API{
		MaxSequenceLength: cfg.Server.MaxSequenceLength,
		MaxNaiveLength:    cfg.Server.MaxNaiveLength,
	}
	r.Route("/api", api.Routes)

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>swaffine API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>swaffine API</h1>
    <p>Smith-Waterman local alignment with affine gap penalties.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/local</code>
        <p>Align two sequences and return the best local alignment.</p>
        <pre>{"sequence1": "TGTTACGG", "sequence2": "GGTTGACTA", "open_gap": -2, "ext_gap": -1}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/matrix</code>
        <p>Return the filled score matrix with traceback moves.</p>
        <pre>{"sequence1": "HEAGAWGHEE", "sequence2": "PAWHEAE", "table": "blosum62"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/alignment/score</code>
        <p>Return only the best local alignment score.</p>
        <pre>{"sequence1": "ACACACTA", "sequence2": "AGCACACA", "match": 2, "mismatch": -1}</pre>
    </div>

    <div class="endpoint">
        <span class="method" style="background:#2563eb">GET</span> <code>/api/tables</code>
        <p>List built-in substitution tables.</p>
    </div>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("swaffine API server starting on http://%s (max sequence length %d, naive %d)\n",
		addr, cfg.Server.MaxSequenceLength, cfg.Server.MaxNaiveLength)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}

// Command biopm-server provides a REST API for point-mutation analysis.
//
// Usage:
//
//	biopm-server [options]
//
// Options:
//
//	--config         Config file (default: ./biopm.yaml or $HOME/.biopm/biopm.yaml)
//	--host           Host to bind to (default: localhost)
//	--port           Port to listen on (default: 8080)
//	--codon-table    NCBI genetic code id (default: 1)
//	--known-mutations YAML catalogue of known amino acid changes
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/aria-lang/biopm/api/handlers"
	"github.com/aria-lang/biopm/api/middleware"
	"github.com/aria-lang/biopm/internal/config"
	"github.com/aria-lang/biopm/pkg/biopm"
)

func main() {
	cfgFile := pflag.String("config", "", "Config file")
	pflag.String("host", "localhost", "Host to bind to")
	pflag.Int("port", 8080, "Port to listen on")
	pflag.Int("codon-table", 1, "NCBI genetic code id")
	pflag.Bool("translate", true, "Translate codons unless a request says otherwise")
	pflag.String("known-mutations", "", "YAML catalogue of known amino acid changes")
	pflag.Int("min-optimized", 0, "Synonymous changes needed to call a query codon optimized")
	pflag.Int("workers", 0, "Goroutines used to rank queries (default: NumCPU)")
	pflag.Parse()

	v := config.NewViper()
	v.BindPFlag(config.KeyServerHost, pflag.Lookup("host"))
	v.BindPFlag(config.KeyServerPort, pflag.Lookup("port"))
	v.BindPFlag(config.KeyCodonTable, pflag.Lookup("codon-table"))
	v.BindPFlag(config.KeyTranslate, pflag.Lookup("translate"))
	v.BindPFlag(config.KeyKnownMutations, pflag.Lookup("known-mutations"))
	v.BindPFlag(config.KeyMinOptimized, pflag.Lookup("min-optimized"))
	v.BindPFlag(config.KeyWorkers, pflag.Lookup("workers"))

	if err := config.ReadFile(v, *cfgFile); err != nil {
		log.Fatalf("%v", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	analyzer, err := cfg.Analyzer(logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	r := newRouter(handlers.New(analyzer, cfg.Translate), middleware.RequestLogger(logger))

	addr := cfg.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
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

	log.Printf("biopm API server v%s starting on http://%s (codon table %d)\n", biopm.Version(), addr, cfg.CodonTable)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}

func newRouter(h *handlers.Handler, requestLogger func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Mount("/api", h.Routes())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(homePage))
	})

	return r
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>biopm API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>biopm API</h1>
    <p>Point-mutation status of aligned nucleotide sequences.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/analyze</code>
        <p>Classify a query against its aligned reference.</p>
        <pre>{"query": "ATGACC", "reference": "ATGGCC", "pattern": true}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/pattern</code>
        <p>Mutation pattern with nucleotide and amino acid notation.</p>
        <pre>{"query": "ATG-CC", "reference": "ATGGCC"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/rank</code>
        <p>Rank queries against one reference, best first.</p>
        <pre>{"reference": "ATGGCC", "queries": [{"id": "a", "sequence": "ATGACC"}]}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/compare</code>
        <p>Compare the status of a pair with a category name.</p>
        <pre>{"query": "ATGGCT", "reference": "ATGGCC", "category": "PM"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">GET</span> <code>/api/categories</code>
        <p>Status categories, best first.</p>
    </div>
</body>
</html>`

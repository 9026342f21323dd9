// SPDX-License-Identifier: MIT

// Command numlab-server serves numbered exercise records over HTTP and runs
// the numerical methods on them.
//
// Usage:
//
//	numlab-server -addr :3001 -data records.json -seed
//
// Routes:
//
//	GET  /{no}                  fetch a record
//	PUT  /update/{no}           replace an existing record
//	GET  /records               list records
//	POST /records               insert a record
//	POST /solve/{method}/{no}   run a method on a record
//	GET  /plot/{no}.svg         plot the record's equation (?method= marks iterates)
//	GET  /methods               list methods
//	GET  /health                liveness check
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/numlab/store"
)

func main() {
	addr := flag.String("addr", ":3001", "listen address")
	data := flag.String("data", "", "JSON snapshot file; empty keeps records in memory")
	seed := flag.Bool("seed", false, "preload one sample record per method when starting empty")
	flag.Parse()

	repo, err := openRepository(*data, *seed)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newServer(repo),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("numlab server listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openRepository(path string, seed bool) (store.Repository, error) {
	var recs []store.Record
	if seed {
		recs = store.Seed()
	}
	if path == "" {
		return store.NewMemory(recs...)
	}
	f, err := store.OpenFile(path, recs...)
	if err != nil {
		return nil, err
	}
	log.Printf("records snapshot: %s", f.Path())

	return f, nil
}

package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lab1702/waypointwars/match"
	"github.com/lab1702/waypointwars/transport"
)

func main() {
	bind := flag.String("bind", "", "address to listen on, e.g. :8080 (required)")
	seed := flag.Uint64("seed", 0, "world generation seed (default: random)")
	tickMs := flag.Int("tick-ms", 100, "simulation tick interval in milliseconds")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	if *bind == "" {
		log.Fatal("-bind is required")
	}

	if !seedSet {
		random, err := randomSeed()
		if err != nil {
			log.Fatalf("generate random seed: %v", err)
		}
		*seed = random
	}

	log.Printf("starting match: seed=%d tick=%dms", *seed, *tickMs)

	m, err := match.NewMatch(match.Config{
		Seed:         *seed,
		TickInterval: time.Duration(*tickMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("create match: %v", err)
	}

	listener := transport.NewListener(m.Events())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", listener.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:         *bind,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go m.Run(ctx)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	log.Printf("listening on %s", *bind)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("shutting down (signal: %v)...", sig)

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	log.Println("stopped")
}

func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

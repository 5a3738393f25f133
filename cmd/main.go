package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"taskapi/internal/server"
	"taskapi/internal/store"
	"taskapi/pkg/mq"
)

func main() {
	httpAddr := flag.String("http-addr", ":8080", "http listen address")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New()
	srv := server.New(st, mq.Noop{})

	log.Printf("listening on %s", *httpAddr)
	if err := srv.ListenAndServe(ctx, *httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}

// Copyright 2023 Cardinal Cryptography
// SPDX-License-Identifier: Apache-2.0

// Package metrics exposes client-side prometheus counters and an optional
// metrics http server. All collectors are registered on the default
// registry, so embedding applications that already run a prometheus
// endpoint pick them up for free.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.New("pkg", "metrics")

var (
	// TransactionsSubmitted counts extrinsics handed to the node.
	TransactionsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aleph_client",
		Name:      "transactions_submitted_total",
		Help:      "Number of extrinsics submitted to the chain",
	})

	// TransactionsFailed counts extrinsics that were dropped, usurped or
	// reported invalid before reaching the requested status.
	TransactionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aleph_client",
		Name:      "transactions_failed_total",
		Help:      "Number of submitted extrinsics that did not reach the requested status",
	})

	// TransactionStatusDuration observes submission-to-status latency,
	// labelled with the status waited for.
	TransactionStatusDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aleph_client",
		Name:      "transaction_status_seconds",
		Help:      "Time from submission until the requested transaction status",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"status"})

	// StorageQueries counts raw storage reads, labelled by pallet.
	StorageQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleph_client",
		Name:      "storage_queries_total",
		Help:      "Number of storage queries, per pallet",
	}, []string{"pallet"})

	// ConnectionRetries counts failed connection attempts.
	ConnectionRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aleph_client",
		Name:      "connection_retries_total",
		Help:      "Number of failed websocket connection attempts",
	})
)

const shutdownTimeout = 5 * time.Second

// Server is a metrics http server over the default prometheus registry.
type Server struct {
	server *http.Server
	done   chan error
}

// NewServer is a constructor for a metrics server at the given address.
func NewServer(address string) *Server {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: &http.Server{Addr: address, Handler: m},
		done:   make(chan error, 1),
	}
}

// Start binds the listener and serves in the background until Stop.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	logger.Info("Starting metrics server", "address", "http://"+listener.Addr().String()+"/metrics")

	go func() {
		s.done <- s.server.Serve(listener)
	}()
	return nil
}

// Stop will stop the metrics server, waiting for in-flight scrapes.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	err := <-s.done
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	loggerFactory "github.com/walkure/bmeprobe/pkg/logger"
	"github.com/walkure/bmeprobe/pkg/revision"
)

var listenAddr = flag.String("listen", "localhost:8000", "Listening Address")
var logLevel = flag.String("loglevel", "INFO", "Log Level")

// name of binary file populated at build-time
var binName = ""

func main() {
	flag.Usage = revision.Usage(binName, "Answers hello world on / and serves request metrics on /metrics.")
	flag.Parse()

	loggerFactory.InitializeLogger(*logLevel, os.Stdout)
	logger := loggerFactory.GetLogger("main")

	serv := &http.Server{
		Addr:              *listenAddr,
		Handler:           newHandler(prometheus.NewRegistry()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Now listening", slog.String("address", serv.Addr))

		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("stop serving", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Warn("shutting down server")

	if err := serv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", slog.String("error", err.Error()))
		if err := serv.Close(); err != nil {
			logger.Error("server close", slog.String("error", err.Error()))
		}
	}
}

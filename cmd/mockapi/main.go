package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"walletgg/internal/mockapi"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr         string
		emptyCatalog bool
		jsonLogs     bool
	)
	cmd := &cobra.Command{
		Use:   "mockapi",
		Short: "Serve an in-memory WALLET.GG API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if jsonLogs {
				log.SetFormatter(&logrus.JSONFormatter{})
			}

			opts := []mockapi.Option{mockapi.WithLogger(log)}
			if emptyCatalog {
				opts = append(opts, mockapi.WithEmptyCatalog())
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           mockapi.New(opts...).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdown)
			}()

			log.WithField("addr", addr).Info("mock api listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "listen address")
	cmd.Flags().BoolVar(&emptyCatalog, "empty-catalog", false, "start without products")
	cmd.Flags().BoolVar(&jsonLogs, "json", false, "log as JSON")
	return cmd
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitcoin-sv/bank-wallet/cmd/bank-wallet/services"
	"github.com/bitcoin-sv/bank-wallet/config"
	walletLogger "github.com/bitcoin-sv/bank-wallet/internal/logger"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run bank wallet: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, dumpConfigFile := parseFlags()

	walletConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := walletLogger.NewLogger(walletConfig.LogLevel, walletConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))
	logger.Info("Starting bank wallet", slog.String("base_currency", walletConfig.BaseCurrency), slog.Int("wallets", len(walletConfig.Wallets)))

	go func() {
		if walletConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", walletConfig.ProfilerAddr))

			err := http.ListenAndServe(walletConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("Failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if walletConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", walletConfig.Prometheus.Endpoint))

			mux := http.NewServeMux()
			mux.Handle(walletConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(walletConfig.Prometheus.Addr, mux)
			if err != nil {
				logger.Error("Failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown, err := services.StartWallet(ctx, logger, walletConfig)
	if err != nil {
		return fmt.Errorf("failed to start wallet: %v", err)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-signalChan
	logger.Info("Received shutdown signal", slog.String("reason", sig.String()))

	cancel()
	shutdown()

	return nil
}

func parseFlags() (string, string) {
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration file")

	flag.Parse()

	if *help {
		fmt.Println("usage: bank-wallet [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -config=/location")
		fmt.Println("          directory to look for config (default='')")
		fmt.Println("")
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          dump config to specified file and exit")
		fmt.Println("")
		os.Exit(0)
	}

	return *configDir, *dumpConfigFile
}

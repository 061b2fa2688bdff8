// Command beaconcore boots the consensus core standalone: it loads chain
// parameters, opens a storage backend, and seeds a genesis FFG processor,
// logging the wired components and then idling until the process is asked
// to shut down. Networking, the validator attestation pipeline, and the
// rest of full state-transition logic are external collaborators this core
// does not implement (spec §1); this binary exists to exercise the pieces
// that are implemented.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumenforge/beacon/clock"
	"github.com/lumenforge/beacon/config"
	"github.com/lumenforge/beacon/consensus"
	"github.com/lumenforge/beacon/storage"
	"github.com/lumenforge/beacon/storage/memory"
	"github.com/lumenforge/beacon/storage/pebblestore"
	"github.com/lumenforge/beacon/types"
)

func main() {
	configPath := flag.String("config", "", "Path to a chain-parameter YAML file; flags below are used when absent.")
	genesisTime := flag.Uint64("genesis-time", 0, "Genesis time (Unix timestamp). Defaults to 10 seconds from now.")
	validators := flag.Uint64("validators", 64, "Number of genesis validators.")
	storageBackend := flag.String("storage-backend", "memory", "Storage backend: memory or pebble.")
	storagePath := flag.String("storage-path", "./beacon-data", "Storage directory (pebble backend only).")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error).")
	flag.Parse()

	level := slog.LevelInfo
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg := &config.ChainConfig{
		ValidatorCount: *validators,
		GenesisTime:    *genesisTime,
		StorageBackend: *storageBackend,
		StoragePath:    *storagePath,
		Hasher:         "keccak256",
	}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if cfg.GenesisTime == 0 {
		cfg.GenesisTime = uint64(time.Now().Unix()) + 10
		logger.Info("genesis time not set, using now + 10 seconds", "genesis_time", cfg.GenesisTime)
	}

	logger.Info("config",
		"genesis_time", cfg.GenesisTime,
		"validators", cfg.ValidatorCount,
		"storage_backend", cfg.StorageBackend,
	)

	store, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open storage backend", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	genesisCheckpoint := types.Checkpoint{CPEpoch: 0, Root: types.H256{}}
	processor := consensus.NewProcessor(genesisCheckpoint)

	c := clock.New(cfg.GenesisTime)

	fmt.Printf("\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━ beaconcore ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	logger.Info("core wired",
		"storage_backend", cfg.StorageBackend,
		"current_slot", c.CurrentSlot(),
		"current_epoch", c.CurrentEpoch(),
		"finalized_epoch", processor.FinalizedCheckpoint.Epoch(),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
}

func openStore(cfg *config.ChainConfig) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "pebble":
		return pebblestore.Open(cfg.StoragePath)
	case "memory", "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("beaconcore: unknown storage backend %q", cfg.StorageBackend)
	}
}

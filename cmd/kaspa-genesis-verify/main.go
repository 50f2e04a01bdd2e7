package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kaspa-genesis/verify/internal/config"
	"github.com/kaspa-genesis/verify/internal/consensus"
	"github.com/kaspa-genesis/verify/internal/kvsource"
	"github.com/kaspa-genesis/verify/internal/report"
	"github.com/kaspa-genesis/verify/internal/verify"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the only place this program maps a result to a process exit
// code: 0 on full success, 1 on any failure. No other package decides an
// exit status.
func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := kvsource.OpenBolt(cfg.DataDir)
	if err != nil {
		log.Error("open store", "err", err)
		return 1
	}
	defer store.Close()

	var checkpoint *kvsource.JSONSnapshot
	if cfg.CheckpointJSONPath != "" {
		checkpoint, err = kvsource.LoadJSONSnapshot(cfg.CheckpointJSONPath)
		if err != nil {
			log.Error("load checkpoint snapshot", "err", err)
			return 1
		}
	}

	driver := &verify.Driver{
		Store:      store,
		Checkpoint: checkpoint,
		Constants:  verify.DefaultConstants(),
		Log:        log,
	}

	rep, runErr := driver.Run()
	if err := report.WriteText(os.Stdout, rep); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if runErr != nil {
		var verr *consensus.VerifyError
		if errors.As(runErr, &verr) {
			fmt.Fprintf(os.Stderr, "verification failed: %s\n", verr)
		} else {
			fmt.Fprintf(os.Stderr, "verification failed: %v\n", runErr)
		}
		return 1
	}

	if !rep.Success() {
		fmt.Fprintln(os.Stderr, "verification failed")
		return 1
	}

	fmt.Fprintln(os.Stdout, "genesis proof verified")
	return 0
}

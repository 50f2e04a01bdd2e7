// Package config parses the command-line flags this verifier accepts and
// produces a validated Config, including the consensus-003 path
// normalization rule spec.md §6 requires of the data directory.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

const consensusSubdir = "consensus/consensus-003"

// NodeType selects which producer node wrote the consensus database this
// verifier reads. It does not change decoding logic (the on-disk schema is
// shared), but is recorded for diagnostics and required by spec.md §6.
type NodeType string

const (
	NodeTypeRust NodeType = "rust"
	NodeTypeGo   NodeType = "go"
)

// Config is the fully validated set of inputs the driver needs to run.
// It is constructed once in main; nothing in internal/verify reads flags
// directly.
type Config struct {
	NodeType             NodeType
	DataDir              string
	PreCheckpointDataDir string
	CheckpointJSONPath   string
	Verbose              bool
}

// Parse parses args (normally os.Args[1:]) and returns a validated Config.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("kaspa-genesis-verify", flag.ContinueOnError)

	var nodeType string
	var dataDir string
	var preCheckpointDataDir string
	var checkpointJSON string
	var verbose bool

	fs.StringVar(&nodeType, "node-type", "", "producer node type: rust or go (required)")
	fs.StringVar(&dataDir, "datadir", "", "path to the consensus database directory (required)")
	fs.StringVar(&preCheckpointDataDir, "pre-checkpoint-datadir", "", "path to a full pre-checkpoint database (informational; only the JSON sidecar is read)")
	fs.StringVar(&checkpointJSON, "checkpoint-json", "", "path to the pre-checkpoint JSON sidecar")
	fs.BoolVar(&verbose, "verbose", false, "log a per-step trace during chain walks")
	fs.BoolVar(&verbose, "v", false, "shorthand for -verbose")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if nodeType != string(NodeTypeRust) && nodeType != string(NodeTypeGo) {
		return Config{}, fmt.Errorf("config: --node-type must be %q or %q, got %q", NodeTypeRust, NodeTypeGo, nodeType)
	}
	if dataDir == "" {
		return Config{}, fmt.Errorf("config: --datadir is required")
	}

	resolvedDataDir := dataDir
	if NodeType(nodeType) == NodeTypeRust {
		resolvedDataDir = NormalizeDataDir(dataDir)
		if _, err := os.Stat(resolvedDataDir); err != nil {
			return Config{}, fmt.Errorf("config: consensus-003 directory not found: %s", resolvedDataDir)
		}
	}

	return Config{
		NodeType:             NodeType(nodeType),
		DataDir:              resolvedDataDir,
		PreCheckpointDataDir: preCheckpointDataDir,
		CheckpointJSONPath:   checkpointJSON,
		Verbose:              verbose,
	}, nil
}

// NormalizeDataDir appends the consensus-003 subdirectory to dir unless it
// already ends in it. Only applies to the rust node-type convention, per
// spec.md §6's path adjustment rule ("when --node-type=rust ...").
func NormalizeDataDir(dir string) string {
	trimmed := strings.TrimRight(dir, "/")
	if strings.HasSuffix(trimmed, consensusSubdir) {
		return trimmed
	}
	if trimmed == "" {
		return consensusSubdir
	}
	return trimmed + "/" + consensusSubdir
}

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// LogFormatPlain is a colored text format suitable for terminals.
	LogFormatPlain = "plain"
	// LogFormatJSON outputs one JSON object per log line.
	LogFormatJSON = "json"

	// SigningVariantMinPk selects 48-byte public keys and 96-byte signatures.
	SigningVariantMinPk = "min-pk"
	// SigningVariantMinSig selects 96-byte public keys and 48-byte signatures.
	SigningVariantMinSig = "min-sig"
)

const (
	DefaultConfigDir = "config"
	DefaultDataDir   = "data"

	defaultConfigFileName  = "config.toml"
	defaultPrivValKeyName  = "priv_validator_key.json"
	defaultConfigFilePath  = DefaultConfigDir + "/" + defaultConfigFileName
	defaultPrivValKeyPath  = DefaultConfigDir + "/" + defaultPrivValKeyName
	defaultGenesisFileName = "genesis.json"
	defaultGenesisPath     = DefaultConfigDir + "/" + defaultGenesisFileName
)

// Config defines the top-level configuration for an emerald node.
type Config struct {
	BaseConfig `mapstructure:",squash"`

	Consensus *ConsensusConfig `mapstructure:"consensus"`
	Sync      *SyncConfig      `mapstructure:"sync"`
	Log       *LogConfig       `mapstructure:"log"`
}

// DefaultConfig returns a default configuration for an emerald node.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Consensus:  DefaultConsensusConfig(),
		Sync:       DefaultSyncConfig(),
		Log:        DefaultLogConfig(),
	}
}

// SetRoot sets the RootDir for all config structs.
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.Consensus.ValidateBasic(); err != nil {
		return ErrInSection{Err: err, Section: "consensus"}
	}
	if err := cfg.Sync.ValidateBasic(); err != nil {
		return ErrInSection{Err: err, Section: "sync"}
	}
	if err := cfg.Log.ValidateBasic(); err != nil {
		return ErrInSection{Err: err, Section: "log"}
	}
	return nil
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration for an emerald node.
type BaseConfig struct {
	// The root directory for all data.
	RootDir string `mapstructure:"home"`

	// A custom human readable name for this node.
	Moniker string `mapstructure:"moniker"`

	// The ID of the chain this node joins.
	ChainID string `mapstructure:"chain_id"`

	// Which pairing-based signing suite the node's validator key uses.
	// One of "min-pk" or "min-sig".
	SigningVariant string `mapstructure:"signing_variant"`

	// Path to the JSON file containing the private key to use as a validator.
	PrivValidatorKey string `mapstructure:"priv_validator_key_file"`

	// Path to the JSON file containing the genesis validator keys.
	Genesis string `mapstructure:"genesis_file"`
}

// DefaultBaseConfig returns a default base configuration for an emerald node.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		Moniker:          defaultMoniker,
		ChainID:          "emerald-1",
		SigningVariant:   SigningVariantMinPk,
		PrivValidatorKey: defaultPrivValKeyPath,
		Genesis:          defaultGenesisPath,
	}
}

// PrivValidatorKeyFile returns the full path to the priv_validator_key.json file.
func (cfg BaseConfig) PrivValidatorKeyFile() string {
	return rootify(cfg.PrivValidatorKey, cfg.RootDir)
}

// GenesisFile returns the full path to the genesis.json file.
func (cfg BaseConfig) GenesisFile() string {
	return rootify(cfg.Genesis, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	if cfg.Moniker == "" {
		return ErrEmptyMoniker
	}
	if cfg.ChainID == "" {
		return ErrEmptyChainID
	}
	switch cfg.SigningVariant {
	case SigningVariantMinPk, SigningVariantMinSig:
	default:
		return ErrUnknownSigningVariant
	}
	return nil
}

//-----------------------------------------------------------------------------
// ConsensusConfig

// ConsensusConfig defines the configuration for the consensus service,
// including timeouts.
type ConsensusConfig struct {
	// How long we wait for a proposal block before prevoting nil.
	TimeoutPropose time.Duration `mapstructure:"timeout_propose"`
	// How long we wait after receiving +2/3 prevotes for "anything".
	TimeoutPrevote time.Duration `mapstructure:"timeout_prevote"`
	// How long we wait after receiving +2/3 precommits for "anything".
	TimeoutPrecommit time.Duration `mapstructure:"timeout_precommit"`
	// How long we wait after committing a block, before starting on the new
	// height.
	TimeoutCommit time.Duration `mapstructure:"timeout_commit"`
}

// DefaultConsensusConfig returns a default configuration for the consensus
// service.
func DefaultConsensusConfig() *ConsensusConfig {
	return &ConsensusConfig{
		TimeoutPropose:   3 * time.Second,
		TimeoutPrevote:   1 * time.Second,
		TimeoutPrecommit: 1 * time.Second,
		TimeoutCommit:    1 * time.Second,
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *ConsensusConfig) ValidateBasic() error {
	for _, timeout := range []time.Duration{
		cfg.TimeoutPropose, cfg.TimeoutPrevote, cfg.TimeoutPrecommit, cfg.TimeoutCommit,
	} {
		if timeout <= 0 {
			return ErrNonPositiveTimeout
		}
	}
	return nil
}

//-----------------------------------------------------------------------------
// SyncConfig

// SyncConfig defines how long the node waits for the execution client to
// catch up before giving up.
type SyncConfig struct {
	// Maximum time to wait for the execution client to sync before crashing.
	Timeout time.Duration `mapstructure:"timeout"`
	// Initial retry delay for execution client sync checks. Doubles on each
	// retry up to the timeout.
	InitialDelay time.Duration `mapstructure:"initial_delay"`
}

// DefaultSyncConfig returns a default configuration for the execution client
// sync wait.
func DefaultSyncConfig() *SyncConfig {
	return &SyncConfig{
		Timeout:      30 * time.Second,
		InitialDelay: 100 * time.Millisecond,
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *SyncConfig) ValidateBasic() error {
	if cfg.Timeout <= 0 {
		return ErrNonPositiveTimeout
	}
	if cfg.InitialDelay < 0 {
		return ErrNegativeDelay
	}
	return nil
}

//-----------------------------------------------------------------------------
// LogConfig

// LogConfig defines logging output options.
type LogConfig struct {
	// Minimum level to emit. One of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Output format: "plain" (colored text) or "json".
	Format string `mapstructure:"format"`
}

// DefaultLogConfig returns a default logging configuration.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: LogFormatPlain,
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *LogConfig) ValidateBasic() error {
	switch cfg.Format {
	case LogFormatPlain, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}
	return nil
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir.
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

var defaultMoniker = getDefaultMoniker()

// getDefaultMoniker returns a default moniker, which is the host name. If runtime
// fails to get the host name, "anonymous" will be returned.
func getDefaultMoniker() string {
	moniker, err := os.Hostname()
	if err != nil {
		moniker = "anonymous"
	}
	return moniker
}

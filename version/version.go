package version

const (
	// SemVer is used as the fallback version of emerald
	// when not using git describe. It uses semantic versioning format.
	SemVer = "0.1.0-dev"

	// BlockProtocol versions all block data structures and processing.
	// This includes validity of blocks and state updates.
	BlockProtocol uint64 = 1
)

// GitCommitHash uses git rev-parse HEAD to find commit hash which is helpful
// for the engineering team when working with the emerald binary. See Makefile.
var GitCommitHash = ""

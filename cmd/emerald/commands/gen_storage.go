package commands

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/1Money-Co/emerald/genesis"
)

var (
	flagKeysFile string
	flagOwner    string
	flagPower    uint64
	flagOutput   string
)

// GenStorageCmd generates the genesis storage allocation for the validator
// manager contract from a list of validator keys.
var GenStorageCmd = &cobra.Command{
	Use:     "gen-storage",
	Aliases: []string{"gen_storage"},
	Short:   "Generate validator manager genesis storage from a validator keys file",
	Long: `Generate the storage slots that seed the validator manager proxy and
implementation accounts at genesis.

The keys file holds one hex-encoded 64-byte validator key per line.`,
	RunE: genStorage,
}

func init() {
	GenStorageCmd.Flags().StringVar(&flagKeysFile, "keys", "", "path to the validator keys file (required)")
	GenStorageCmd.Flags().StringVar(&flagOwner, "owner", "", "contract owner address (required)")
	GenStorageCmd.Flags().Uint64Var(&flagPower, "power", 100, "voting power assigned to every genesis validator")
	GenStorageCmd.Flags().StringVar(&flagOutput, "output", "", "write JSON here instead of stdout")
	_ = GenStorageCmd.MarkFlagRequired("keys")
	_ = GenStorageCmd.MarkFlagRequired("owner")
}

// storageAlloc is the JSON shape of the generated allocation: per-account
// storage maps keyed by slot.
type storageAlloc struct {
	Address common.Address              `json:"address"`
	Storage map[common.Hash]common.Hash `json:"storage"`
}

func genStorage(*cobra.Command, []string) error {
	if !common.IsHexAddress(flagOwner) {
		return fmt.Errorf("invalid owner address %q", flagOwner)
	}
	owner := common.HexToAddress(flagOwner)

	validators, err := readValidatorKeys(flagKeysFile, flagPower)
	if err != nil {
		return err
	}

	proxyStorage, err := genesis.GenerateStorageData(validators, owner, genesis.ValidatorManagerImplAccount)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(struct {
		Proxy          storageAlloc `json:"proxy"`
		Implementation storageAlloc `json:"implementation"`
	}{
		Proxy: storageAlloc{
			Address: genesis.ValidatorManagerAccount,
			Storage: proxyStorage,
		},
		Implementation: storageAlloc{
			Address: genesis.ValidatorManagerImplAccount,
			Storage: genesis.GenerateImplStorage(),
		},
	}, "", "  ")
	if err != nil {
		return err
	}

	if flagOutput == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(flagOutput, append(out, '\n'), 0o644); err != nil {
		return err
	}
	logger.Info("Generated validator manager storage",
		"validators", len(validators), "output", flagOutput)
	return nil
}

// readValidatorKeys parses one hex-encoded 64-byte key per line; blank lines
// and lines starting with '#' are skipped.
func readValidatorKeys(path string, power uint64) ([]genesis.Validator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keys file: %w", err)
	}
	defer f.Close()

	var validators []genesis.Validator
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		raw, err := hex.DecodeString(strings.TrimPrefix(text, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		key, err := genesis.ValidatorKeyFromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		validators = append(validators, genesis.Validator{Key: key, Power: power})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return validators, nil
}

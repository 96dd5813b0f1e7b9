package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "github.com/1Money-Co/emerald/config"
	"github.com/1Money-Co/emerald/crypto/bls12381"
	"github.com/1Money-Co/emerald/privval"
)

// ShowValidatorCmd adds capabilities for showing the validator info.
var ShowValidatorCmd = &cobra.Command{
	Use:     "show-validator",
	Aliases: []string{"show_validator"},
	Short:   "Show this node's validator info",
	RunE:    showValidator,
}

func showValidator(*cobra.Command, []string) error {
	keyFilePath := config.PrivValidatorKeyFile()
	if _, err := os.Stat(keyFilePath); err != nil {
		return fmt.Errorf("private validator file %s does not exist", keyFilePath)
	}

	var key privval.FilePVKey
	switch config.SigningVariant {
	case cfg.SigningVariantMinPk:
		pv, err := privval.LoadFilePV[bls12381.MinPk](keyFilePath)
		if err != nil {
			return err
		}
		key = pv.Key
	case cfg.SigningVariantMinSig:
		pv, err := privval.LoadFilePV[bls12381.MinSig](keyFilePath)
		if err != nil {
			return err
		}
		key = pv.Key
	default:
		return cfg.ErrUnknownSigningVariant
	}

	bz, err := json.Marshal(struct {
		Address string `json:"address"`
		PubKey  string `json:"pub_key"`
		Variant string `json:"variant"`
	}{key.Address, key.PubKey, key.Variant})
	if err != nil {
		return fmt.Errorf("failed to marshal private validator pubkey: %w", err)
	}

	fmt.Println(string(bz))
	return nil
}

package commands

import (
	"os"

	"github.com/spf13/cobra"

	cfg "github.com/1Money-Co/emerald/config"
	"github.com/1Money-Co/emerald/crypto/bls12381"
	"github.com/1Money-Co/emerald/privval"
)

// InitFilesCmd initializes a fresh emerald instance.
var InitFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize emerald: generate config and validator key files",
	RunE:  initFiles,
}

func initFiles(*cobra.Command, []string) error {
	keyFilePath := config.PrivValidatorKeyFile()
	if _, err := os.Stat(keyFilePath); err == nil {
		logger.Info("Found private validator", "keyFile", keyFilePath)
		return nil
	}

	switch config.SigningVariant {
	case cfg.SigningVariantMinPk:
		return genKeyFile[bls12381.MinPk](keyFilePath)
	case cfg.SigningVariantMinSig:
		return genKeyFile[bls12381.MinSig](keyFilePath)
	default:
		return cfg.ErrUnknownSigningVariant
	}
}

func genKeyFile[V bls12381.Variant](keyFilePath string) error {
	pv, err := privval.GenFilePV[V](keyFilePath)
	if err != nil {
		return err
	}
	if err := pv.Save(); err != nil {
		return err
	}
	logger.Info("Generated private validator", "keyFile", keyFilePath,
		"address", pv.Key.Address, "variant", pv.Key.Variant)
	return nil
}

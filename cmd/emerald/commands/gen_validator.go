package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	cfg "github.com/1Money-Co/emerald/config"
	"github.com/1Money-Co/emerald/crypto/bls12381"
	"github.com/1Money-Co/emerald/privval"
)

// GenValidatorCmd allows the generation of a keypair for a
// validator.
var GenValidatorCmd = &cobra.Command{
	Use:     "gen-validator",
	Aliases: []string{"gen_validator"},
	Short:   "Generate new validator keypair",
	RunE:    genValidator,
}

func genValidator(*cobra.Command, []string) error {
	var key privval.FilePVKey
	switch config.SigningVariant {
	case cfg.SigningVariantMinPk:
		pv, err := privval.GenFilePV[bls12381.MinPk]("")
		if err != nil {
			return err
		}
		key = pv.Key
	case cfg.SigningVariantMinSig:
		pv, err := privval.GenFilePV[bls12381.MinSig]("")
		if err != nil {
			return err
		}
		key = pv.Key
	default:
		return cfg.ErrUnknownSigningVariant
	}

	jsbz, err := json.MarshalIndent(key, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(jsbz))
	return nil
}

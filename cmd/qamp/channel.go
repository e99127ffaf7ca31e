package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qamp/keyex"
	"github.com/katalvlaran/qamp/qkd"
)

var channelBits int

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Establish a demo secure channel: BB84-style sift plus ECDH backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := qkd.Exchange(channelBits)
		if err != nil {
			return err
		}
		log.Info().
			Int("raw_bits", res.Raw).
			Int("sifted_bits", len(res.Key)).
			Float64("error_rate", res.ErrorRate).
			Msg("key sift finished")

		fmt.Printf("sifted key length: %d of %d raw bits\n", len(res.Key), res.Raw)
		fmt.Printf("error rate:        %.4f (abort threshold %.2f)\n", res.ErrorRate, qkd.ErrorRateThreshold)

		// Classical backup channel alongside the sifted key.
		alicePriv, alicePub, err := keyex.GenerateKeyPair()
		if err != nil {
			return err
		}
		bobPriv, bobPub, err := keyex.GenerateKeyPair()
		if err != nil {
			return err
		}

		info := []byte("qamp-demo-channel")
		aliceKey, err := keyex.DeriveSharedKey(alicePriv, bobPub, info)
		if err != nil {
			return err
		}
		bobKey, err := keyex.DeriveSharedKey(bobPriv, alicePub, info)
		if err != nil {
			return err
		}

		fmt.Printf("backup key:        %d bytes, fingerprints %s / %s\n",
			len(aliceKey), hex.EncodeToString(aliceKey[:4]), hex.EncodeToString(bobKey[:4]))

		return nil
	},
}

func init() {
	channelCmd.Flags().IntVar(&channelBits, "bits", 1000, "raw bits to send before sifting")
	rootCmd.AddCommand(channelCmd)
}

// Command poseidon hashes field elements or 32-byte values with the Poseidon
// permutation over the bn254 scalar field.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	poseidon "github.com/vocdoni/poseidonbn254"
)

var (
	verbose bool
	multi   bool
	endian  string

	log zerolog.Logger
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	hashCmd.Flags().BoolVar(&multi, "multi", false, "chunked multi-hash, accepts up to 256 elements")
	hashBytesCmd.Flags().StringVar(&endian, "endian", "le", "byte order of inputs and digest (le or be)")
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(hashBytesCmd)
}

var rootCmd = &cobra.Command{
	Use:   "poseidon",
	Short: "Poseidon hashing over the bn254 scalar field",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash [element...]",
	Short: "Hash field elements given as decimal or 0x-prefixed hex",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := make([]fr.Element, len(args))
		for i, arg := range args {
			v, ok := new(big.Int).SetString(arg, 0)
			if !ok {
				return fmt.Errorf("invalid field element %q", arg)
			}
			inputs[i].SetBigInt(v)
			log.Debug().Int("index", i).Str("reduced", inputs[i].String()).Msg("parsed input")
		}

		var (
			digest fr.Element
			err    error
		)
		if multi {
			digest, err = poseidon.MultiHash(inputs...)
		} else {
			digest, err = poseidon.Hash(inputs...)
		}
		if err != nil {
			return err
		}

		be := digest.Bytes()
		fmt.Printf("%s\n0x%s\n", digest.String(), hex.EncodeToString(be[:]))
		return nil
	},
}

var hashBytesCmd = &cobra.Command{
	Use:   "hash-bytes [hex...]",
	Short: "Hash 32-byte hex values reduced into the field",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := make([][fr.Bytes]byte, len(args))
		for i, arg := range args {
			raw, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex input %q: %w", arg, err)
			}
			if len(raw) != fr.Bytes {
				return fmt.Errorf("input %q is %d bytes, want %d", arg, len(raw), fr.Bytes)
			}
			copy(inputs[i][:], raw)
		}
		log.Debug().Int("inputs", len(inputs)).Str("endian", endian).Msg("hashing bytes")

		var (
			digest [fr.Bytes]byte
			err    error
		)
		switch endian {
		case "le":
			digest, err = poseidon.HashBytes(inputs...)
		case "be":
			digest, err = poseidon.HashBytesBE(inputs...)
		default:
			return fmt.Errorf("unknown byte order %q, want le or be", endian)
		}
		if err != nil {
			return err
		}

		fmt.Printf("0x%s\n", hex.EncodeToString(digest[:]))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

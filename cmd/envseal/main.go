// Command envseal encrypts, decrypts, rotates, and verifies envelope
// encrypted records from the command line.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ai8future/envseal"
)

func main() {
	cfg := loadConfig()

	keyFlag := &cli.StringFlag{
		Name:    "master-key",
		Aliases: []string{"k"},
		Value:   cfg.MasterKey,
		Usage:   "Master key (defaults to ENVSEAL_MASTER_KEY)",
	}

	cmd := &cli.Command{
		Name:    "envseal",
		Usage:   "Per-record envelope encryption for stored credentials",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "keygen",
				Usage: "Generate a new 256-bit master key (hex)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runKeygen()
				},
			},
			{
				Name:      "encrypt",
				Usage:     "Encrypt plaintext into an envelope (reads stdin if no argument)",
				ArgsUsage: "[plaintext]",
				Flags: []cli.Flag{
					keyFlag,
					&cli.BoolFlag{
						Name:    "compress",
						Aliases: []string{"c"},
						Value:   cfg.Compression,
						Usage:   "Emit a zstd-compressed v2 envelope",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runEncrypt(cmd.Args().First(), cmd.String("master-key"), cmd.Bool("compress"))
				},
			},
			{
				Name:      "decrypt",
				Usage:     "Decrypt an envelope back to plaintext",
				ArgsUsage: "<envelope>",
				Flags:     []cli.Flag{keyFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDecrypt(cmd.Args().First(), cmd.String("master-key"))
				},
			},
			{
				Name:      "rotate",
				Usage:     "Re-encrypt one or more envelopes under a new master key",
				ArgsUsage: "<envelope> [envelope...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "old-key",
						Required: true,
						Usage:    "Master key the envelopes are currently encrypted with",
					},
					&cli.StringFlag{
						Name:     "new-key",
						Required: true,
						Usage:    "Master key to re-encrypt under",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Value:   int64(cfg.RotateWorkers),
						Usage:   "Maximum concurrent rotations",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runRotate(ctx, cmd.Args().Slice(), cmd.String("old-key"), cmd.String("new-key"), int(cmd.Int("workers")))
				},
			},
			{
				Name:      "verify",
				Usage:     "Check that an envelope decrypts cleanly (exit code only)",
				ArgsUsage: "<envelope>",
				Flags:     []cli.Flag{keyFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runVerify(cmd.Args().First(), cmd.String("master-key"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func runKeygen() error {
	key, err := envseal.GenerateMasterKey()
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}

func runEncrypt(plaintext, masterKey string, compress bool) error {
	if masterKey == "" {
		return errors.New("master key required (--master-key or ENVSEAL_MASTER_KEY)")
	}
	if plaintext == "" {
		// No argument: read a single line from stdin so the secret
		// stays out of the shell history and process list.
		line, err := readLine(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read plaintext from stdin: %w", err)
		}
		plaintext = line
	}

	opts := []envseal.Option{}
	if compress {
		opts = append(opts, envseal.WithCompression())
	}
	sealer, err := envseal.New(opts...)
	if err != nil {
		return err
	}

	envelope, err := sealer.Encrypt(plaintext, masterKey)
	if err != nil {
		return err
	}
	fmt.Println(envelope)
	return nil
}

func runDecrypt(envelope, masterKey string) error {
	if masterKey == "" {
		return errors.New("master key required (--master-key or ENVSEAL_MASTER_KEY)")
	}
	if envelope == "" {
		return errors.New("envelope argument required")
	}

	plaintext, err := envseal.DecryptRecord(envelope, masterKey)
	if err != nil {
		// One message for every decryption failure; the cause is not
		// reported to avoid oracle behavior.
		return errors.New("cannot decrypt this record")
	}
	fmt.Println(plaintext)
	return nil
}

func runRotate(ctx context.Context, envelopes []string, oldKey, newKey string, workers int) error {
	if len(envelopes) == 0 {
		return errors.New("at least one envelope argument required")
	}

	rotated, err := envseal.RotateBatch(ctx, envelopes, oldKey, newKey, workers)
	if err != nil {
		return errors.New("cannot decrypt this record")
	}
	for _, envelope := range rotated {
		fmt.Println(envelope)
	}
	return nil
}

func runVerify(envelope, masterKey string) error {
	if masterKey == "" {
		return errors.New("master key required (--master-key or ENVSEAL_MASTER_KEY)")
	}
	if envelope == "" {
		return errors.New("envelope argument required")
	}

	if !envseal.VerifyIntegrity(envelope, masterKey) {
		return errors.New("cannot decrypt this record")
	}
	fmt.Println("ok")
	return nil
}

func readLine(f *os.File) (string, error) {
	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

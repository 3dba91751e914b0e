// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/pseudonym/cmd/app/commands"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "pseudonym",
		Usage:   "Deterministic pseudonymization engine",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "mask",
				Usage: "Mask a single value from the command line",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tenant",
						Aliases:  []string{"t"},
						Required: true,
						Usage:    "Tenant ID scoping the masking",
					},
					&cli.StringFlag{
						Name:    "locale",
						Aliases: []string{"l"},
						Value:   "",
						Usage:   "Locale for fake data tables (empty uses the configured default)",
					},
					&cli.StringFlag{
						Name:     "type",
						Required: true,
						Usage:    "Field type (name, email, phone, address, bank-id, free-text, surrogate-id)",
					},
					&cli.StringFlag{
						Name:    "value",
						Aliases: []string{"v"},
						Value:   "",
						Usage:   "Original value to mask (unused for surrogate-id)",
					},
					&cli.StringFlag{
						Name:     "subject",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Subject key linking masked values to one person",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					params := commands.MaskParams{
						TenantID:   cmd.String("tenant"),
						Locale:     cmd.String("locale"),
						FieldType:  cmd.String("type"),
						Value:      cmd.String("value"),
						SubjectKey: cmd.String("subject"),
					}
					return commands.RunMask(ctx, params, commands.DefaultIO())
				},
			},
			{
				Name:  "detect",
				Usage: "Detect PII-shaped substrings in text without masking",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Required: true,
						Usage:    "Text to scan",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDetect(cmd.String("text"), commands.DefaultIO())
				},
			},
			{
				Name:  "generate-master-salt",
				Usage: "Generate a new master salt for seed derivation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "kms-key-uri",
						Aliases: []string{"k"},
						Value:   "",
						Usage:   "KMS key URI to wrap the salt (e.g. awskms://..., base64key://...)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateMasterSalt(ctx, cmd.String("kms-key-uri"), commands.DefaultIO())
				},
			},
			{
				Name:  "generate-api-key",
				Usage: "Generate a new API key and its hash for API_KEY_HASHES",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateAPIKey(commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

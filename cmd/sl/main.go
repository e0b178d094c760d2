package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func setup(c *cli.Command) (*slog.Logger, Config, error) {
	config := defaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		config, err = loadConfig(path)
		if err != nil {
			return nil, Config{}, err
		}
	}

	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}

	if c.IsSet("jobs") {
		config.Jobs = int(c.Int("jobs"))
	}

	if c.IsSet("format") {
		config.Format = c.String("format")
	}

	err := config.Validate()
	if err != nil {
		return nil, Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return logger, config, nil
}

// singleFile runs fn on the one input named by the command's argument.
func singleFile(c *cli.Command, fn func(logger *slog.Logger, config Config, r io.Reader) error) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("must provide exactly one sl file as argument, or - for stdin")
	}

	logger, config, err := setup(c)
	if err != nil {
		return err
	}

	f, err := openInput(c.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(logger, config, f)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "sl",
		Usage: "Lexer and parser for the SL language",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "load settings from a TOML or YAML file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "warn",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "files parsed in parallel, 0 for one per CPU",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "Print the token stream of an SL file",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					return singleFile(c, func(_ *slog.Logger, _ Config, r io.Reader) error {
						return printTokens(os.Stdout, r)
					})
				},
			},
			{
				Name:      "parse",
				Usage:     "Parse an SL file and print its syntax tree",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "tree or yaml",
						Value:   "tree",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return singleFile(c, func(logger *slog.Logger, config Config, r io.Reader) error {
						return printTree(os.Stdout, logger, r, config.Format)
					})
				},
			},
			{
				Name:      "fmt",
				Usage:     "Print an SL file in canonical form",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					return singleFile(c, func(logger *slog.Logger, _ Config, r io.Reader) error {
						return formatSource(os.Stdout, logger, r)
					})
				},
			},
			{
				Name:      "calls",
				Usage:     "List the functions of an SL file, callees first",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					return singleFile(c, func(logger *slog.Logger, _ Config, r io.Reader) error {
						return printCalls(os.Stdout, logger, r)
					})
				},
			},
			{
				Name:      "check",
				Usage:     "Parse SL files or directories and report every error",
				ArgsUsage: "PATH...",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() == 0 {
						return fmt.Errorf("must provide at least one sl file or directory as argument")
					}

					logger, config, err := setup(c)
					if err != nil {
						return err
					}

					n, err := check(ctx, logger, config, c.Args().Slice())
					if err != nil {
						fmt.Fprintf(os.Stderr, "%v\n", err)
						os.Exit(1)
					}

					fmt.Printf("ok: %d files\n", n)
					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-asset-keeper/internal/adapter"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/models"
)

var errUsage = errors.New("invalid usage")

type commandLine struct {
	adapter   adapter.AssetAdapter
	buildInfo models.AppBuildInfo

	stdin  io.Reader
	stdout io.Writer

	logger *logger.Logger
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; {
	case cmd == "list" && len(rest) == 0:
		return c.list(ctx)
	case cmd == "get" && len(rest) == 1:
		return c.get(ctx, rest[0])
	case cmd == "create" && len(rest) == 1:
		return c.create(ctx, rest[0])
	case cmd == "version" && len(rest) == 0:
		return c.version(ctx)
	default:
		return errUsage
	}
}

func (c *commandLine) list(ctx context.Context) error {
	assets, err := c.adapter.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}
	return c.printJSON(models.AssetsResponse{Assets: assets})
}

func (c *commandLine) get(ctx context.Context, name string) error {
	asset, err := c.adapter.GetAsset(ctx, name)
	if err != nil {
		return fmt.Errorf("get asset %q: %w", name, err)
	}
	return c.printJSON(asset)
}

func (c *commandLine) create(ctx context.Context, path string) error {
	request, err := c.readRequest(path)
	if err != nil {
		return err
	}

	report, err := c.adapter.CreateAssets(ctx, request.Assets...)
	if errors.Is(err, adapter.ErrBatchRejected) {
		if printErr := c.printJSON(report); printErr != nil {
			return printErr
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("create assets: %w", err)
	}

	c.logger.Info().Int("count", len(request.Assets)).Msg("assets created")
	_, err = fmt.Fprintf(c.stdout, "created %d assets\n", len(request.Assets))
	return err
}

func (c *commandLine) version(ctx context.Context) error {
	v, err := c.adapter.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}
	_, err = fmt.Fprintf(c.stdout, "client: %s\nserver: %s\n", c.buildInfo.BuildVersion(), v)
	return err
}

// readRequest decodes {"assets": [...]} from path, or from stdin for "-".
func (c *commandLine) readRequest(path string) (models.AssetsRequest, error) {
	var r io.Reader = c.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return models.AssetsRequest{}, fmt.Errorf("open assets file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var request models.AssetsRequest
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return models.AssetsRequest{}, fmt.Errorf("decode assets file: %w", err)
	}
	return request, nil
}

func (c *commandLine) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/meshforge/slicecore/geomkernel"
	"github.com/meshforge/slicecore/mesh"
	"github.com/meshforge/slicecore/model"
	"github.com/meshforge/slicecore/pipeline"
	"github.com/meshforge/slicecore/sliceconfig"
	"github.com/meshforge/slicecore/writer"
)

func run(configPath, inputPath, outputPath string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Info("loaded config", "path", configPath)

	triangles, err := loadTriangles(inputPath)
	if err != nil {
		return err
	}
	logger.Info("loaded triangles", "path", inputPath, "count", len(triangles))

	m, err := mesh.Build(triangles)
	if err != nil {
		return fmt.Errorf("build mesh: %w", err)
	}
	bounds := mesh.BoundsOfMesh(m)
	logger.Info("built half-edge mesh", "vertices", len(m.Vertices), "faces", len(m.Faces))

	kernel := geomkernel.NewKernel()
	layers, err := pipeline.Run(context.Background(), kernel, m, bounds, cfg)
	if err != nil {
		return fmt.Errorf("slice: %w", err)
	}
	logger.Info("sliced", "layers", len(layers))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := writer.WriteHTML(out, outputPath, layers, bounds, cfg.Resolution); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	logger.Info("wrote output", "path", outputPath)
	return nil
}

func loadConfig(path string) (*sliceconfig.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := sliceconfig.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func loadTriangles(path string) ([]mesh.FreeTriangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	triangles, err := model.LoadTriangles(f)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return triangles, nil
}

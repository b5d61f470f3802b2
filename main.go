package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"

	"facemetry/internal/analysis"
	"facemetry/internal/capture"
	"facemetry/internal/config"
	"facemetry/internal/meshclient"
	"facemetry/internal/server"
	"facemetry/pkg/log"
)

func main() {
	log.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Debug(nil, "no .env file, using process environment")
	}

	analyzePath := flag.String("analyze", "", "analyze one image file and print the report")
	landmarksPath := flag.String("landmarks", "", "landmark JSON file for -analyze; the mesh service is queried when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "configuration rejected")
	}

	analyzer, err := analysis.New(analysis.Config{
		Baselines:  cfg.Baselines,
		Weights:    cfg.Weights,
		Thresholds: cfg.Thresholds,
		Messages:   cfg.Messages,
	})
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "engine construction failed")
	}

	loader := capture.NewLoader(capture.LoaderConfig{MaxDimension: cfg.MaxDimension})

	if *analyzePath != "" {
		if err := analyzeOnce(analyzer, loader, cfg, *analyzePath, *landmarksPath); err != nil {
			log.Fatal(log.Fields{"error": err.Error(), "path": *analyzePath}, "analysis failed")
		}
		return
	}

	source, err := meshclient.NewClient(cfg.MeshAddr, time.Duration(cfg.MeshTimeoutSeconds)*time.Second)
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "mesh client construction failed")
	}

	handler := server.NewHandler(analyzer, loader, source)

	if err := server.Run(cfg, handler); err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "server stopped")
	}
}

// analyzeOnce runs the full pipeline over one image file and prints the
// report to stdout.
func analyzeOnce(analyzer *analysis.Analyzer, loader *capture.Loader, cfg *config.Config, imagePath, landmarksPath string) error {
	frame, err := loader.Load(imagePath)
	if err != nil {
		return err
	}

	var source meshclient.Source
	if landmarksPath != "" {
		source = meshclient.NewFileSource(landmarksPath)
	} else {
		source, err = meshclient.NewClient(cfg.MeshAddr, time.Duration(cfg.MeshTimeoutSeconds)*time.Second)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()

	set, err := source.Detect(ctx, frame)
	if err != nil {
		return err
	}

	report, err := analyzer.Analyze(ctx, frame, set)
	if err != nil {
		return err
	}

	out, err := jsoniter.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

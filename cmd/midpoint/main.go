// Command midpoint resolves 2 or 3 place names and prints their meeting point.
//
//	midpoint [flags] "Roma" "Milano" ["Napoli"]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/config"
	"github.com/midpoint-service/internal/infrastructure/geocoding"
	"github.com/midpoint-service/internal/pkg/logger"
	"github.com/midpoint-service/internal/pkg/utils"
	"github.com/midpoint-service/internal/usecase"
	"github.com/midpoint-service/internal/usecase/dto"
)

const (
	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

func main() {
	envFile := flag.StringP("config", "c", ".env", "env file with GEOCODING_* settings")
	logLevel := flag.String("log-level", "", "log level (overrides LOG_LEVEL)")
	format := flag.StringP("format", "f", formatJSON, "output format: json or geojson")
	pretty := flag.BoolP("pretty", "p", false, "indent JSON output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] PLACE PLACE [PLACE]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *format != formatJSON && *format != formatGeoJSON {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}

	cfg, err := config.LoadFrom(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	geocoder := geocoding.NewGeocodingClient(&cfg.Geocoding, log)
	midpointUC := usecase.NewMidpointUseCase(geocoder, nil, log, cfg.Cache.GeocodeCacheTTL)

	if err := run(ctx, midpointUC, flag.Args(), *format, *pretty, os.Stdout); err != nil {
		log.Debug("Midpoint computation failed", zap.Error(err))
		writeError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, uc *usecase.MidpointUseCase, names []string, format string, pretty bool, out io.Writer) error {
	record, err := uc.ComputeCenter(ctx, names)
	if err != nil {
		return err
	}

	var v interface{} = dto.NewMidpointResponse(record)
	if format == formatGeoJSON {
		v = dto.NewFeatureCollection(record)
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeError(w io.Writer, err error) {
	_ = json.NewEncoder(w).Encode(utils.ErrorResponse{Error: utils.ToAppError(err)})
}

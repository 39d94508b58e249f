// cmd/planner-cli/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trip-planner/internal/app"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/pipeline"
)

func main() {
	destination := flag.String("destination", "", "destination city, e.g. Paris")
	days := flag.Int("days", 3, "trip length in days (1-30)")
	critique := flag.Bool("critique", true, "review the draft itinerary")
	refine := flag.Bool("refine", true, "rewrite the draft using the review")
	flag.Parse()

	if *destination == "" {
		fmt.Fprintln(os.Stderr, "usage: planner-cli -destination <city> [-days N] [-critique] [-refine]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	cfg.Pipeline.EnableCritique = *critique
	cfg.Pipeline.EnableRefinement = *refine && *critique

	log := logger.NewStructured("error", cfg.Logging.Format)

	orch, cleanup, err := app.Build(cfg, log, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build pipeline:", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result := orch.PlanTrip(ctx, *destination, *days, func(e pipeline.ProgressEvent) {
		fmt.Printf("[%3d%%] %s\n", e.Percent, e.Message)
	})

	if !result.Success {
		fmt.Fprintf(os.Stderr, "\nplanning failed (%s): %s\n", result.ErrorCode, result.Error)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(result.Weather.Report)
	fmt.Println()
	fmt.Println(result.Activity.Research)
	fmt.Println()
	fmt.Println("Itinerary:")
	fmt.Println(result.Itinerary.Final)
	if result.Itinerary.Critique != "" {
		fmt.Println()
		fmt.Println("Reviewer notes:")
		fmt.Println(result.Itinerary.Critique)
	}
}

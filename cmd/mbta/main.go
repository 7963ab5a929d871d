package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mcsjb/mbta/config"
	"github.com/mcsjb/mbta/logging"
	"github.com/mcsjb/mbta/mbta"
	"github.com/mcsjb/mbta/subway"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mbta <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  trip  -start <name> -stop <name>   answer all three questions, including a trip plan")
	fmt.Fprintln(os.Stderr, "  stops                              list the stop names usable with -start and -stop")
}

func main() {
	logging.InitLogger()
	defer logging.SyncLogger()

	if err := run(os.Args[1:]); err != nil {
		logging.GetLogger().Errorw("run failed", "error", err)
		logging.SyncLogger()
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	configPath := ""
	var start, end string

	tripFlags := flag.NewFlagSet("trip", flag.ExitOnError)
	tripFlags.StringVar(&start, "start", "", `starting stop name (e.g. "Park Street")`)
	tripFlags.StringVar(&end, "stop", "", `destination stop name (e.g. "South Station")`)
	tripFlags.StringVar(&configPath, "config", "", "path to config.yml")

	stopsFlags := flag.NewFlagSet("stops", flag.ExitOnError)
	stopsFlags.StringVar(&configPath, "config", "", "path to config.yml")

	command := args[0]
	switch command {
	case "trip":
		if err := tripFlags.Parse(args[1:]); err != nil {
			return err
		}
		if start == "" || end == "" {
			tripFlags.Usage()
			return errors.New("trip requires -start and -stop")
		}
	case "stops":
		if err := stopsFlags.Parse(args[1:]); err != nil {
			return err
		}
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}

	service, err := loadService(configPath)
	if err != nil {
		return err
	}

	switch command {
	case "trip":
		renderRoutes(service)
		renderStats(service)
		return renderTrip(service, start, end)
	case "stops":
		renderStops(service)
	}
	return nil
}

func loadService(configPath string) (*subway.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	client := mbta.NewClient(cfg)
	repository := subway.NewRepository(client, cfg.API.RouteTypes)
	network, err := repository.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return subway.NewService(network), nil
}

func banner(title string) {
	line := "============================================================"
	fmt.Println(line)
	fmt.Println(title)
	fmt.Println(line)
}

func renderRoutes(service *subway.Service) {
	banner("QUESTION 1: Subway Routes")
	for _, name := range service.RouteNames() {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Println()
}

func renderStats(service *subway.Service) {
	banner("QUESTION 2: Route Statistics")
	stats := service.Stats()

	renderExtreme(service, "Route(s) with most stops", stats.MostStops, stats.MaxStops)
	fmt.Println()
	renderExtreme(service, "Route(s) with fewest stops", stats.FewestStops, stats.MinStops)
	fmt.Println()

	if len(stats.Transfers) == 0 {
		fmt.Println("No stops connect multiple routes.")
		fmt.Println()
		return
	}

	fmt.Printf("Transfer Stations (%d total):\n", len(stats.Transfers))
	fmt.Println("------------------------------------------------------------")
	widest := 0
	for _, transfer := range stats.Transfers {
		if len(transfer.Stop) > widest {
			widest = len(transfer.Stop)
		}
	}
	for _, transfer := range stats.Transfers {
		padding := strings.Repeat(".", widest-len(transfer.Stop)+2)
		fmt.Printf("  %s %s [%s]\n", transfer.Stop, padding, strings.Join(transfer.Routes, ", "))
	}
	fmt.Println()
}

// renderExtreme prints each route at an extreme with its stops grouped
// five per line.
func renderExtreme(service *subway.Service, label string, routeIDs []string, count int) {
	for _, routeID := range routeIDs {
		fmt.Printf("%s: %s (%d stops)\n", label, routeID, count)
		fmt.Println("  Stops:")
		stops := service.StopsOnRoute(routeID)
		for i := 0; i < len(stops); i += 5 {
			end := i + 5
			if end > len(stops) {
				end = len(stops)
			}
			fmt.Printf("    %s\n", strings.Join(stops[i:end], ", "))
		}
	}
}

func renderTrip(service *subway.Service, start, end string) error {
	hops, err := service.PlanTrip(start, end)

	var notFound *subway.StopNotFoundError
	switch {
	case errors.As(err, &notFound):
		return fmt.Errorf("%q is not a subway stop; run 'mbta stops' for valid names", notFound.Stop)
	case errors.Is(err, subway.ErrNoPath):
		return fmt.Errorf("no subway path from %q to %q", start, end)
	case err != nil:
		return err
	}

	banner(fmt.Sprintf("QUESTION 3: Route from %s to %s", start, end))
	if len(hops) == 0 {
		fmt.Println("  Start and destination are the same stop.")
		return nil
	}
	for _, hop := range hops {
		fmt.Printf("  %s --[%s]--> %s\n", hop.From, hop.Route, hop.To)
	}
	return nil
}

func renderStops(service *subway.Service) {
	fmt.Println("Stops available for -start and -stop:")
	for _, name := range service.StopNames() {
		fmt.Printf("  - %s\n", name)
	}
}


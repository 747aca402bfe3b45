// Command catalog prints one page of hotels or flights from the catalog API.
//
//	catalog [-page N] hotels|flights
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/meetupaws/travel_catalog/internal"
	"github.com/meetupaws/travel_catalog/internal/apiclient"
	"github.com/meetupaws/travel_catalog/internal/render"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := internal.NewLogger()
	logger.SetOutput(os.Stderr)

	os.Exit(run(ctx, os.Args[1:], apiclient.ConfigFromEnv(), os.Stdout, logger))
}

func run(ctx context.Context, args []string, cfg apiclient.Config, stdout io.Writer, logger *logrus.Logger) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(logger.Out)
	page := fs.Int("page", 1, "page number to fetch")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: catalog [-page N] hotels|flights")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *page < 1 {
		fs.Usage()
		return 2
	}

	client := apiclient.New(cfg, logger)
	defer client.Close()

	var err error
	switch fs.Arg(0) {
	case "hotels":
		r, listErr := client.ListHotels(ctx, *page)
		if err = listErr; err == nil {
			err = render.Hotels(stdout, r)
		}
	case "flights":
		r, listErr := client.ListFlights(ctx, *page)
		if err = listErr; err == nil {
			err = render.Flights(stdout, r)
		}
	default:
		fs.Usage()
		return 2
	}

	if err != nil {
		logger.WithError(err).WithField("resource", fs.Arg(0)).Error("listing failed")
		return 1
	}
	return 0
}

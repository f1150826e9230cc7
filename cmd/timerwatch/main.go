package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"countdown/config"
	"countdown/internal/domain/countdown"
	logs "countdown/internal/infra/log"
	"countdown/internal/widget"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// timerwatch renders a shop's running countdown timers in the terminal,
// polling the public storefront endpoint.
//
// Flags override the widget section of config.yaml:
//
//	timerwatch -shop demo.myshopify.com -product 123 -api http://localhost:8080
func main() {
	shop := flag.String("shop", "", "Shop domain, e.g. demo.myshopify.com")
	product := flag.String("product", "", "Product ID to show timers for")
	apiURL := flag.String("api", "", "Base URL of the countdown API")
	logFile := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(*shop, *product, *apiURL, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(shop, product, apiURL, logFile string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	widgetCfg := *cfg.Widget
	if shop != "" {
		widgetCfg.Shop = shop
	}
	if product != "" {
		widgetCfg.ProductID = product
	}
	if apiURL != "" {
		widgetCfg.APIURL = apiURL
	}
	if strings.TrimSpace(widgetCfg.Shop) == "" {
		return errors.New("shop is required")
	}

	// The terminal belongs to the UI; logs go to a file or nowhere
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer f.Close()
		out = f
	}

	logger, err := logs.NewWithWriter(cfg, out)
	if err != nil {
		return err
	}

	client, err := widget.NewHTTPClient(widgetCfg.APIURL, logger)
	if err != nil {
		return err
	}

	poller := widget.NewPoller(client, widget.PollerOptions{
		Shop:      strings.ToLower(strings.TrimSpace(widgetCfg.Shop)),
		ProductID: widgetCfg.ProductID,
		Interval:  widgetCfg.RefreshInterval,
		Clock:     countdown.SystemClock,
	}, logger)
	host := widget.NewHost(countdown.SystemClock, widgetCfg.TickInterval)

	logger.Info("Starting timerwatch",
		slog.String("shop", widgetCfg.Shop),
		slog.String("product_id", widgetCfg.ProductID),
		slog.String("api_url", widgetCfg.APIURL),
	)

	_, err = tea.NewProgram(widget.NewModel(poller, host), tea.WithAltScreen()).Run()
	host.Stop()
	poller.Stop()

	return errors.Wrap(err, "run timerwatch")
}

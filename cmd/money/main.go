package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/balance"
	"moneyhome/internal/config"
	"moneyhome/internal/contacts"
	"moneyhome/internal/flow"
	"moneyhome/internal/history"
	"moneyhome/internal/kv"
	"moneyhome/internal/logx"
	"moneyhome/internal/trace"
	"moneyhome/internal/ui"
)

func parseFlags() string {
	var path string
	flag.StringVar(&path, "config", "", "path to config.yaml (default $MONEY_HOME/config.yaml or ~/.money/config.yaml)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: money [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Money is a terminal wallet: add, withdraw and send cash.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return path
}

func run(path string) error {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	logFile, err := logx.Setup(logx.Options{
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logFile.Close()
	log.Printf("[INFO] starting: config=%s storage=%s", path, cfg.Storage.Driver)

	provider, err := kv.Open(cfg.KV())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer provider.Close()

	store, err := balance.Open(provider)
	if err != nil {
		return fmt.Errorf("load balances: %w", err)
	}

	var rec history.Recorder = history.NoopRecorder{}
	if cfg.HistoryEnabled() {
		r, err := history.NewSQLiteRecorder(cfg.History.SQLitePath)
		if err != nil {
			// History is optional; the wallet still works without it.
			log.Printf("[WARN] history disabled: %v", err)
		} else {
			rec = r
		}
	}
	defer rec.Close()

	exp, err := trace.NewOTLPExporter(context.Background())
	if err != nil {
		log.Printf("[WARN] tracing disabled: %v", err)
		exp = nil
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := exp.Shutdown(ctx); err != nil {
			log.Printf("[WARN] trace shutdown: %v", err)
		}
	}()

	ctl := flow.New(store, contacts.Default(), cfg.Flow(),
		flow.WithObserver(flow.NewMultiObserver(
			history.NewObserver(rec),
			trace.NewObserver(exp),
		)),
	)

	app := ui.NewAppModel(ctl, rec)
	if rep := store.LoadReport(); len(rep.Recovered) > 0 {
		app.Notice = "Reset unreadable balances: " + strings.Join(rep.Recovered, ", ")
	}

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Printf("[INFO] exiting")
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

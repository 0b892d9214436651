package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jengzang/survey-dashboard-go/internal/loader"
	"github.com/jengzang/survey-dashboard-go/internal/service"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.InPath, "in", cfg.InPath, "Survey spreadsheet (.xlsx, .xlsm or .csv)")
	fs.StringVar(&cfg.IdentifierColumn, "id", cfg.IdentifierColumn, "Respondent identifier column, excluded from analysis")
	fs.StringVar(&cfg.Sheet, "sheet", "", "Worksheet name (default: first sheet)")
	fs.StringVar(&cfg.View, "view", cfg.View, "View to print: all, charts, or one of "+strings.Join(service.ViewNames, ", "))
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Indent JSON output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.View = strings.ToLower(strings.TrimSpace(cfg.View))
	return cfg, nil
}

func run(cfg Config, w io.Writer) error {
	cache := loader.NewCache(cfg.InPath, loader.Options{Sheet: cfg.Sheet})
	svc := service.NewDashboardService(cache, cfg.IdentifierColumn)

	var (
		out interface{}
		err error
	)
	switch cfg.View {
	case viewAll:
		out, err = svc.GetDashboard()
	case viewCharts:
		out, err = svc.GetCharts()
	default:
		out, err = svc.GetView(cfg.View)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

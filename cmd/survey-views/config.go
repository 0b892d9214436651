package main

import (
	"errors"
	"fmt"

	"github.com/jengzang/survey-dashboard-go/internal/service"
)

const (
	viewAll    = "all"
	viewCharts = "charts"
)

type Config struct {
	InPath           string
	IdentifierColumn string
	Sheet            string
	View             string
	Pretty           bool
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	if c.IdentifierColumn == "" {
		return errors.New("missing -id")
	}
	if c.View == viewAll || c.View == viewCharts {
		return nil
	}
	for _, name := range service.ViewNames {
		if c.View == name {
			return nil
		}
	}
	return fmt.Errorf("unknown -view %q", c.View)
}

func defaultConfig() Config {
	return Config{
		InPath:           "data_kuesioner.xlsx",
		IdentifierColumn: "Partisipan",
		View:             viewAll,
		Pretty:           true,
	}
}

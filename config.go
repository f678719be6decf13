package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

type Config struct {
	Source      SourceOptions `yaml:"source"`
	StoreGraphs bool          `yaml:"store-graphs"`
	Server      ServerOptions `yaml:"server"`
}

// Graph sources in order of precedence: a stored graph directory is
// preferred over csv, csv over osm. The grid source is independent.
type SourceOptions struct {
	Grid  string `yaml:"grid"`
	Graph string `yaml:"graph"`
	CSV   string `yaml:"csv"`
	OSM   string `yaml:"osm"`
}

type ServerOptions struct {
	Address string `yaml:"address"`
}

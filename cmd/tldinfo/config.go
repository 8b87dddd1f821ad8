// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tldinfo/src/tldinfo"
)

// config is the optional YAML configuration file for the CLI. Every
// field has a sensible default; an absent file is fine.
type config struct {
	SnapshotPath     string `yaml:"snapshotPath"`
	UserAgent        string `yaml:"userAgent"`
	ListURL          string `yaml:"listURL"`
	WikiAPI          string `yaml:"wikiAPI"`
	PageName         string `yaml:"pageName"`
	Resolver         string `yaml:"resolver"`
	MaxMessageLength int    `yaml:"maxMessageLength"`
	StaleAfterDays   int    `yaml:"staleAfterDays"`
	RefreshMinutes   int    `yaml:"refreshMinutes"`
}

// loadConfig reads the YAML config at path. A missing file returns
// zero-value config (all defaults) unless the path was set
// explicitly by the user.
func loadConfig(path string, explicit bool) (config, error) {
	var cfg config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// options translates the config into service options, skipping unset
// fields so the library defaults apply.
func (c config) options() []tldinfo.Option {
	opts := []tldinfo.Option{
		tldinfo.WithSnapshotPath(c.SnapshotPath),
		tldinfo.WithUserAgent(c.UserAgent),
		tldinfo.WithListURL(c.ListURL),
		tldinfo.WithWikiAPI(c.WikiAPI),
		tldinfo.WithPageName(c.PageName),
		tldinfo.WithResolverAddress(c.Resolver),
		tldinfo.WithMaxMessageLength(c.MaxMessageLength),
	}
	if c.StaleAfterDays > 0 {
		opts = append(opts, tldinfo.WithStaleAfter(time.Duration(c.StaleAfterDays)*24*time.Hour))
	}
	if c.RefreshMinutes > 0 {
		opts = append(opts, tldinfo.WithRefreshInterval(time.Duration(c.RefreshMinutes)*time.Minute))
	}
	return opts
}

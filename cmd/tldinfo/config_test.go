// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tldinfo/src/tldinfo"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tldinfo.yaml")
	content := `
snapshotPath: /var/cache/tldinfo.yaml
userAgent: custom/2.0
staleAfterDays: 3
refreshMinutes: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "/var/cache/tldinfo.yaml", cfg.SnapshotPath)
	assert.Equal(t, "custom/2.0", cfg.UserAgent)
	assert.Equal(t, 3, cfg.StaleAfterDays)
	assert.Equal(t, 30, cfg.RefreshMinutes)
}

func TestLoadConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := loadConfig(missing, false)
	require.NoError(t, err, "an absent default config file is fine")
	assert.Zero(t, cfg)

	_, err = loadConfig(missing, true)
	assert.Error(t, err, "an explicitly requested config file must exist")
}

func TestLookupReply(t *testing.T) {
	assert.Equal(t, "You must provide a top-level domain to search.",
		lookupReply(tldinfo.ErrNoTLDGiven, ""))
	assert.Contains(t, lookupReply(tldinfo.ErrTLDNotRegistered, ".ZZ"), "'zz'")
	assert.Contains(t, lookupReply(tldinfo.ErrTLDNoDetails, "xn--p1ai"), "no details")
	assert.Empty(t, lookupReply(os.ErrClosed, "ru"),
		"unexpected errors are not rendered as user replies")
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tlds.xlsx")

	s := New(WithFetcher(&stubFetcher{}))
	s.Store().SetRecords(map[string]Record{
		"ru": {
			{Name: "Name", Value: ".ru"},
			{Name: "Sponsor", Value: "Coordination Center"},
		},
		"com": {
			{Name: "Name", Value: ".com"},
			{Name: "Notes", Value: "original generic TLD"},
		},
	}, time.Now())

	require.NoError(t, s.ExportXLSX(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "expected a header row plus one row per unique key")

	assert.Equal(t, []string{"TLD", "Name", "Notes", "Sponsor"}, rows[0],
		"headings are the union of field names in first-seen order across sorted keys")
	assert.Equal(t, "com", rows[1][0], "rows are sorted by lookup key")
	assert.Equal(t, "ru", rows[2][0])
	assert.Equal(t, "Coordination Center", rows[2][3])
}

func TestExportXLSXEmptyCache(t *testing.T) {
	s := New(WithFetcher(&stubFetcher{}))
	err := s.ExportXLSX(filepath.Join(t.TempDir(), "tlds.xlsx"))
	assert.ErrorIs(t, err, ErrNothingToExport)
}

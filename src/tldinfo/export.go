// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// exportSheet is the worksheet name used by [Service.ExportXLSX].
const exportSheet = "TLDs"

// ExportXLSX writes the cached record index to an Excel workbook at
// path. The first column holds the lookup key; the remaining columns
// are the union of all field names across records, in first-seen
// order. Rows are sorted by lookup key.
//
// Returns [ErrNothingToExport] when the record cache is empty.
func (s *Service) ExportXLSX(path string) error {
	records, _ := s.store.Records()
	if len(records) == 0 {
		return ErrNothingToExport
	}

	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Union of field names, in the order records introduce them.
	var headings []string
	seen := make(map[string]struct{})
	for _, key := range keys {
		for _, f := range records[key] {
			if _, ok := seen[f.Name]; ok {
				continue
			}
			seen[f.Name] = struct{}{}
			headings = append(headings, f.Name)
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("tldinfo: preparing worksheet: %w", err)
	}

	header := make([]interface{}, 0, len(headings)+1)
	header = append(header, "TLD")
	for _, h := range headings {
		header = append(header, h)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("tldinfo: writing header row: %w", err)
	}

	for i, key := range keys {
		record := records[key]
		row := make([]interface{}, 0, len(headings)+1)
		row = append(row, key)
		for _, h := range headings {
			row = append(row, record.Get(h))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("tldinfo: computing cell name: %w", err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("tldinfo: writing row for %q: %w", key, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("tldinfo: saving workbook: %w", err)
	}
	return nil
}

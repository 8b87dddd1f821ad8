// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	// reSuffix matches a ".suffix" token at the start of a cell.
	reSuffix = regexp.MustCompile(`^\.(\S+)`)

	// reIDN matches an IDNA (punycode) token at the start of a cell.
	reIDN = regexp.MustCompile(`^(xn--[A-Za-z0-9]+)`)
)

// placeholderValue marks a table cell that carries no information
// (the table uses an em dash for "none" / "not applicable").
const placeholderValue = "—"

// Field is a single heading/value pair from a TLD table row.
type Field struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Record holds the structured fields describing one TLD, in source
// column order. Order matters: rendered replies list the fields the
// way the table does, with notes moved last.
//
// Records are immutable once built. A single Record may be indexed
// under both the plain suffix and its IDNA form; both keys share the
// same underlying fields.
type Record []Field

// Get returns the value of the named field, or "" when the record
// has no such field.
func (r Record) Get(name string) string {
	for _, f := range r {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// IndexTables flattens extracted tables into a lookup map keyed by
// TLD suffix.
//
// For each data row, the first cell matching ".suffix" provides the
// plain key and the first cell matching "xn--…" provides the IDNA
// key, both lowercased; when both are present they map to the
// identical Record. Rows yielding neither key are dropped with a
// logged warning. Empty cells and placeholder dashes are not
// retained; they would only clutter the limited reply line.
func IndexTables(tables []Table, logger *zap.Logger) map[string]Record {
	if logger == nil {
		logger = zap.NewNop()
	}

	index := make(map[string]Record)
	for _, table := range tables {
		if len(table) == 0 {
			continue
		}
		headings := table[0]

		for _, row := range table[1:] {
			var key, idnKey string
			for _, cell := range row {
				if key == "" {
					if m := reSuffix.FindStringSubmatch(cell); m != nil {
						key = strings.ToLower(m[1])
					}
				}
				if idnKey == "" {
					if m := reIDN.FindStringSubmatch(cell); m != nil {
						idnKey = strings.ToLower(m[1])
					}
				}
			}

			if key == "" && idnKey == "" {
				logger.Warn("skipping row; could not find string to use as lookup key",
					zap.Strings("row", row))
				continue
			}

			record := make(Record, 0, len(headings))
			for i, heading := range headings {
				if i >= len(row) {
					break
				}
				value := row[i]
				if value == "" || value == placeholderValue {
					continue
				}
				record = append(record, Field{Name: heading, Value: value})
			}

			if key != "" {
				index[key] = record
			}
			if idnKey != "" {
				index[idnKey] = record
			}
		}
	}

	return index
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTablesOneRecordPerRow(t *testing.T) {
	tables := []Table{{
		{"Name", "Sponsor", "Notes"},
		{".ru", "Coordination Center", "Cyrillic sibling exists"},
		{".com", "Verisign", "—"},
	}}

	index := IndexTables(tables, nil)
	require.Len(t, index, 2)

	ru := index["ru"]
	require.NotEmpty(t, ru, "expected a record under the plain suffix key")
	assert.Equal(t, "Coordination Center", ru.Get("Sponsor"))
	assert.Equal(t, "Cyrillic sibling exists", ru.Get("Notes"))

	com := index["com"]
	require.NotEmpty(t, com)
	assert.Equal(t, "", com.Get("Notes"), "placeholder dash values must be dropped")
	assert.Len(t, com, 2, "only Name and Sponsor should be retained")
}

func TestIndexTablesDualKeySharesRecord(t *testing.T) {
	tables := []Table{{
		{"Name", "IDN", "Sponsor"},
		{".рф", "xn--p1ai", "Coordination Center"},
	}}

	index := IndexTables(tables, nil)
	require.Len(t, index, 2)

	plain, ok := index["рф"]
	require.True(t, ok, "expected record under the plain (Unicode) key")
	idn, ok := index["xn--p1ai"]
	require.True(t, ok, "expected record under the IDNA key")

	assert.Equal(t, plain, idn, "both keys must resolve to equal data")
	require.NotEmpty(t, plain)
	assert.True(t, &plain[0] == &idn[0],
		"both keys must share the identical record, not an independently parsed copy")
}

func TestIndexTablesFirstMatchWins(t *testing.T) {
	tables := []Table{{
		{"Name", "Alias", "Second alias"},
		{".ru", ".su", ".also"},
	}}

	index := IndexTables(tables, nil)
	_, ok := index["ru"]
	assert.True(t, ok, "the first .suffix match should provide the key")
	_, ok = index["su"]
	assert.False(t, ok, "subsequent .suffix matches in the same row are ignored")
}

func TestIndexTablesKeylessRowDropped(t *testing.T) {
	tables := []Table{{
		{"Name", "Sponsor"},
		{"no suffix here", "nobody"},
		{".ok", "someone"},
	}}

	index := IndexTables(tables, nil)
	require.Len(t, index, 1, "a row with neither a .suffix nor an xn-- token is dropped")
	assert.NotNil(t, index["ok"])
}

func TestIndexTablesEmptyValuesDropped(t *testing.T) {
	tables := []Table{{
		{"Name", "Sponsor", "Restrictions"},
		{".ru", "", "—"},
	}}

	index := IndexTables(tables, nil)
	record := index["ru"]
	require.Len(t, record, 1, "empty and placeholder values must not be retained")
	assert.Equal(t, Field{Name: "Name", Value: ".ru"}, record[0])
}

func TestIndexTablesUppercaseKeysLowered(t *testing.T) {
	tables := []Table{{
		{"Name"},
		{".RU"},
		{"XN--P1AI"},
	}}

	index := IndexTables(tables, nil)
	assert.Contains(t, index, "ru")
	// The IDN regexp is case-sensitive on the "xn--" prefix, matching
	// the source data, which always writes it lowercase.
	assert.NotContains(t, index, "xn--p1ai")
}

func TestIndexTablesEmptyInput(t *testing.T) {
	assert.Empty(t, IndexTables(nil, nil))
	assert.Empty(t, IndexTables([]Table{{}}, nil))
}

func TestRecordGet(t *testing.T) {
	r := Record{{Name: "Sponsor", Value: "x"}}
	assert.Equal(t, "x", r.Get("Sponsor"))
	assert.Equal(t, "", r.Get("Missing"))
}

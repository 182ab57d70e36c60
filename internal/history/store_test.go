// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/svgconv/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{
		HistoryDir: t.TempDir(),
		MaxResults: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(t *testing.T, s *Store, source string, format types.Format) {
	t.Helper()
	err := s.Record(context.Background(), Entry{
		Source:     source,
		Format:     format,
		OutputPath: source + "." + format.Extension(),
		InputSize:  100,
		OutputSize: 150,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestNewStoreRequiresDirectory(t *testing.T) {
	if _, err := NewStore(types.HistoryConfig{}); err == nil {
		t.Fatal("expected an error when no history directory is configured")
	}
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	record(t, s, "a.svg", types.FormatJSX)
	record(t, s, "b.svg", types.FormatCSS)
	record(t, s, "c.svg", types.FormatJSX)

	entries, err := s.Recent(ctx, QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	// Newest first.
	if entries[0].Source != "c.svg" || entries[2].Source != "a.svg" {
		t.Errorf("unexpected order: %s, %s, %s",
			entries[0].Source, entries[1].Source, entries[2].Source)
	}
	if entries[0].ConvertedAt.IsZero() {
		t.Error("ConvertedAt should be stamped on insert")
	}
	if entries[0].ID == 0 {
		t.Error("ID should be assigned by the database")
	}
}

func TestRecentFormatFilter(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	record(t, s, "a.svg", types.FormatJSX)
	record(t, s, "b.svg", types.FormatCSS)
	record(t, s, "c.svg", types.FormatJSX)

	entries, err := s.Recent(ctx, QueryOptions{Format: types.FormatJSX})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Format != types.FormatJSX {
			t.Errorf("entry %s has format %s, want jsx", e.Source, e.Format)
		}
	}
}

func TestRecentMaxResults(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		record(t, s, "x.svg", types.FormatRaw)
	}

	entries, err := s.Recent(ctx, QueryOptions{MaxResults: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	record(t, s, "a.svg", types.FormatTSX)
	record(t, s, "b.svg", types.FormatHTML)

	yamlPath := filepath.Join(dir, "export.yaml")
	if err := s.ExportYAML(ctx, yamlPath, QueryOptions{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML []Entry
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("export.yaml does not parse: %v", err)
	}
	if len(fromYAML) != 2 {
		t.Errorf("yaml entries = %d, want 2", len(fromYAML))
	}

	jsonPath := filepath.Join(dir, "export.json")
	if err := s.ExportJSON(ctx, jsonPath, QueryOptions{Format: types.FormatTSX}); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON []Entry
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("export.json does not parse: %v", err)
	}
	if len(fromJSON) != 1 || fromJSON[0].Source != "a.svg" {
		t.Errorf("json export filter mismatch: %+v", fromJSON)
	}
}

func TestStoreReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{HistoryDir: dir}

	s, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	record(t, s, "a.svg", types.FormatRaw)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Schema creation is idempotent and data survives reopening.
	s2, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("entries after reopen = %d, want 1", len(entries))
	}
}

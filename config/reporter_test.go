package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("ReporterConfig.Prepare() error = %v", err)
	}
	return r
}

func readArchiveNames(t *testing.T, path string) map[string]bool {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report archive: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func TestReport_DataAndFiles(t *testing.T) {
	r := newTestReport(t)
	name := r.Name()

	input := filepath.Join(t.TempDir(), "input.css")
	if err := os.WriteFile(input, []byte("H1 {\n\tcolor: blue;\n}\n"), 0644); err != nil {
		t.Fatalf("unable to write input file: %v", err)
	}

	r.StoreData("config/config.yaml", []byte("version: 1\n"))
	r.Store("input.css", input)

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error = %v", err)
	}

	names := readArchiveNames(t, name)
	for _, want := range []string{"MANIFEST", "config/config.yaml", "input.css"} {
		if !names[want] {
			t.Errorf("report archive missing %q, has %v", want, names)
		}
	}
}

func TestReport_StoreCopySurvivesSourceChange(t *testing.T) {
	r := newTestReport(t)
	name := r.Name()

	src := filepath.Join(t.TempDir(), "volatile.css")
	if err := os.WriteFile(src, []byte("P {\n}\n"), 0644); err != nil {
		t.Fatalf("unable to write source: %v", err)
	}

	if err := r.StoreCopy("snapshot.css", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// Mutate the original after the snapshot was taken.
	if err := os.WriteFile(src, []byte("changed"), 0644); err != nil {
		t.Fatalf("unable to mutate source: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error = %v", err)
	}

	if names := readArchiveNames(t, name); !names["snapshot.css"] {
		t.Errorf("report archive missing snapshot, has %v", names)
	}
}

func TestReport_NilIsSafe(t *testing.T) {
	var r *Report

	// All operations are no-ops when no report was requested.
	r.Store("a", "b")
	r.StoreData("c", []byte("d"))
	if err := r.StoreCopy("e", "f"); err != nil {
		t.Errorf("StoreCopy on nil report error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report error = %v", err)
	}
}

func TestReport_CloseWithoutFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close without file error = %v", err)
	}
}

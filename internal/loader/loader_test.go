package loader

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jengzang/survey-dashboard-go/internal/models"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func TestReadCSV_PadsAndSkipsBlankRows(t *testing.T) {
	data := "\ufeffPartisipan, Q1 ,Q2\nP1,SS,S\n,,\nP2,TS\n"

	table, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if !reflect.DeepEqual(table.Columns, []string{"Partisipan", "Q1", "Q2"}) {
		t.Fatalf("Columns=%q", table.Columns)
	}
	want := [][]string{{"P1", "SS", "S"}, {"P2", "TS", ""}}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Fatalf("Rows=%q", table.Rows)
	}
}

func TestReadCSV_RejectsExtraCells(t *testing.T) {
	data := "Partisipan,Q1\nP1,SS,S\n"
	if _, err := ReadCSV(strings.NewReader(data)); err == nil {
		t.Fatalf("expected error for unlabeled cell")
	}
}

func TestReadFile_XLSXMatchesCSV(t *testing.T) {
	dir := t.TempDir()

	xlsxPath := filepath.Join(dir, "data_kuesioner.xlsx")
	writeXLSX(t, xlsxPath, [][]interface{}{
		{"Partisipan", "Q1", "Q2"},
		{"P1", "SS", "CS"},
		{"P2", "STS", "S"},
	})

	csvPath := filepath.Join(dir, "data_kuesioner.csv")
	if err := os.WriteFile(csvPath, []byte("Partisipan,Q1,Q2\nP1,SS,CS\nP2,STS,S\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fromXLSX, err := ReadFile(xlsxPath, Options{})
	if err != nil {
		t.Fatalf("ReadFile xlsx: %v", err)
	}
	fromCSV, err := ReadFile(csvPath, Options{})
	if err != nil {
		t.Fatalf("ReadFile csv: %v", err)
	}

	if !reflect.DeepEqual(fromXLSX, fromCSV) {
		t.Fatalf("xlsx=%v csv=%v", fromXLSX, fromCSV)
	}
}

func TestReadFile_UnknownSheetAndExtension(t *testing.T) {
	dir := t.TempDir()

	xlsxPath := filepath.Join(dir, "data.xlsx")
	writeXLSX(t, xlsxPath, [][]interface{}{{"Partisipan", "Q1"}, {"P1", "SS"}})
	if _, err := ReadFile(xlsxPath, Options{Sheet: "Missing"}); err == nil {
		t.Fatalf("expected error for missing sheet")
	}

	txtPath := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadFile(txtPath, Options{}); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestCache_LoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("Partisipan,Q1\nP1,SS\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cache := NewCache(path, Options{})
	if cache.Loaded() {
		t.Fatalf("cache loaded before first access")
	}

	first, err := cache.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	second, err := cache.Get()
	if err != nil {
		t.Fatalf("Get after remove: %v", err)
	}
	if first != second {
		t.Fatalf("cache returned a different table")
	}
}

func TestCache_RetriesAfterFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.csv")
	cache := NewCache(path, Options{})

	if _, err := cache.Get(); err == nil {
		t.Fatalf("expected error for missing file")
	}

	if err := os.WriteFile(path, []byte("Partisipan,Q1\nP1,S\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	table, err := cache.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Rows=%v", table.Rows)
	}
}

func TestCache_ConcurrentGetReadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("Partisipan,Q1\nP1,SS\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var reads int32
	cache := NewCache(path, Options{})
	cache.read = func(p string, opts Options) (*models.RawResponseTable, error) {
		atomic.AddInt32(&reads, 1)
		return ReadFile(p, opts)
	}

	const callers = 16
	tables := make([]*models.RawResponseTable, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i], errs[i] = cache.Get()
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("Get[%d]: %v", i, errs[i])
		}
		if tables[i] != tables[0] {
			t.Fatalf("Get[%d] returned a different table", i)
		}
	}
	if n := atomic.LoadInt32(&reads); n != 1 {
		t.Fatalf("file read %d times", n)
	}
}

package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ServicesHeader is the header row of the services sheet.
var ServicesHeader = []any{
	"Category", "Service", "Recommend", "Condition", "Bundle", "Engagement Type",
	"Term Low", "Term High", "Budget Low", "Budget High", "% Project", "% Paid Media", "Note",
}

// TriggersHeader is the header row of the trigger patterns sheet.
var TriggersHeader = []any{
	"ID", "Category", "Description", "Engagement Type",
	"Direct", "Indirect", "Situational", "Performance", "Sample Language",
}

// Workbook describes a spreadsheet fixture. Rows exclude the header; nil
// cells are left empty.
type Workbook struct {
	Services [][]any
	Triggers [][]any

	// ServicesSheet and TriggersSheet override the sheet names. A value of
	// "-" omits the sheet entirely.
	ServicesSheet string
	TriggersSheet string
}

// WriteWorkbook saves the fixture as an xlsx file inside dir and returns its
// path. Testing helpers fail the test on error to keep callers concise.
func WriteWorkbook(t *testing.T, dir string, fixture Workbook) string {
	t.Helper()

	path := filepath.Join(dir, "services.xlsx")
	if err := SaveWorkbook(path, fixture); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return path
}

// SaveWorkbook writes the fixture without requiring testing.T, allowing
// callers to build fixtures in setup functions.
func SaveWorkbook(path string, fixture Workbook) error {
	if path == "" {
		return errors.New("testsupport: workbook path is required")
	}

	file := excelize.NewFile()
	defer file.Close()

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{name: sheetName(fixture.ServicesSheet, "Services Master"), header: ServicesHeader, rows: fixture.Services},
		{name: sheetName(fixture.TriggersSheet, "Trigger Patterns"), header: TriggersHeader, rows: fixture.Triggers},
	}

	written := 0
	for _, sheet := range sheets {
		if sheet.name == "-" {
			continue
		}
		if _, err := file.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("testsupport: new sheet %q: %w", sheet.name, err)
		}
		if err := writeRow(file, sheet.name, 1, sheet.header); err != nil {
			return err
		}
		for i, row := range sheet.rows {
			if err := writeRow(file, sheet.name, i+2, row); err != nil {
				return err
			}
		}
		written++
	}

	if written > 0 {
		if err := file.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("testsupport: drop default sheet: %w", err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("testsupport: save workbook: %w", err)
	}
	return nil
}

func sheetName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func writeRow(file *excelize.File, sheet string, rowNum int, cells []any) error {
	for col, value := range cells {
		if value == nil {
			continue
		}
		ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("testsupport: cell name: %w", err)
		}
		if err := file.SetCellValue(sheet, ref, value); err != nil {
			return fmt.Errorf("testsupport: set %s!%s: %w", sheet, ref, err)
		}
	}
	return nil
}

// TargetTemplate is a minimal target source file carrying both marker pairs
// and a version declaration.
const TargetTemplate = `import React from 'react';

const APP_VERSION = '1.2.3';

// === SYNC:SERVICE_TRIGGERS_START ===
const SERVICE_TRIGGERS = [];
// === SYNC:SERVICE_TRIGGERS_END ===

const ASSESSMENT = 'unchanged';

// === SYNC:PRICING_GUIDE_START ===
const PRICING_GUIDE = ` + "``" + `;
// === SYNC:PRICING_GUIDE_END ===

export default function App() {
  return null;
}
`

// WriteTarget writes content to a target file inside dir and returns its
// path.
func WriteTarget(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "App.jsx")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write target: %v", err)
	}
	return path
}

// ReadFile returns the file content as a string, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

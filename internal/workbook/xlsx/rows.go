package xlsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-servicesync/pkg/catalog"
)

// Services Master columns, 1-indexed.
const (
	colCategory = iota + 1
	colName
	colRecommend
	colCondition
	colBundle
	colEngagement
	colTermLow
	colTermHigh
	colBudgetLow
	colBudgetHigh
	colPctProject
	colPctPaidMedia
	colNote
)

// Trigger Patterns columns, 1-indexed.
const (
	colTriggerID = iota + 1
	colTriggerCategory
	colTriggerDescription
	colTriggerEngagement
	colTriggerDirect
	colTriggerIndirect
	colTriggerSituational
	colTriggerPerformance
	colTriggerSampleLanguage
)

// firstDataRow skips the header row.
const firstDataRow = 2

const placeholder = "None"

func readServices(sheet string, rows [][]string) ([]catalog.Service, error) {
	var out []catalog.Service
	for idx := firstDataRow - 1; idx < len(rows); idx++ {
		row := rowReader{sheet: sheet, cells: rows[idx], number: idx + 1}

		category := row.text(colCategory)
		name := row.text(colName)
		if category == "" || name == "" {
			continue
		}

		svc := catalog.Service{
			Category:       category,
			Name:           name,
			Recommend:      catalog.Recommendation(row.optional(colRecommend, string(catalog.RecommendConditional))),
			Condition:      row.optional(colCondition, ""),
			Bundle:         row.optional(colBundle, ""),
			EngagementType: catalog.EngagementType(row.optional(colEngagement, string(catalog.EngagementFixedFee))),
			Note:           row.optional(colNote, ""),
			Row:            row.number,
		}

		var err error
		pricing := &svc.Pricing
		if pricing.TermLow, err = row.integer(colTermLow); err != nil {
			return nil, err
		}
		if pricing.TermHigh, err = row.integer(colTermHigh); err != nil {
			return nil, err
		}
		if pricing.BudgetLow, err = row.integer(colBudgetLow); err != nil {
			return nil, err
		}
		if pricing.BudgetHigh, err = row.integer(colBudgetHigh); err != nil {
			return nil, err
		}
		if pricing.PctProject, err = row.float(colPctProject); err != nil {
			return nil, err
		}
		if pricing.PctPaidMedia, err = row.float(colPctPaidMedia); err != nil {
			return nil, err
		}

		out = append(out, svc)
	}
	return out, nil
}

// readTriggers keys trigger sets by category; a later row for the same
// category replaces the earlier one.
func readTriggers(rows [][]string) map[string]catalog.TriggerSet {
	out := make(map[string]catalog.TriggerSet)
	for idx := firstDataRow - 1; idx < len(rows); idx++ {
		row := rowReader{cells: rows[idx], number: idx + 1}

		id := row.text(colTriggerID)
		if id == "" {
			continue
		}

		category := row.text(colTriggerCategory)
		out[category] = catalog.TriggerSet{
			ID:             id,
			Category:       category,
			Description:    row.text(colTriggerDescription),
			EngagementType: catalog.EngagementType(row.text(colTriggerEngagement)),
			Patterns: catalog.TriggerPatterns{
				Direct:         row.lines(colTriggerDirect),
				Indirect:       row.lines(colTriggerIndirect),
				Situational:    row.lines(colTriggerSituational),
				Performance:    row.lines(colTriggerPerformance),
				SampleLanguage: row.lines(colTriggerSampleLanguage),
			},
			Row: row.number,
		}
	}
	return out
}

type rowReader struct {
	sheet  string
	cells  []string
	number int
}

func (r rowReader) raw(col int) string {
	if col-1 < len(r.cells) {
		return r.cells[col-1]
	}
	return ""
}

func (r rowReader) text(col int) string {
	return strings.TrimSpace(r.raw(col))
}

// optional returns the trimmed cell text, falling back when the cell is empty
// or holds the "None" placeholder.
func (r rowReader) optional(col int, fallback string) string {
	value := r.text(col)
	if value == "" || value == placeholder {
		return fallback
	}
	return value
}

func (r rowReader) lines(col int) []string {
	value := r.raw(col)
	if value == "" || strings.TrimSpace(value) == placeholder {
		return nil
	}
	var out []string
	for _, line := range strings.Split(value, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (r rowReader) number64(col int) (float64, bool, error) {
	value := r.text(col)
	if value == "" || value == placeholder {
		return 0, false, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false, fmt.Errorf("xlsx loader: %s: invalid number %q", r.ref(col), value)
	}
	return parsed, true, nil
}

// integer truncates toward zero, so 4.9 weeks reads as 4.
func (r rowReader) integer(col int) (*int, error) {
	value, ok, err := r.number64(col)
	if err != nil || !ok {
		return nil, err
	}
	whole := math.Trunc(value)
	if whole >= math.MaxInt || whole < math.MinInt {
		return nil, fmt.Errorf("xlsx loader: %s: number %q out of range", r.ref(col), r.text(col))
	}
	truncated := int(whole)
	return &truncated, nil
}

func (r rowReader) float(col int) (*float64, error) {
	value, ok, err := r.number64(col)
	if err != nil || !ok {
		return nil, err
	}
	return &value, nil
}

func (r rowReader) ref(col int) string {
	cell, err := excelize.CoordinatesToCellName(col, r.number)
	if err != nil {
		cell = fmt.Sprintf("R%dC%d", r.number, col)
	}
	if r.sheet == "" {
		return cell
	}
	return r.sheet + "!" + cell
}

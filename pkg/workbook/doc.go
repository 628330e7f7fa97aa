// Package workbook exposes the public contracts for reading the services
// spreadsheet. The excelize backed implementation lives under
// internal/workbook to keep the spreadsheet library hidden from consumers.
package workbook

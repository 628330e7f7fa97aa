package orchestrator

import "errors"

var (
	// ErrSpreadsheetNotFound reports a missing workbook file.
	ErrSpreadsheetNotFound = errors.New("orchestrator: spreadsheet not found")
	// ErrTargetNotFound reports a missing target file.
	ErrTargetNotFound = errors.New("orchestrator: target file not found")
	// ErrOutOfDate is returned in check mode when regenerating would change
	// the target's generated blocks.
	ErrOutOfDate = errors.New("orchestrator: generated blocks are out of date")
	// ErrAborted signals the operator declined or interrupted the write.
	ErrAborted = errors.New("orchestrator: aborted")
)

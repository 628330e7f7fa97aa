package servicesync

import (
	"github.com/goliatone/go-servicesync/internal/workbook/xlsx"
	"github.com/goliatone/go-servicesync/pkg/workbook"
)

// NewLoader constructs a workbook loader using the internal excelize
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...workbook.LoaderOption) workbook.Loader {
	cfg := workbook.NewLoaderOptions(options...)
	return xlsx.New(cfg)
}

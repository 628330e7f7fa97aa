package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-servicesync/pkg/catalog"
	"github.com/goliatone/go-servicesync/pkg/workbook"
)

// Loader implements workbook.Loader on top of excelize. Cells are read as raw
// values so formulas resolve to their cached results and numbers are not run
// through the sheet's display format.
type Loader struct {
	fs            fs.FS
	servicesSheet string
	triggersSheet string
}

// Ensure the implementation satisfies the public interface.
var _ workbook.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options workbook.LoaderOptions) workbook.Loader {
	return &Loader{
		fs:            options.FileSystem,
		servicesSheet: options.ServicesSheet,
		triggersSheet: options.TriggersSheet,
	}
}

// Load opens the workbook and reads both sheets.
func (l *Loader) Load(ctx context.Context, src workbook.Source) (catalog.Workbook, error) {
	if src == nil {
		return catalog.Workbook{}, errors.New("xlsx loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return catalog.Workbook{}, err
	}

	file, err := l.open(src)
	if err != nil {
		return catalog.Workbook{}, err
	}
	defer file.Close()

	sheets := file.GetSheetList()
	for _, name := range []string{l.servicesSheet, l.triggersSheet} {
		if !slices.Contains(sheets, name) {
			return catalog.Workbook{}, fmt.Errorf("%w: %q in %s", workbook.ErrSheetNotFound, name, src.Location())
		}
	}

	serviceRows, err := file.GetRows(l.servicesSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return catalog.Workbook{}, fmt.Errorf("xlsx loader: read %q: %w", l.servicesSheet, err)
	}
	services, err := readServices(l.servicesSheet, serviceRows)
	if err != nil {
		return catalog.Workbook{}, err
	}

	if err := ctx.Err(); err != nil {
		return catalog.Workbook{}, err
	}

	triggerRows, err := file.GetRows(l.triggersSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return catalog.Workbook{}, fmt.Errorf("xlsx loader: read %q: %w", l.triggersSheet, err)
	}

	return catalog.Workbook{
		Services: services,
		Triggers: readTriggers(triggerRows),
	}, nil
}

func (l *Loader) open(src workbook.Source) (*excelize.File, error) {
	opts := excelize.Options{RawCellValue: true}

	switch src.Kind() {
	case workbook.SourceKindFile:
		file, err := excelize.OpenFile(src.Location(), opts)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", workbook.ErrNotFound, src.Location())
			}
			return nil, fmt.Errorf("xlsx loader: open %s: %w", src.Location(), err)
		}
		return file, nil
	case workbook.SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("xlsx loader: filesystem is not configured")
		}
		handle, err := l.fs.Open(src.Location())
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", workbook.ErrNotFound, src.Location())
			}
			return nil, fmt.Errorf("xlsx loader: open %s: %w", src.Location(), err)
		}
		defer handle.Close()

		file, err := excelize.OpenReader(handle, opts)
		if err != nil {
			return nil, fmt.Errorf("xlsx loader: open %s: %w", src.Location(), err)
		}
		return file, nil
	default:
		return nil, fmt.Errorf("xlsx loader: unsupported source kind %q", src.Kind())
	}
}

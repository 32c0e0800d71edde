package brd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// bomColumns is the fixed header row of the bill of materials. The tab
// inside "Package\tType" is part of the legacy column name and is kept
// for consumers keyed on it.
var bomColumns = []string{
	"Item #", "Qty Per Board", "Ref Des.", "Manufacturer",
	"Mfg Part #", "Description", "Package\tType", "# of leads", "Shipped Inventory",
}

// BOM derives the bill of materials from the placed elements: one row
// per distinct package in first-seen order, carrying the quantity, the
// comma-joined reference designators in placement order, and the lead
// count of the package. Manufacturer, part number, description and
// inventory are not tracked by the model and stay empty. The data rows
// are preceded by a title row, the optional heading row, a blank
// spacer and the column header.
func (b *Board) BOM(heading string) [][]string {
	groups := newOrderedMap[[]*Element]()
	for _, e := range b.elements {
		groups.add(e.Package.Name, nil)
	}
	for _, e := range b.elements {
		i := groups.index[e.Package.Name]
		groups.items[i] = append(groups.items[i], e)
	}

	rows := [][]string{{b.Title}}
	if heading != "" {
		rows = append(rows, []string{heading})
	}
	rows = append(rows, []string{""}, bomColumns)

	for i, name := range groups.keys() {
		bucket := groups.items[groups.index[name]]
		refs := make([]string, len(bucket))
		for j, e := range bucket {
			refs[j] = e.Name
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(len(bucket)),
			strings.Join(refs, ", "),
			"", // manufacturer
			"", // manufacturer part number
			"", // description
			name,
			strconv.Itoa(bucket[0].PadCount()),
			"", // shipped inventory
		})
	}
	return rows
}

// writeBOMRow emits one semicolon-delimited row. Quoting uses |...|
// and is applied only to fields that contain the delimiter, a quote
// character or a line break; an inner | is doubled.
func writeBOMRow(w io.Writer, row []string) error {
	for i, field := range row {
		if i > 0 {
			if _, err := io.WriteString(w, ";"); err != nil {
				return err
			}
		}
		if strings.ContainsAny(field, ";|\n\r") {
			field = "|" + strings.ReplaceAll(field, "|", "||") + "|"
		}
		if _, err := io.WriteString(w, field); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteBOM writes the bill of materials to w.
func (b *Board) WriteBOM(w io.Writer, heading string) error {
	for _, row := range b.BOM(heading) {
		if err := writeBOMRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteBOMFile writes the bill of materials to path, which must end in
// ".csv". The file is closed even when writing fails partway.
func (b *Board) WriteBOMFile(path, heading string) error {
	if !strings.HasSuffix(path, ".csv") {
		return fmt.Errorf("%w: BOM file name must end in .csv, got %q", ErrInvalidArgument, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create BOM file: %w", err)
	}
	werr := b.WriteBOM(f, heading)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write BOM file: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close BOM file: %w", cerr)
	}
	return nil
}

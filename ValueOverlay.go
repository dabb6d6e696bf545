package main

import (
	"sort"
	"tabularDataEditor/contracts"
)

// ValueOverlay holds edited cell values on top of the original parse. Entries of
// removed rows and columns stay in place; they are unreachable, not deleted.
type ValueOverlay struct {
	values map[contracts.CellKey]string
}

func NewValueOverlay() *ValueOverlay {
	return &ValueOverlay{values: map[contracts.CellKey]string{}}
}

func (o *ValueOverlay) Len() int {
	return len(o.values)
}

func (o *ValueOverlay) Get(key contracts.CellKey) (string, bool) {
	text, ok := o.values[key]
	return text, ok
}

func (o *ValueOverlay) Lookup(key contracts.CellKey) contracts.CellValue {
	if text, ok := o.values[key]; ok {
		return contracts.Text(text)
	}
	return contracts.Absent()
}

// Set stores text and returns the previous value.
func (o *ValueOverlay) Set(key contracts.CellKey, text string) contracts.CellValue {
	previous := o.Lookup(key)
	o.values[key] = text
	return previous
}

func (o *ValueOverlay) Delete(key contracts.CellKey) contracts.CellValue {
	previous := o.Lookup(key)
	delete(o.values, key)
	return previous
}

func (o *ValueOverlay) Put(key contracts.CellKey, value contracts.CellValue) contracts.CellValue {
	if value.Present {
		return o.Set(key, value.Text)
	}
	return o.Delete(key)
}

// ClearRange sets every cell of the key product to the empty string and returns the
// previous values.
func (o *ValueOverlay) ClearRange(rowKeys []contracts.RowKey, columnKeys []contracts.ColumnKey) map[contracts.CellKey]contracts.CellValue {
	cleared := make(map[contracts.CellKey]contracts.CellValue, len(rowKeys)*len(columnKeys))
	for _, rowKey := range rowKeys {
		for _, columnKey := range columnKeys {
			key := contracts.CellKey{Row: rowKey, Column: columnKey}
			cleared[key] = o.Set(key, "")
		}
	}
	return cleared
}

// Getter returns a values getter over cell keys, nil for cells without an entry.
func (o *ValueOverlay) Getter() CellKeyValuesGetter {
	return func(keys []contracts.CellKey) []*string {
		values := make([]*string, len(keys))
		for index, key := range keys {
			if text, ok := o.values[key]; ok {
				values[index] = &text
			}
		}
		return values
	}
}

// Reachable lists entries whose keys are still mapped, in visual order.
func (o *ValueOverlay) Reachable(rows *IndexMap[contracts.RowKey], columns *IndexMap[contracts.ColumnKey]) []contracts.EditedCell {
	edited := make([]contracts.EditedCell, 0, len(o.values))
	for key, text := range o.values {
		row, rowOk := rows.PositionOf(key.Row)
		column, columnOk := columns.PositionOf(key.Column)
		if rowOk && columnOk {
			edited = append(edited, contracts.EditedCell{
				CellPosition: contracts.CellPosition{Row: row, Column: column},
				Value:        text,
			})
		}
	}

	sort.Slice(edited, func(i, j int) bool {
		if edited[i].Row != edited[j].Row {
			return edited[i].Row < edited[j].Row
		}
		return edited[i].Column < edited[j].Column
	})
	return edited
}

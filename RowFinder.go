package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"tabularDataEditor/contracts"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RowFinder searches the visible grid. Plain text matches cells, an expression
// starting with "=" filters rows.
type RowFinder struct {
	canonicalizer   contracts.Canonicalizer
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

const RowVariable = "row"

func NewRowFinder(canonicalizer contracts.Canonicalizer) *RowFinder {
	return &RowFinder{
		canonicalizer: canonicalizer,
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
			expr.DisableAllBuiltins(),
			maxFunction, minFunction, sumFunction, avgFunction,
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (f *RowFinder) IsExpression(query string) bool {
	return strings.HasPrefix(query, contracts.ExpressionPrefix)
}

// FindText matches case-insensitively and returns positions in visual order.
func (f *RowFinder) FindText(grid contracts.GridReader, text string) []contracts.CellPosition {
	found := make([]contracts.CellPosition, 0)
	if text == "" {
		return found
	}

	needle := strings.ToLower(text)
	rowCount := grid.RowCount()
	columnCount := grid.ColumnCount()
	for row := 0; row < rowCount; row++ {
		for column := 0; column < columnCount; column++ {
			if strings.Contains(strings.ToLower(grid.CellAt(row, column)), needle) {
				found = append(found, contracts.CellPosition{Row: row, Column: column})
			}
		}
	}

	return found
}

// FindRows evaluates the expression once per data row. Columns are read through
// their canonical header name or as c1, c2, ...; the row position is in `row`.
func (f *RowFinder) FindRows(grid contracts.GridReader, expression string) ([]int, error) {
	program, names, err := f.compile(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.ExpressionError, err.Error())
	}

	header := grid.Header()
	headerColumns := make(map[string]int, len(header))
	for column, title := range header {
		name := f.canonicalizer.Canonicalize(title)
		if _, exists := headerColumns[name]; !exists && name != "" {
			headerColumns[name] = column
		}
	}

	firstRow := 0
	if header != nil {
		firstRow = 1
	}

	rows := make([]int, 0)
	v := f.vmPool.Get().(*vm.VM)
	defer f.vmPool.Put(v)

	for row := firstRow; row < grid.RowCount(); row++ {
		vars := f.lookupVars(names, f.makeValuesGetter(grid, row, headerColumns))

		out, err := v.Run(program, vars)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", contracts.ExpressionError, row, err.Error())
		}

		matched, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: result of %q is %T, not bool", contracts.ExpressionError, expression, out)
		}
		if matched {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func (f *RowFinder) compile(expression string) (*vm.Program, []string, error) {
	visitor := NewColumnRefsVisitor()
	options := append(f.compilerOptions[:len(f.compilerOptions):len(f.compilerOptions)], expr.Patch(visitor))

	program, err := expr.Compile(strings.TrimPrefix(expression, contracts.ExpressionPrefix), options...)
	if err != nil {
		return nil, nil, err
	}
	return program, visitor.Names(), nil
}

// makeValuesGetter resolves canonical names for one row: header titles first, then
// positional cN names and the row variable.
func (f *RowFinder) makeValuesGetter(grid contracts.GridReader, row int, headerColumns map[string]int) ValuesGetter[string] {
	headerGetter := func(names []string) []*string {
		values := make([]*string, len(names))
		for index, name := range names {
			if column, ok := headerColumns[name]; ok {
				value := grid.CellAt(row, column)
				values[index] = &value
			}
		}
		return values
	}

	positionalGetter := func(names []string) []*string {
		values := make([]*string, len(names))
		for index, name := range names {
			if !strings.HasPrefix(name, "c") {
				continue
			}
			column, err := strconv.Atoi(name[1:])
			if err == nil && column >= 1 && column <= grid.ColumnCount() {
				value := grid.CellAt(row, column-1)
				values[index] = &value
			}
		}
		return values
	}

	rowValue := strconv.Itoa(row)
	rowGetter := NewNamedValuesGetter(map[string]*string{
		RowVariable: &rowValue,
	})

	return NewValuesGetterChain[string](NewValuesGetterChain[string](headerGetter, rowGetter), positionalGetter)
}

func (f *RowFinder) lookupVars(names []string, valuesGetter ValuesGetter[string]) map[string]any {
	vars := make(map[string]any, len(names))
	if len(names) == 0 {
		return vars
	}

	canonicalNames := make([]string, len(names))
	for index, name := range names {
		canonicalNames[index] = f.canonicalizer.Canonicalize(name)
	}

	values := valuesGetter(canonicalNames)
	for index, name := range names {
		if values[index] == nil {
			vars[name] = nil
			continue
		}
		vars[name] = parseCellValue(*values[index])
	}

	return vars
}

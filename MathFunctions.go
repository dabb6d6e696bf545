package main

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm/runtime"
)

// Row aggregates receive parsed cell values. Empty cells arrive as nil and are
// left out, so a partly filled row still aggregates.

func presentValues(args []any) []any {
	values := make([]any, 0, len(args))
	for _, arg := range args {
		if arg != nil {
			values = append(values, arg)
		}
	}
	return values
}

func pickValue(args []any, better func(candidate any, current any) bool) any {
	var picked any
	for _, value := range presentValues(args) {
		if picked == nil || better(value, picked) {
			picked = value
		}
	}
	return picked
}

var calculateMax = func(args ...any) (any, error) {
	return pickValue(args, runtime.More), nil
}

var calculateMin = func(args ...any) (any, error) {
	return pickValue(args, runtime.Less), nil
}

// calculateSum of a row with only empty cells is 0.
var calculateSum = func(args ...any) (any, error) {
	var sum any = 0
	for _, value := range presentValues(args) {
		sum = runtime.Add(sum, value)
	}
	return sum, nil
}

// calculateAvg divides by the number of non-empty cells.
var calculateAvg = func(args ...any) (any, error) {
	values := presentValues(args)
	if len(values) == 0 {
		return 0, nil
	}

	sum, err := calculateSum(values...)
	if err != nil {
		return nil, err
	}
	return runtime.Divide(sum, len(values)), nil
}

var maxFunction = expr.Function("max", calculateMax)
var minFunction = expr.Function("min", calculateMin)
var sumFunction = expr.Function("sum", calculateSum)
var avgFunction = expr.Function("avg", calculateAvg)

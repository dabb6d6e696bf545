package main

import (
	"github.com/stretchr/testify/assert"
	"tabularDataEditor/contracts"
	"testing"
)

func _serializeModel(model *GridModel, format contracts.DocumentFormat) string {
	return SerializeDelimited(model.Rows(), model.Columns(), model.Overlay(), model.Original(), format)
}

func TestSerializeDelimited(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		texts := []struct {
			name      string
			text      string
			delimiter string
		}{
			{"lf_trailing", "a,b\n1,2\n", ","},
			{"lf", "a,b\n1,2", ","},
			{"crlf", "a,b\r\n1,2\r\n", ","},
			{"crlf_no_trailing", "a,b\r\n1,2", ","},
			{"cr", "a,b\r1,2\r", ","},
			{"tab_trailing", "a\tb\n1\t2\n", "\t"},
			{"tab_crlf", "a\tb\r\n1\t2", "\t"},
			{"tab_cr", "a\tb\r1\t2\r", "\t"},
			{"tab_lf", "a\tb\n1\t2", "\t"},
			{"blank_line", "a,b\n1,2\n\n", ","},
			{"blank_line_inside", "a\tb\r\n\r\n1\t2\r\n", "\t"},
			{"empty", "", ","},
			{"single_newline", "\n", ","},
			{"quoted", "\"a,b\",\"x\ny\"\n", ","},
			{"escaped_quote", "\"\"\"q\"\"\",z\n", ","},
		}

		for _, test := range texts {
			t.Run(test.name, func(t *testing.T) {
				parsed, err := ParseDelimited(test.text, test.delimiter)
				assert.NoError(t, err)

				model := NewGridModel(parsed.Rows)
				assert.Equal(t, test.text, _serializeModel(model, parsed.Format))
			})
		}
	})

	t.Run("edits_in_visual_order", func(t *testing.T) {
		parsed, _ := ParseDelimited("a,b\n1,2\n", ",")
		model := NewGridModel(parsed.Rows)
		engine := NewEditEngine(model, ",")

		engine.MoveColumns(1, 0, 1)
		engine.InsertRows(1, 1)
		engine.SetCell(1, 0, "new, value")

		assert.Equal(t, "b,a\n\"new, value\",\n2,1\n", _serializeModel(model, parsed.Format))
	})

	t.Run("blank_line_after_edits", func(t *testing.T) {
		parsed, _ := ParseDelimited("a,b\n\n1,2\n", ",")
		model := NewGridModel(parsed.Rows)
		engine := NewEditEngine(model, ",")

		engine.InsertRows(0, 1)
		assert.Equal(t, ",\na,b\n\n1,2\n", _serializeModel(model, parsed.Format))

		engine.SetCell(2, 1, "x")
		assert.Equal(t, ",\na,b\n,x\n1,2\n", _serializeModel(model, parsed.Format))

		engine.SetCell(2, 1, "")
		assert.Equal(t, ",\na,b\n\n1,2\n", _serializeModel(model, parsed.Format))
	})

	t.Run("defaults", func(t *testing.T) {
		model := NewGridModel([][]string{{"a", "b"}, {"c", "d"}})

		assert.Equal(t, "a,b\nc,d", _serializeModel(model, contracts.DocumentFormat{}))
	})

	t.Run("removed_everything", func(t *testing.T) {
		parsed, _ := ParseDelimited("a\nb\n", ",")
		model := NewGridModel(parsed.Rows)
		NewEditEngine(model, ",").RemoveRows(0, 2)

		assert.Equal(t, "", _serializeModel(model, parsed.Format))
	})
}

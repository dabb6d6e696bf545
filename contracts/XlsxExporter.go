package contracts

import "io"

type XlsxExporter interface {
	Export(grid GridReader, types []CellType, w io.Writer) error
}

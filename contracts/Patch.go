package contracts

type PatchKind int

const (
	PatchRowSplice PatchKind = iota
	PatchColumnSplice
	PatchCellSet
	PatchComposite
)

func (k PatchKind) String() string {
	switch k {
	case PatchRowSplice:
		return "row-splice"
	case PatchColumnSplice:
		return "column-splice"
	case PatchCellSet:
		return "cell-set"
	case PatchComposite:
		return "composite"
	}
	return "unknown"
}

// Patch is the invertible description of one edit. Applying Inverse() to the
// post-state gives back the pre-state, key identities included.
type Patch interface {
	Kind() PatchKind
	Inverse() Patch
}

type RowSplicePatch struct {
	Position int
	Removed  []RowKey
	Inserted []RowKey
}

func (p *RowSplicePatch) Kind() PatchKind {
	return PatchRowSplice
}

func (p *RowSplicePatch) Inverse() Patch {
	return &RowSplicePatch{
		Position: p.Position,
		Removed:  p.Inserted,
		Inserted: p.Removed,
	}
}

type ColumnSplicePatch struct {
	Position int
	Removed  []ColumnKey
	Inserted []ColumnKey
}

func (p *ColumnSplicePatch) Kind() PatchKind {
	return PatchColumnSplice
}

func (p *ColumnSplicePatch) Inverse() Patch {
	return &ColumnSplicePatch{
		Position: p.Position,
		Removed:  p.Inserted,
		Inserted: p.Removed,
	}
}

type CellChange struct {
	Key CellKey
	Old CellValue
	New CellValue
}

type CellSetPatch struct {
	Changes []CellChange
}

func (p *CellSetPatch) Kind() PatchKind {
	return PatchCellSet
}

func (p *CellSetPatch) Inverse() Patch {
	changes := make([]CellChange, len(p.Changes))
	last := len(p.Changes) - 1
	for i, change := range p.Changes {
		changes[last-i] = CellChange{Key: change.Key, Old: change.New, New: change.Old}
	}
	return &CellSetPatch{Changes: changes}
}

type CompositePatch struct {
	Parts []Patch
}

func (p *CompositePatch) Kind() PatchKind {
	return PatchComposite
}

func (p *CompositePatch) Inverse() Patch {
	parts := make([]Patch, len(p.Parts))
	last := len(p.Parts) - 1
	for i, part := range p.Parts {
		parts[last-i] = part.Inverse()
	}
	return &CompositePatch{Parts: parts}
}

// Compose flattens nil parts away; a single remaining part is returned as is.
func Compose(parts ...Patch) Patch {
	kept := make([]Patch, 0, len(parts))
	for _, part := range parts {
		if part != nil {
			kept = append(kept, part)
		}
	}

	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &CompositePatch{Parts: kept}
}

package main

import (
	"fmt"
	"tabularDataEditor/contracts"
)

type IndexKey interface {
	contracts.RowKey | contracts.ColumnKey
}

// IndexMap translates visual positions to logical keys. Positions of keys are
// cached lazily and dropped on every mutation.
type IndexMap[K IndexKey] struct {
	keys      []K
	positions map[K]int
}

func NewIndexMap[K IndexKey](keys []K) *IndexMap[K] {
	return &IndexMap[K]{keys: append([]K(nil), keys...)}
}

func (m *IndexMap[K]) Len() int {
	return len(m.keys)
}

func (m *IndexMap[K]) Keys() []K {
	return append([]K(nil), m.keys...)
}

func (m *IndexMap[K]) KeyAt(position int) (K, error) {
	if position < 0 || position >= len(m.keys) {
		var zero K
		return zero, fmt.Errorf("%w: position %d, length %d", contracts.IndexRangeError, position, len(m.keys))
	}
	return m.keys[position], nil
}

// KeysIn returns the keys of [position, position+count) clamped to the map.
func (m *IndexMap[K]) KeysIn(position int, count int) []K {
	position = clamp(position, 0, len(m.keys))
	end := clamp(position+count, position, len(m.keys))
	return append([]K(nil), m.keys[position:end]...)
}

func (m *IndexMap[K]) PositionOf(key K) (int, bool) {
	if m.positions == nil {
		m.positions = make(map[K]int, len(m.keys))
		for position, k := range m.keys {
			m.positions[k] = position
		}
	}

	position, ok := m.positions[key]
	return position, ok
}

func (m *IndexMap[K]) Contains(key K) bool {
	_, ok := m.PositionOf(key)
	return ok
}

// Splice removes removeCount keys at position and inserts the given keys there.
func (m *IndexMap[K]) Splice(position int, removeCount int, inserted []K) (removed []K, err error) {
	if position < 0 || removeCount < 0 || position+removeCount > len(m.keys) {
		return nil, fmt.Errorf(
			"%w: splice at %d removing %d, length %d", contracts.IndexRangeError, position, removeCount, len(m.keys),
		)
	}

	if len(inserted) > 0 {
		outgoing := make(map[K]bool, removeCount)
		for _, key := range m.keys[position : position+removeCount] {
			outgoing[key] = true
		}
		incoming := make(map[K]bool, len(inserted))
		for _, key := range inserted {
			if incoming[key] || (m.Contains(key) && !outgoing[key]) {
				return nil, fmt.Errorf("%w: duplicate key %d", contracts.IndexRangeError, key)
			}
			incoming[key] = true
		}
	}

	removed = append([]K(nil), m.keys[position:position+removeCount]...)

	keys := make([]K, 0, len(m.keys)-removeCount+len(inserted))
	keys = append(keys, m.keys[:position]...)
	keys = append(keys, inserted...)
	keys = append(keys, m.keys[position+removeCount:]...)

	m.keys = keys
	m.positions = nil
	return removed, nil
}

// Move relocates span keys starting at from so that the first of them ends up at to.
func (m *IndexMap[K]) Move(from int, to int, span int) error {
	if span < 0 || to < 0 || to+span > len(m.keys) {
		return fmt.Errorf("%w: move %d keys to %d, length %d", contracts.IndexRangeError, span, to, len(m.keys))
	}

	moved, err := m.Splice(from, span, nil)
	if err != nil {
		return err
	}

	_, err = m.Splice(to, 0, moved)
	return err
}

func clamp(value int, low int, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

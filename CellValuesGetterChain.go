package main

import "tabularDataEditor/contracts"

type ValuesGetter[K comparable] func(keys []K) []*string

type CellKeyValuesGetter = ValuesGetter[contracts.CellKey]

// NewValuesGetterChain asks first, then asks second only for the keys first left nil.
func NewValuesGetterChain[K comparable](first ValuesGetter[K], second ValuesGetter[K]) ValuesGetter[K] {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(keys []K) []*string {
		result := first(keys)

		secondKeys := make([]K, 0, len(keys))
		for index, value := range result {
			if value == nil {
				secondKeys = append(secondKeys, keys[index])
			}
		}

		if len(secondKeys) != 0 {
			secondResult := second(secondKeys)

			searchInSecondKeysIndex := 0
			for index, value := range result {
				if value == nil {
					result[index] = secondResult[searchInSecondKeysIndex]
					searchInSecondKeysIndex++
				}
			}
		}

		return result
	}
}

package main

func NewNamedValuesGetter(vars map[string]*string) ValuesGetter[string] {
	return func(names []string) []*string {
		values := make([]*string, len(names))

		var ok bool
		var value *string
		for index, name := range names {
			if value, ok = vars[name]; ok {
				values[index] = value
			}
		}

		return values
	}
}

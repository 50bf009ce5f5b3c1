package lang

import "log/slog"

// Names returns the distinct defined names in order of first definition.
func (f File) Names() []Identifier {
	names, _ := f.registry()

	return names
}

// register verifies that no name is defined more than once.
func (f File) register() error {
	_, err := f.registry()

	return err
}

// registry builds the ordered name set. The first name defined twice is
// reported with the definition indices of both occurrences.
func (f File) registry() ([]Identifier, error) {
	var (
		names []Identifier
		err   error
		index = make(map[Identifier]int)
	)

	i := 0
	for def := range f.Definitions() {
		first, ok := index[def.Name]

		switch {
		case !ok:
			index[def.Name] = i
			names = append(names, def.Name)

		case err == nil:
			err = ErrDuplicateDefinition.With(
				slog.String("name", string(def.Name)),
				slog.Int("first", first),
				slog.Int("index", i),
			)
		}

		i++
	}

	return names, err
}

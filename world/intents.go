package world

type Intent int

const (
	MoveUp Intent = iota
	MoveDown
)

// Intents is the set of movement intents a paddle holds for one tick.
type Intents map[Intent]struct{}

func IntentsEqual(a, b Intents) bool {
	if len(a) != len(b) {
		return false
	}

	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

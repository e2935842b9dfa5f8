package selection

// State holds selection state. Selected is in selection order.
type State[R any] struct {
	Selected    []R
	LastToggled string // key of the most recently toggled row
}

// Observer receives the full selection after every change
type Observer[R any] func(selected []R)

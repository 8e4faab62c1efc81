package bestfirst

// Frontier is a binary min-heap of priority entries implementing
// heap.Interface. There is no update or delete-by-key operation: superseded
// entries stay in the heap and are filtered lazily on pop by the driver.
type Frontier[S comparable, A any] []Entry[S, A]

func (frontier Frontier[S, A]) Len() int { return len(frontier) }

func (frontier Frontier[S, A]) Less(i, j int) bool {
	a, b := frontier[i], frontier[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return a.Tie < b.Tie
}

func (frontier Frontier[S, A]) Swap(i, j int) {
	frontier[i], frontier[j] = frontier[j], frontier[i]
}

func (frontier *Frontier[S, A]) Push(x any) {
	*frontier = append(*frontier, x.(Entry[S, A]))
}

func (frontier *Frontier[S, A]) Pop() any {
	oldFrontier := *frontier
	n := len(oldFrontier)
	entry := oldFrontier[n-1]
	*frontier = oldFrontier[:n-1]
	return entry
}

package dining

// Fork numbering around the table. Fork i lies between philosopher i (for
// whom it is the left fork) and philosopher i+1 (for whom it is the right).

// Left returns the left fork of philosopher id at a table of n.
func Left(id, n int) int { return id }

// Right returns the right fork of philosopher id at a table of n.
func Right(id, n int) int { return (n + id - 1) % n }

// Forks returns the forks of philosopher id in acquisition order.
// With n == 1 both are the same fork.
func Forks(id, n int) (lower, upper int) {
	l, r := Left(id, n), Right(id, n)
	if l < r {
		return l, r
	}
	return r, l
}

// Sharers returns the two philosophers adjacent to fork f.
func Sharers(f, n int) (int, int) { return f, (f + 1) % n }

// Ring is a table of N seats.
type Ring struct{ N int }

// Forks returns the forks of philosopher id in acquisition order.
func (r Ring) Forks(id int) (lower, upper int) { return Forks(id, r.N) }

// Shared reports whether philosopher id uses a single fork for both hands.
func (r Ring) Shared(id int) bool {
	l, u := r.Forks(id)
	return l == u
}

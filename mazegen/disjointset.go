package mazegen

// disjointSet implements union-find with union by rank and path
// compression over rooms indexed 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet returns n singleton sets.
func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of x's set, compressing the path on the way.
func (d *disjointSet) find(x int) int {
	if d.parent[x] != x {
		d.parent[x] = d.find(d.parent[x])
	}

	return d.parent[x]
}

// union merges the sets of a and b. Reports whether a merge happened,
// i.e. the two rooms were not already connected.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] > d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[ra] = rb
	if d.rank[ra] == d.rank[rb] {
		d.rank[rb]++
	}

	return true
}

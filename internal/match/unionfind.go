package match

// unionFind is a disjoint-set union over n indices with path compression and
// union by rank. The cluster matcher allocates one per Match call and
// discards it with the call; it is never shared.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find returns the representative of x's component, compressing the path on
// the way.
func (u *unionFind) find(x int) int {
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

// union merges the components containing x and y.
func (u *unionFind) union(x, y int) {
	px, py := u.find(x), u.find(y)
	if px == py {
		return
	}
	if u.rank[px] < u.rank[py] {
		px, py = py, px
	}
	u.parent[py] = px
	if u.rank[px] == u.rank[py] {
		u.rank[px]++
	}
}

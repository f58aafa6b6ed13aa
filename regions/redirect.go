package regions

// redirects is the union-find over group ids used by one merge pass.
//
// Contract:
//   • parent[id] == id marks a live root.
//   • union only ever links a root under another root.
//   • find compresses the whole path it walks; flatten points every id
//     straight at its root, so once flatten has run no redirection chain is
//     longer than one hop.
//
// size[root] counts every cell tentatively in the root's set, including cells
// still labeled with a redirected id. It is not used to pick merge winners
// (see Grid.largest); applyRedirects checks it against the size table once the
// pass has moved every cell to its root.
type redirects struct {
	parent []int
	size   []int
}

// newRedirects seeds one singleton set per existing group id.
//
// Parameters:
//   - sizes: the Grid size table; len(sizes) ids are registered.
//
// Complexity: O(len(sizes)).
func newRedirects(sizes []int) *redirects {
	r := &redirects{
		parent: make([]int, len(sizes)),
		size:   make([]int, len(sizes)),
	}
	for id, s := range sizes {
		r.parent[id] = id
		r.size[id] = s
	}
	return r
}

// add registers a new singleton id. It must equal the id just allocated on the Grid.
// Complexity: amortized O(1).
func (r *redirects) add() int {
	id := len(r.parent)
	r.parent = append(r.parent, id)
	r.size = append(r.size, 0)
	return id
}

// find returns the root of x, repointing every id on the path at it.
//
// Contract: x must be a registered id.
// Complexity: O(path length); amortized near-constant with compression.
func (r *redirects) find(x int) int {
	root := x
	for r.parent[root] != root {
		root = r.parent[root]
	}
	for r.parent[x] != root {
		next := r.parent[x]
		r.parent[x] = root
		x = next
	}
	return root
}

// grow counts one more cell in the set rooted at root.
func (r *redirects) grow(root int) {
	r.size[root]++
}

// union redirects root loser to root winner and moves its count.
//
// Contract: winner and loser are distinct roots.
// Complexity: O(1).
func (r *redirects) union(winner, loser int) {
	r.parent[loser] = winner
	r.size[winner] += r.size[loser]
	r.size[loser] = 0
}

// flatten points every id directly at its root.
// Complexity: O(ids).
func (r *redirects) flatten() {
	for x := range r.parent {
		r.parent[x] = r.find(x)
	}
}

// target returns the id x must move to, and false if x is a root.
// Only meaningful after flatten.
func (r *redirects) target(x int) (int, bool) {
	t := r.parent[x]
	return t, t != x
}

// flat reports whether every id is a root or points directly at one.
// Complexity: O(ids).
func (r *redirects) flat() bool {
	for x, p := range r.parent {
		if p != x && r.parent[p] != p {
			return false
		}
	}
	return true
}

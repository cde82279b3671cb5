package analysis

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/mfujimura/kobon/arrangement"
)

// Two configurations with very different coefficients can still be the same
// arrangement topologically. Parameter-space clustering (Distance) misses
// that, so records are also classified by their intersection graph: nodes are
// the crossing points (named by their line pair), edges join crossings that
// are adjacent along a line. A canonical hash of that graph groups
// configurations into topological equivalence classes.

// IntersectionGraph builds the intersection graph of an arrangement. Node IDs
// encode the line pair as i*N+j with i < j.
func IntersectionGraph(ls arrangement.LineSet) *simple.UndirectedGraph {
	n := len(ls)
	tbl := arrangement.Intersections(ls)
	g := simple.NewUndirectedGraph()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if tbl.Valid(i, j) {
				g.AddNode(simple.Node(int64(i*n + j)))
			}
		}
	}

	for li := 0; li < n; li++ {
		type crossing struct {
			id   int64
			proj float64
		}
		var crossings []crossing
		// Project each crossing onto the line's direction vector (b, -a) to
		// order them along the line.
		l := ls[li]
		for other := 0; other < n; other++ {
			if other == li {
				continue
			}
			i, j := li, other
			if j < i {
				i, j = j, i
			}
			if !tbl.Valid(i, j) {
				continue
			}
			p, _ := tbl.At(i, j)
			crossings = append(crossings, crossing{
				id:   int64(i*n + j),
				proj: p.X*l.B - p.Y*l.A,
			})
		}
		sort.Slice(crossings, func(a, b int) bool {
			return crossings[a].proj < crossings[b].proj
		})
		for k := 0; k+1 < len(crossings); k++ {
			u := g.Node(crossings[k].id)
			v := g.Node(crossings[k+1].id)
			if u.ID() != v.ID() {
				g.SetEdge(g.NewEdge(u, v))
			}
		}
	}
	return g
}

// CanonicalHash computes a Weisfeiler-Lehman style hash of the intersection
// graph: node labels start at the degree and are repeatedly replaced by a
// hash of the label together with the sorted neighbor labels. The final
// multiset of labels, hashed once more, is invariant under relabeling of the
// lines, so equal hashes mean (almost certainly) the same topology.
func CanonicalHash(ls arrangement.LineSet) string {
	g := IntersectionGraph(ls)

	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	labels := make(map[int64]uint64, len(ids))
	for _, id := range ids {
		labels[id] = uint64(degree(g, id))
	}

	// len(ids) rounds is more than enough for WL to stabilize; the graphs
	// here have a few dozen nodes.
	rounds := len(ids)
	if rounds > 8 {
		rounds = 8
	}
	for r := 0; r < rounds; r++ {
		next := make(map[int64]uint64, len(ids))
		for _, id := range ids {
			var neigh []uint64
			it := g.From(id)
			for it.Next() {
				neigh = append(neigh, labels[it.Node().ID()])
			}
			sort.Slice(neigh, func(a, b int) bool { return neigh[a] < neigh[b] })
			next[id] = hashLabels(labels[id], neigh)
		}
		labels = next
	}

	final := make([]uint64, 0, len(ids))
	for _, id := range ids {
		final = append(final, labels[id])
	}
	sort.Slice(final, func(a, b int) bool { return final[a] < final[b] })
	return fmt.Sprintf("%016x", hashLabels(uint64(len(ids)), final))
}

func degree(g graph.Graph, id int64) int {
	d := 0
	it := g.From(id)
	for it.Next() {
		d++
	}
	return d
}

func hashLabels(own uint64, neighbors []uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], own)
	h.Write(buf[:])
	for _, n := range neighbors {
		binary.BigEndian.PutUint64(buf[:], n)
		h.Write(buf[:])
	}
	return h.Sum64()
}

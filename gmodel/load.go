package gmodel

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fdsm/bitmatrix"
)

// nameTable assigns a stable, first-seen-order integer id to each string.
type nameTable struct {
	ids   map[string]int
	names []string
}

func newNameTable() *nameTable {
	return &nameTable{ids: make(map[string]int)}
}

func (t *nameTable) idFor(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

func (t *nameTable) lookup(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

func scanEdgeLines(r io.Reader) ([][2]string, error) {
	sc := bufio.NewScanner(r)
	var pairs [][2]string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("gmodel.scanEdgeLines: line %q: %w", line, ErrMalformedEdgeLine)
		}
		pairs = append(pairs, [2]string{fields[0], fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gmodel.scanEdgeLines: %w", err)
	}
	return pairs, nil
}

// LoadBipartite parses whitespace-separated "actor event" edge lines from r
// and builds a canonical bipartite Graph. Actor and event names are assigned
// ids in first-seen order from columns 1 and 2 respectively.
func LoadBipartite(r io.Reader) (*Graph, error) {
	lines, err := scanEdgeLines(r)
	if err != nil {
		return nil, err
	}
	actors, events := newNameTable(), newNameTable()
	pairs := make([][2]int, len(lines))
	for i, ln := range lines {
		pairs[i] = [2]int{actors.idFor(ln[0]), events.idFor(ln[1])}
	}
	return buildBipartite(len(events.names), len(actors.names), pairs)
}

// LoadBipartiteWithNodes is like LoadBipartite but validates every edge's
// endpoints against pre-declared actor/event name lists, returning
// ErrMissingNode for any name absent from its list.
func LoadBipartiteWithNodes(actorNames, eventNames []string, r io.Reader) (*Graph, error) {
	lines, err := scanEdgeLines(r)
	if err != nil {
		return nil, err
	}
	actors, events := newNameTable(), newNameTable()
	for _, n := range actorNames {
		actors.idFor(n)
	}
	for _, n := range eventNames {
		events.idFor(n)
	}
	pairs := make([][2]int, len(lines))
	for i, ln := range lines {
		a, ok := actors.lookup(ln[0])
		if !ok {
			return nil, fmt.Errorf("gmodel.LoadBipartiteWithNodes: actor %q: %w", ln[0], ErrMissingNode)
		}
		v, ok := events.lookup(ln[1])
		if !ok {
			return nil, fmt.Errorf("gmodel.LoadBipartiteWithNodes: event %q: %w", ln[1], ErrMissingNode)
		}
		pairs[i] = [2]int{a, v}
	}
	return buildBipartite(len(events.names), len(actors.names), pairs)
}

// LoadGeneral parses whitespace-separated "node node" edge lines from r and
// builds a canonical general Graph, storing each physical edge twice.
func LoadGeneral(r io.Reader) (*Graph, error) {
	lines, err := scanEdgeLines(r)
	if err != nil {
		return nil, err
	}
	nodes := newNameTable()
	pairs := make([][2]int, len(lines))
	for i, ln := range lines {
		pairs[i] = [2]int{nodes.idFor(ln[0]), nodes.idFor(ln[1])}
	}
	return buildGeneral(len(nodes.names), pairs)
}

// LoadGeneralWithNodes is like LoadGeneral but validates every edge's
// endpoints against a pre-declared node name list.
func LoadGeneralWithNodes(nodeNames []string, r io.Reader) (*Graph, error) {
	lines, err := scanEdgeLines(r)
	if err != nil {
		return nil, err
	}
	nodes := newNameTable()
	for _, n := range nodeNames {
		nodes.idFor(n)
	}
	pairs := make([][2]int, len(lines))
	for i, ln := range lines {
		a, ok := nodes.lookup(ln[0])
		if !ok {
			return nil, fmt.Errorf("gmodel.LoadGeneralWithNodes: node %q: %w", ln[0], ErrMissingNode)
		}
		b, ok := nodes.lookup(ln[1])
		if !ok {
			return nil, fmt.Errorf("gmodel.LoadGeneralWithNodes: node %q: %w", ln[1], ErrMissingNode)
		}
		pairs[i] = [2]int{a, b}
	}
	return buildGeneral(len(nodes.names), pairs)
}

// buildBipartite assembles a canonical Graph from resolved (actor,event) id
// pairs via a two-pass counting-sort CSR construction.
func buildBipartite(nEvents, nActors int, pairs [][2]int) (*Graph, error) {
	if nEvents == 0 || nActors == 0 {
		return nil, fmt.Errorf("gmodel.buildBipartite: empty graph: %w", ErrMalformedEdgeLine)
	}
	degree := make([]int, nActors)
	seen := make(map[[2]int]struct{}, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("gmodel.buildBipartite: actor %d event %d: %w", p[0], p[1], ErrDuplicateEdge)
		}
		seen[p] = struct{}{}
		degree[p[0]]++
	}

	accDeg := make([]int, nActors+1)
	for a := 0; a < nActors; a++ {
		accDeg[a+1] = accDeg[a] + degree[a]
	}
	nEdges := accDeg[nActors]

	adjList := make([]int, nEdges)
	edgeToActor := make([]int, nEdges)
	cursor := make([]int, nActors)
	copy(cursor, accDeg[:nActors])

	matrix, err := bitmatrix.New(nEvents, nActors)
	if err != nil {
		return nil, fmt.Errorf("gmodel.buildBipartite: %w", err)
	}
	for _, p := range pairs {
		a, v := p[0], p[1]
		slot := cursor[a]
		cursor[a]++
		adjList[slot] = v
		edgeToActor[slot] = a
		if err := matrix.Set(v, a); err != nil {
			return nil, fmt.Errorf("gmodel.buildBipartite: %w", err)
		}
	}

	g := &Graph{
		info:        GraphInfo{NEvents: nEvents, NActors: nActors, Bipartite: true},
		matrix:      matrix,
		adjList:     adjList,
		accDeg:      accDeg,
		edgeToActor: edgeToActor,
	}
	if err := g.Canonize(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildGeneral assembles a canonical Graph from resolved node-id pairs,
// storing each physical edge twice (a->b and b->a) with links relating the
// two directions.
func buildGeneral(n int, pairs [][2]int) (*Graph, error) {
	if n == 0 {
		return nil, fmt.Errorf("gmodel.buildGeneral: empty graph: %w", ErrMalformedEdgeLine)
	}
	seen := make(map[[2]int]struct{}, len(pairs))
	degree := make([]int, n)
	for _, p := range pairs {
		a, b := p[0], p[1]
		key := p
		if b < a {
			key = [2]int{b, a}
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("gmodel.buildGeneral: edge %d-%d: %w", a, b, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}
		degree[a]++
		degree[b]++
	}

	accDeg := make([]int, n+1)
	for a := 0; a < n; a++ {
		accDeg[a+1] = accDeg[a] + degree[a]
	}
	nEdges := accDeg[n]

	adjList := make([]int, nEdges)
	edgeToActor := make([]int, nEdges)
	links := make([]int, nEdges)
	cursor := make([]int, n)
	copy(cursor, accDeg[:n])

	matrix, err := bitmatrix.New(n, n)
	if err != nil {
		return nil, fmt.Errorf("gmodel.buildGeneral: %w", err)
	}
	for _, p := range pairs {
		a, b := p[0], p[1]

		slotAB := cursor[a]
		cursor[a]++
		adjList[slotAB] = b
		edgeToActor[slotAB] = a

		slotBA := cursor[b]
		cursor[b]++
		adjList[slotBA] = a
		edgeToActor[slotBA] = b

		links[slotAB] = slotBA
		links[slotBA] = slotAB

		if err := matrix.Set(b, a); err != nil {
			return nil, fmt.Errorf("gmodel.buildGeneral: %w", err)
		}
		if err := matrix.Set(a, b); err != nil {
			return nil, fmt.Errorf("gmodel.buildGeneral: %w", err)
		}
	}
	// General graphs set the main diagonal (a self-loop bit per actor) to
	// simplify swap collision checks: a candidate endpoint equal to the
	// swap's own actor then reads as an existing edge instead of a miss.
	for a := 0; a < n; a++ {
		if err := matrix.Set(a, a); err != nil {
			return nil, fmt.Errorf("gmodel.buildGeneral: %w", err)
		}
	}

	g := &Graph{
		info:        GraphInfo{NEvents: n, NActors: n, Bipartite: false},
		matrix:      matrix,
		adjList:     adjList,
		accDeg:      accDeg,
		edgeToActor: edgeToActor,
		links:       links,
	}
	if err := g.Canonize(); err != nil {
		return nil, err
	}
	return g, nil
}

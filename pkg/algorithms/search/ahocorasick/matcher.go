// Package ahocorasick implements the Aho-Corasick multi-pattern matching
// automaton: a trie of patterns augmented with failure links so the whole
// pattern set is matched in a single linear pass over the haystack.
//
// Nodes form a DAG once failure links are added (every failure link points
// to a strictly shallower node), so the trie is stored as an arena of nodes
// addressed by integer index rather than as a graph of pointers — this
// sidesteps any cyclic-ownership concern entirely and keeps the automaton a
// single contiguous, immutable value that is safe to share and scan
// concurrently once built.
package ahocorasick

const rootIndex = 0

type node struct {
	children map[byte]int32
	fail     int32
	// outputs holds the keywords ending at this node, including those
	// inherited from its failure link, pre-flattened at build time so the
	// scan loop never re-walks the failure chain to collect matches.
	outputs []string
}

// Matcher is an immutable Aho-Corasick automaton over a fixed keyword set.
type Matcher struct {
	nodes []node
}

// New builds a Matcher over keywords, which must already be case-folded by
// the caller; New does not fold case itself. An empty keyword list yields a
// matcher whose Search always returns an empty map.
func New(keywords []string) *Matcher {
	m := &Matcher{nodes: []node{{children: map[byte]int32{}}}}
	if len(keywords) == 0 {
		return m
	}
	m.buildTrie(keywords)
	m.buildFailureLinks()
	return m
}

func (m *Matcher) newNode() int32 {
	m.nodes = append(m.nodes, node{children: map[byte]int32{}})
	return int32(len(m.nodes) - 1)
}

func (m *Matcher) buildTrie(keywords []string) {
	for _, kw := range keywords {
		cur := int32(rootIndex)
		for i := 0; i < len(kw); i++ {
			c := kw[i]
			next, ok := m.nodes[cur].children[c]
			if !ok {
				next = m.newNode()
				m.nodes[cur].children[c] = next
			}
			cur = next
		}
		m.nodes[cur].outputs = append(m.nodes[cur].outputs, kw)
	}
}

// buildFailureLinks runs a BFS over the trie: depth-1 nodes fail to root,
// and every deeper node's failure link is found by following its parent's
// failure chain for a node that already has a child on the same edge byte.
// Each node's output list is extended with its failure link's output list
// as soon as the link is known, so a keyword that is a suffix of another
// keyword is still reported at every occurrence.
func (m *Matcher) buildFailureLinks() {
	queue := make([]int32, 0, len(m.nodes))

	for _, child := range m.nodes[rootIndex].children {
		m.nodes[child].fail = rootIndex
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for c, child := range m.nodes[cur].children {
			fail := m.nodes[cur].fail
			found := int32(-1)
			for {
				if next, ok := m.nodes[fail].children[c]; ok {
					found = next
					break
				}
				if fail == rootIndex {
					break
				}
				fail = m.nodes[fail].fail
			}
			if found >= 0 {
				m.nodes[child].fail = found
			} else {
				m.nodes[child].fail = rootIndex
			}

			m.nodes[child].outputs = append(m.nodes[child].outputs, m.nodes[m.nodes[child].fail].outputs...)
			queue = append(queue, child)
		}
	}
}

// Search scans text in one linear pass and returns every keyword's
// occurrences, each a strictly increasing sequence of start indices. A
// keyword with zero occurrences is absent from the result.
func (m *Matcher) Search(text string) map[string][]int {
	result := make(map[string][]int)
	cur := int32(rootIndex)

	for i := 0; i < len(text); i++ {
		c := text[i]
		for cur != rootIndex {
			if _, ok := m.nodes[cur].children[c]; ok {
				break
			}
			cur = m.nodes[cur].fail
		}
		if next, ok := m.nodes[cur].children[c]; ok {
			cur = next
		} else {
			cur = rootIndex
		}

		for _, kw := range m.nodes[cur].outputs {
			result[kw] = append(result[kw], i-len(kw)+1)
		}
	}
	return result
}

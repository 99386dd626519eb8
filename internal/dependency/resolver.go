package dependency

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycle is returned when the dependency graph contains a cycle.
var ErrCycle = errors.New("dependency cycle detected")

// Graph is a set of workloads and their dependsOn edges.
type Graph struct {
	Nodes []string            // in descriptor order
	Deps  map[string][]string // workload -> workloads it depends on
}

// Resolve orders the graph and returns:
// - ordered: workload names in topological order (dependencies first)
// - tiers: names grouped by depth (tier 0 = no deps, tier 1 = depend only on tier 0, etc.)
// Edges to names outside Nodes are ignored. Within a tier, descriptor order is kept.
func Resolve(g *Graph) (ordered []string, tiers [][]string, err error) {
	if g == nil || len(g.Nodes) == 0 {
		return nil, nil, nil
	}

	nodeSet := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		nodeSet[n] = true
	}

	// dependents[d] = workloads that depend on d
	inDegree := make(map[string]int, len(g.Nodes))
	dependents := make(map[string][]string)
	for _, n := range g.Nodes {
		seen := make(map[string]bool)
		for _, dep := range g.Deps[n] {
			if !nodeSet[dep] || dep == n || seen[dep] {
				continue
			}
			seen[dep] = true
			inDegree[n]++
			dependents[dep] = append(dependents[dep], n)
		}
	}

	var queue []string
	for _, n := range g.Nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	ordered = make([]string, 0, len(g.Nodes))
	for len(queue) > 0 {
		tier := make([]string, len(queue))
		copy(tier, queue)
		tiers = append(tiers, tier)
		ready := make(map[string]bool)
		for _, u := range queue {
			ordered = append(ordered, u)
			for _, v := range dependents[u] {
				inDegree[v]--
				if inDegree[v] == 0 {
					ready[v] = true
				}
			}
		}
		queue = nil
		for _, n := range g.Nodes {
			if ready[n] {
				queue = append(queue, n)
			}
		}
	}

	if len(ordered) != len(g.Nodes) {
		placed := make(map[string]bool, len(ordered))
		for _, n := range ordered {
			placed[n] = true
		}
		var stuck []string
		for _, n := range g.Nodes {
			if !placed[n] {
				stuck = append(stuck, n)
			}
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(stuck, ", "))
	}
	return ordered, tiers, nil
}

// Unknown returns, per workload, the dependencies that name no node in g.
func Unknown(g *Graph) map[string][]string {
	nodeSet := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		nodeSet[n] = true
	}
	out := make(map[string][]string)
	for _, n := range g.Nodes {
		for _, dep := range g.Deps[n] {
			if !nodeSet[dep] {
				out[n] = append(out[n], dep)
			}
		}
	}
	return out
}

package chain

import "fmt"

// Splice compares a freshly-built path against the previous chain
// iteration's path and returns the index in path from which emission
// should resume: every zone shared with previous (by name, from the root)
// except the last shared one is assumed already emitted. The last shared
// zone is re-marked already-in-zone so its key block is skipped but its
// exit block (now pointing further down the new path) still gets written.
func Splice(path, previous []*Zone) (int, error) {
	i := 0
	for i < len(path) && i < len(previous) && path[i].Name == previous[i].Name {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("chain: splice: root zone differs between successive chain builds")
	}

	start := i - 1
	path[start].AlreadyInZone = true
	return start, nil
}

// Package report turns a cost-sorted []kruskal.Partition into user-facing
// output: a console printer and an HTML emitter. Both are consumed
// collaborators driven entirely by the core's output — neither touches the
// enumeration itself.
//
// Print modes:
//
//	0 - silent: no output at all.
//	1 - one representative per distinct cost (see GroupByCost).
//	2 - every enumerated tree.
//
// GroupByCost buckets trees by total cost before printing, preserving
// first-seen order among distinct costs.
package report

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/kthmst/kruskal"
)

// treeView is the JSON-facing projection of a Partition: just the bits a
// front-end visualization needs.
type treeView struct {
	Cost     int64 `json:"cost"`
	MSTEdges []int `json:"mstEdges"`
}

// WriteHTML emits an HTML report by concatenating head, a generated
// JavaScript block, and tail — head/tail template wrapping around a
// generated data block.
//
// The generated block is:
//
//	const vertexCount = <v>;
//	const trees = [...];
//
// where trees is the JSON array of {cost, mstEdges} objects for partitions,
// in the order given (callers wanting cost-grouped output should pre-filter
// via GroupByCost).
func WriteHTML(w io.Writer, vertexCount int, partitions []kruskal.Partition, head, tail []byte) error {
	views := make([]treeView, len(partitions))
	for i, p := range partitions {
		views[i] = treeView{Cost: p.Cost, MSTEdges: p.MSTEdges}
	}

	treesJSON, err := json.Marshal(views)
	if err != nil {
		return err
	}

	if _, err := w.Write(head); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "const vertexCount = %d;\nconst trees = %s;\n", vertexCount, treesJSON); err != nil {
		return err
	}
	if _, err := w.Write(tail); err != nil {
		return err
	}

	return nil
}

package assemble

import (
	"errors"
	"iter"

	"github.com/eak1mov/go-icostiles/tile"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterRecords returns an iterator over the assembled records of names.
// Skipped tiles are left out; iteration panics on fatal errors.
func IterRecords(a *Assembler, names []tile.Name) iter.Seq2[tile.Name, *tile.Record] {
	return func(yield func(tile.Name, *tile.Record) bool) {
		_, err := a.AssembleAll(names, func(record *tile.Record) error {
			if !yield(record.Name, record) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}

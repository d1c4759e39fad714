package tile

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterRecords returns an iterator over all records of the visitor.
// Iteration panics on unrecoverable errors.
func IterRecords(v Visitor) iter.Seq2[Name, *Record] {
	return func(yield func(Name, *Record) bool) {
		err := v.VisitRecords(func(record *Record) error {
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

package zset

import "github.com/cockroachdb/swiss"

// Dict is the membership-map collaborator the façade consumes: it must
// give O(1) average insert/lookup/remove and needs no iteration
// guarantees during mutation. Callers can supply their own
// implementation via NewWithDict, e.g. to shard by member or to reuse an
// existing cache as the backing store.
type Dict[M comparable, S any] interface {
	Get(member M) (S, bool)
	Set(member M, score S)
	Delete(member M)
	Len() int
}

// swissDict is the default Dict, backed by a Swiss-table hash map for
// lower overhead than Go's built-in map on large sets.
type swissDict[M comparable, S any] struct {
	m *swiss.Map[M, S]
}

func newSwissDict[M comparable, S any]() *swissDict[M, S] {
	return &swissDict[M, S]{m: swiss.New[M, S](16)}
}

func (d *swissDict[M, S]) Get(member M) (S, bool) { return d.m.Get(member) }
func (d *swissDict[M, S]) Set(member M, score S)  { d.m.Put(member, score) }
func (d *swissDict[M, S]) Delete(member M)        { d.m.Delete(member) }
func (d *swissDict[M, S]) Len() int               { return d.m.Len() }

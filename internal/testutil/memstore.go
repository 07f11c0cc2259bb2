package testutil

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory docstore.Store for service and handler tests.
//
// Documents are round-tripped through BSON so field names and omitempty
// behave like the real collection. Filters are ignored; every query sees
// the whole collection.
type MemStore[T any] struct {
	mu     sync.Mutex
	docs   []bson.M
	unique []string

	// Err, when set, is returned from every operation.
	Err error
}

// NewMemStore returns an empty store enforcing uniqueness on the given fields.
func NewMemStore[T any](unique ...string) *MemStore[T] {
	return &MemStore[T]{unique: unique}
}

var _ docstore.Store[struct{}] = (*MemStore[struct{}])(nil)

// Len returns the number of stored documents.
func (m *MemStore[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// Raw returns the stored document with id as a bson.M, or nil.
func (m *MemStore[T]) Raw(id primitive.ObjectID) bson.M {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		return m.docs[i]
	}
	return nil
}

func (m *MemStore[T]) Insert(_ context.Context, doc *T) (primitive.ObjectID, error) {
	if m.Err != nil {
		return primitive.NilObjectID, m.Err
	}
	raw, err := toM(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := raw["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		raw["_id"] = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkUnique(raw, id); err != nil {
		return primitive.NilObjectID, err
	}
	m.docs = append(m.docs, raw)
	return id, nil
}

func (m *MemStore[T]) FindPage(_ context.Context, _ bson.M, sortKey string, sortDir int, skip, limit int64) ([]T, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	sorted := append([]bson.M(nil), m.docs...)
	m.mu.Unlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i][sortKey], sorted[j][sortKey])
		if c == 0 {
			c = compare(sorted[i]["_id"], sorted[j]["_id"])
		}
		if sortDir < 0 {
			return c > 0
		}
		return c < 0
	})

	out := make([]T, 0)
	if skip < 0 {
		skip = 0
	}
	if skip >= int64(len(sorted)) {
		return out, nil
	}
	sorted = sorted[skip:]
	if limit > 0 && limit < int64(len(sorted)) {
		sorted = sorted[:limit]
	}
	for _, raw := range sorted {
		var doc T
		if err := fromM(raw, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (m *MemStore[T]) Count(context.Context, bson.M) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(m.Len()), nil
}

func (m *MemStore[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	raw := m.Raw(id)
	if raw == nil {
		return nil, nil
	}
	var doc T
	if err := fromM(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MemStore[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 {
		m.mu.Unlock()
		return nil, nil
	}
	next := bson.M{}
	for k, v := range m.docs[i] {
		next[k] = v
	}
	for k, v := range set {
		next[k] = v
	}
	if err := m.checkUnique(next, id); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.docs[i] = next
	m.mu.Unlock()
	return m.FindByID(ctx, id)
}

func (m *MemStore[T]) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		m.docs = append(m.docs[:i], m.docs[i+1:]...)
	}
	return nil
}

func (m *MemStore[T]) indexOf(id primitive.ObjectID) int {
	for i, d := range m.docs {
		if d["_id"] == id {
			return i
		}
	}
	return -1
}

func (m *MemStore[T]) checkUnique(doc bson.M, self primitive.ObjectID) error {
	for _, field := range m.unique {
		v, ok := doc[field]
		if !ok {
			continue
		}
		for _, other := range m.docs {
			if other["_id"] == self {
				continue
			}
			if other[field] == v {
				return &docstore.ConstraintError{
					Index: field,
					Err:   errors.New("E11000 duplicate key error"),
				}
			}
		}
	}
	return nil
}

func toM(v any) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromM(m bson.M, out any) error {
	b, err := bson.Marshal(m)
	if err != nil {
		return err
	}
	return bson.Unmarshal(b, out)
}

// compare orders the value kinds that appear in sort keys.
func compare(a, b any) int {
	switch x := a.(type) {
	case int64:
		y, _ := b.(int64)
		return cmpOrdered(x, y)
	case int32:
		y, _ := b.(int32)
		return cmpOrdered(x, y)
	case float64:
		y, _ := b.(float64)
		return cmpOrdered(x, y)
	case string:
		y, _ := b.(string)
		return cmpOrdered(x, y)
	case primitive.ObjectID:
		y, _ := b.(primitive.ObjectID)
		return cmpOrdered(x.Hex(), y.Hex())
	case nil:
		if b == nil {
			return 0
		}
		return -1
	default:
		return cmpOrdered(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func cmpOrdered[V int64 | int32 | float64 | string](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

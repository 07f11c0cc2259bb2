// Package docstore is a thin typed wrapper over a MongoDB collection.
//
// Collection[T] gives the service layer the handful of operations it needs
// (insert, paged find, count, get/update/delete by id) and translates
// duplicate-key failures into ErrConstraintViolation so callers never need
// to inspect driver errors.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrConstraintViolation is returned when a write would break a unique index.
var ErrConstraintViolation = errors.New("unique constraint violated")

// ConstraintError carries the index that rejected the write, when the
// server reported it. It matches ErrConstraintViolation under errors.Is.
type ConstraintError struct {
	Index string
	Err   error
}

func (e *ConstraintError) Error() string {
	if e.Index != "" {
		return fmt.Sprintf("%s: %s", ErrConstraintViolation.Error(), e.Index)
	}
	return ErrConstraintViolation.Error()
}

func (e *ConstraintError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConstraintViolation}
	}
	return []error{ErrConstraintViolation, e.Err}
}

var dupIndexRe = regexp.MustCompile(`index: (\S+)`)

func isDup(err error) bool {
	return wafflemongo.IsDup(err) || mongo.IsDuplicateKeyError(err)
}

func constraintErr(err error) error {
	ce := &ConstraintError{Err: err}
	if m := dupIndexRe.FindStringSubmatch(err.Error()); len(m) == 2 {
		ce.Index = m[1]
	}
	return ce
}

// Store is the contract the services depend on. Collection implements it
// against MongoDB; tests substitute an in-memory version.
type Store[T any] interface {
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)
	FindPage(ctx context.Context, filter bson.M, sortKey string, sortDir int, skip, limit int64) ([]T, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// Collection stores documents of type T in one MongoDB collection.
// T must carry an `_id` field tagged `bson:"_id,omitempty"`.
type Collection[T any] struct {
	c *mongo.Collection
}

// New returns a Collection bound to db.<name>.
func New[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{c: db.Collection(name)}
}

// Insert stores doc and returns its id. When doc has no id the server
// assigns one.
func (s *Collection[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		if isDup(err) {
			return primitive.NilObjectID, constraintErr(err)
		}
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", s.c.Name(), res.InsertedID)
	}
	return id, nil
}

// FindPage returns up to limit documents matching filter, ordered by
// sortKey (1 ascending, -1 descending) with _id as tiebreaker, after
// skipping skip documents. The result is never nil.
func (s *Collection[T]) FindPage(ctx context.Context, filter bson.M, sortKey string, sortDir int, skip, limit int64) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if sortDir >= 0 {
		sortDir = 1
	} else {
		sortDir = -1
	}
	sort := bson.D{{Key: sortKey, Value: sortDir}}
	if sortKey != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: sortDir})
	}

	opts := options.Find().SetSort(sort).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of documents matching filter.
func (s *Collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.c.CountDocuments(ctx, filter)
}

// FindByID loads a document by id. Returns (nil, nil) when it does not exist.
func (s *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// UpdateByID applies $set with the given fields and returns the updated
// document, or (nil, nil) when no document has that id. It never upserts.
func (s *Collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var doc T
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if isDup(err) {
			return nil, constraintErr(err)
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes the document with id. Deleting a missing id is not an error.
func (s *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ParseID parses a hex ObjectID. ok is false for malformed input, which
// callers treat the same as a missing document.
func ParseID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

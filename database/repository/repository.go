package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches the requested id.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate key")

// Per-call timeouts.
const (
	SingleTimeout = 5 * time.Second
	ListTimeout   = 10 * time.Second
	IndexTimeout  = 10 * time.Second
)

// NewContext derives a context bounded by timeout from parent.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Store holds the collection-level operations shared by the entity repositories.
// Documents are addressed by their "id" field, not by _id.
type Store struct {
	coll *mongo.Collection
}

// NewStore wraps a collection.
func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// Name returns the collection name.
func (s *Store) Name() string {
	return s.coll.Name()
}

// EnsureIndexes creates the given indexes.
func (s *Store) EnsureIndexes(ctx context.Context, indexModels []mongo.IndexModel) error {
	ctx, cancel := NewContext(ctx, IndexTimeout)
	defer cancel()

	if _, err := s.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", s.Name(), err)
	}
	return nil
}

// Find decodes all documents matching filter into out (a pointer to a slice), newest first.
func (s *Store) Find(ctx context.Context, filter bson.M, out any) error {
	ctx, cancel := NewContext(ctx, ListTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", s.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", s.Name(), err)
	}
	return nil
}

// FindOne decodes the first document matching filter into out.
func (s *Store) FindOne(ctx context.Context, filter bson.M, out any) error {
	ctx, cancel := NewContext(ctx, SingleTimeout)
	defer cancel()

	if err := s.coll.FindOne(ctx, filter).Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch from %s: %w", s.Name(), err)
	}
	return nil
}

// FindByID decodes the document with the given id into out.
func (s *Store) FindByID(ctx context.Context, id string, out any) error {
	if err := s.FindOne(ctx, bson.M{"id": id}, out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%s %s: %w", s.Name(), id, ErrNotFound)
		}
		return err
	}
	return nil
}

// Insert stores a new document.
func (s *Store) Insert(ctx context.Context, doc any) error {
	ctx, cancel := NewContext(ctx, SingleTimeout)
	defer cancel()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return writeError("failed to insert into "+s.Name(), err)
	}
	return nil
}

// SetFields applies a partial $set to the document with the given id and stamps updatedAt.
func (s *Store) SetFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := NewContext(ctx, SingleTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return writeError(fmt.Sprintf("failed to update %s %s", s.Name(), id), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", s.Name(), id, ErrNotFound)
	}
	return nil
}

// DeleteByID removes the document with the given id.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := NewContext(ctx, SingleTimeout)
	defer cancel()

	result, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", s.Name(), id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", s.Name(), id, ErrNotFound)
	}
	return nil
}

// writeError wraps a write failure, marking unique-index violations with ErrDuplicate.
func writeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

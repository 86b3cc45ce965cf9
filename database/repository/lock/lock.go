package lockRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weddingconsole/database/repository"
	"weddingconsole/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrLocked is returned when another request holds the lock.
var ErrLocked = errors.New("lock is held by another request")

// ReleaseFunc releases an acquired lock.
type ReleaseFunc func(ctx context.Context) error

// Locker provides short-lived advisory locks keyed by string.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error)
}

// bookingLock is an advisory lock document. The unique _id makes insertion the
// acquire step; a TTL index removes locks whose holder never released them.
type bookingLock struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
}

// lockCollection is the subset of *mongo.Collection the locker uses.
type lockCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// MongoLocker implements Locker with the bookingLocks collection.
type MongoLocker struct {
	coll lockCollection
	now  func() time.Time
}

// NewMongoLocker creates the locker and its TTL index.
func NewMongoLocker(ctx context.Context, db *mongo.Database) (*MongoLocker, error) {
	coll := db.Collection(models.CollectionBookingLocks)
	store := repository.NewStore(coll)
	err := store.EnsureIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
	})
	if err != nil {
		return nil, err
	}
	return &MongoLocker{coll: coll, now: time.Now}, nil
}

// Acquire inserts the lock document. A live duplicate means the lock is held; an
// expired one the TTL monitor has not yet removed is taken over.
func (l *MongoLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (ReleaseFunc, error) {
	ctx, cancel := repository.NewContext(ctx, repository.SingleTimeout)
	defer cancel()

	// Mongo stores milliseconds; truncate so the release filter matches.
	now := l.now().UTC().Truncate(time.Millisecond)
	lock := bookingLock{ID: key, ExpiresAt: now.Add(ttl), CreatedAt: now}

	_, err := l.coll.InsertOne(ctx, lock)
	if mongo.IsDuplicateKeyError(err) {
		res, rerr := l.coll.ReplaceOne(ctx, takeoverFilter(key, now), lock)
		if rerr != nil {
			return nil, fmt.Errorf("failed to take over expired lock %s: %w", key, rerr)
		}
		if res.MatchedCount == 0 {
			return nil, ErrLocked
		}
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		ctx, cancel := repository.NewContext(ctx, repository.SingleTimeout)
		defer cancel()
		_, err := l.coll.DeleteOne(ctx, bson.M{"_id": key, "createdAt": lock.CreatedAt})
		if err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

// takeoverFilter matches the lock document for key only once it has expired at now.
func takeoverFilter(key string, now time.Time) bson.M {
	return bson.M{"_id": key, "expiresAt": bson.M{"$lt": now}}
}

// BookingKey is the lock key for one venue and date.
func BookingKey(ref models.VenueRef, date string) string {
	return ref.Key() + ":" + ref.ID + ":" + date
}

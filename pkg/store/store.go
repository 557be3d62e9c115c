// Package store persists finished layouts so they can be served again
// without recomputation. The MongoDB backing makes layouts queryable
// across API server restarts, which the cache does not guarantee.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/splitpack/splitpack/pkg/graph"
)

// ErrNotFound indicates no layout exists for the requested hash.
var ErrNotFound = errors.New("layout not found")

const collectionName = "layouts"

// LayoutStore persists laid-out drawings keyed by the content hash of
// their input graph.
type LayoutStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// record is the stored document shape. The graph file embeds directly
// via its bson tags.
type record struct {
	Hash      string     `bson:"_id"`
	File      graph.File `bson:"file"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// NewLayoutStore connects to MongoDB and verifies the connection.
func NewLayoutStore(ctx context.Context, uri, database string) (*LayoutStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &LayoutStore{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

// Save upserts a laid-out drawing under its input hash. Re-running the
// pipeline on the same input overwrites the previous result.
func (s *LayoutStore) Save(ctx context.Context, hash string, file graph.File) error {
	rec := record{Hash: hash, File: file, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": hash},
		rec,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Get retrieves a stored layout by input hash.
func (s *LayoutStore) Get(ctx context.Context, hash string) (graph.File, error) {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": hash}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return graph.File{}, ErrNotFound
	}
	if err != nil {
		return graph.File{}, err
	}
	return rec.File, nil
}

// Delete removes a stored layout. Deleting a missing hash is not an
// error.
func (s *LayoutStore) Delete(ctx context.Context, hash string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": hash})
	return err
}

// Close disconnects from MongoDB.
func (s *LayoutStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

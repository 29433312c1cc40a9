package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DocumentsCollection = "documents"

type document struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Connect opens a client and pings the server before returning it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// DocumentStore keeps each dashboard document as one record keyed by _id.
type DocumentStore struct {
	collection *mongo.Collection
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{collection: db.Collection(DocumentsCollection)}
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var doc document
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	if s.collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	doc := document{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *DocumentStore) Delete(ctx context.Context, keys ...string) error {
	if s.collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if len(keys) == 0 {
		return nil
	}
	_, err := s.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}})
	return err
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

// MongoStore keeps archives in a MongoDB collection, one document per
// archive name. Saves upsert by name so the collection never holds two
// documents for the same archive.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // e.g. mongodb://localhost:27017
	Database   string // defaults to "gridsynth"
	Collection string // defaults to "archives"
}

// mongoEntry is the collection document shape.
type mongoEntry struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Document  []byte    `bson:"document"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (Store, error) {
	if cfg.Database == "" {
		cfg.Database = "gridsynth"
	}
	if cfg.Collection == "" {
		cfg.Collection = "archives"
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Save upserts doc under name and returns the document id.
func (s *MongoStore) Save(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateArchiveName(name); err != nil {
		return "", err
	}

	id := uuid.NewString()
	update := bson.M{
		"$set": bson.M{
			"name":       name,
			"document":   doc,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"_id": id},
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"name": name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("save archive %q: %w", name, err)
	}
	if res.UpsertedID != nil {
		return id, nil
	}

	// Existing document replaced; fetch its id.
	var entry mongoEntry
	if err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&entry); err != nil {
		return "", fmt.Errorf("save archive %q: %w", name, err)
	}
	return entry.ID, nil
}

// Load returns the document stored under name.
func (s *MongoStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateArchiveName(name); err != nil {
		return nil, err
	}

	var entry mongoEntry
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load archive %q: %w", name, err)
	}
	return entry.Document, nil
}

// List returns all entries sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]Entry, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	defer cursor.Close(ctx)

	var out []Entry
	for cursor.Next(ctx) {
		var entry mongoEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("list archives: %w", err)
		}
		out = append(out, Entry{
			ID:        entry.ID,
			Name:      entry.Name,
			Size:      len(entry.Document),
			UpdatedAt: entry.UpdatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	return out, nil
}

// Delete removes the document stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateArchiveName(name); err != nil {
		return err
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete archive %q: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)

package mongostore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

const (
	restaurantsCollection = "restaurants"
	countersCollection    = "counters"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type Store struct {
	log    *logger.Logger
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the deployment with a ping.
func Connect(ctx context.Context, cfg Config, log *logger.Logger) (*Store, error) {
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, fmt.Errorf("missing mongo uri")
	}
	if strings.TrimSpace(cfg.Database) == "" {
		cfg.Database = "restaurants"
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Info("Connected to MongoDB", "database", cfg.Database)
	return &Store{log: log.With("store", "MongoStore"), client: client, db: client.Database(cfg.Database)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) restaurants() *mongo.Collection { return s.db.Collection(restaurantsCollection) }

func (s *Store) counters() *mongo.Collection { return s.db.Collection(countersCollection) }

// EnsureIndexes creates the indexes the adapter relies on. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.restaurants().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "dishes.id", Value: 1}}, Options: options.Index().SetSparse(true)},
	})
	if err != nil {
		return fmt.Errorf("ensure restaurant indexes: %w", err)
	}
	return nil
}

// nextIDs reserves n consecutive ids from the named sequence and returns the first.
func (s *Store) nextIDs(ctx context.Context, sequence string, n int) (uint64, error) {
	if n <= 0 {
		return 0, nil
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var doc counterDocument
	err := s.counters().FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"seq": n}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("reserve %s ids: %w", sequence, err)
	}
	return doc.Seq - uint64(n) + 1, nil
}

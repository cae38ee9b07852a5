package airport

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads airport documents shaped like the static file records
// from a collection.
type MongoSource struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewMongoSource(ctx context.Context, uri, database, collection string) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		//nolint:errcheck // already failing
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoSource{client: client, database: database, collection: collection}, nil
}

func (m *MongoSource) Name() string {
	return "mongo"
}

func (m *MongoSource) Airports(ctx context.Context) ([]entity.Airport, error) {
	coll := m.client.Database(m.database).Collection(m.collection)

	cursor, err := coll.Find(ctx, bson.D{}, findAirports())
	if err != nil {
		return nil, fmt.Errorf("mongo find airports: %w", err)
	}
	defer cursor.Close(ctx)

	airports := make([]entity.Airport, 0)
	for cursor.Next(ctx) {
		var a entity.Airport
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("mongo decode airport: %w", err)
		}
		airports = append(airports, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo iterate airports: %w", err)
	}

	return airports, nil
}

func (m *MongoSource) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// findAirports reads in insertion order, so lookups by city or country
// return airports in the order the document was imported.
func findAirports() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

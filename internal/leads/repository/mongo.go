package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	leadserrors "radar/internal/leads/errors"
	"radar/internal/leads/normalizer"
)

type mongoSource struct {
	collection  *mongo.Collection
	readTimeout time.Duration
}

// NewMongoSource reads leads from a collection whose documents use the
// spreadsheet column names as field names.
func NewMongoSource(client *mongo.Client, database, collection string, readTimeout time.Duration) LeadSource {
	return &mongoSource{
		collection:  client.Database(database).Collection(collection),
		readTimeout: readTimeout,
	}
}

func (s *mongoSource) Name() string {
	return "mongo:" + s.collection.Database().Name() + "." + s.collection.Name()
}

func (s *mongoSource) Load(ctx context.Context) ([]normalizer.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", leadserrors.ErrSourceUnreadable, s.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", leadserrors.ErrSourceUnreadable, s.Name(), err)
	}

	return rowsFromDocuments(docs), nil
}

func rowsFromDocuments(docs []bson.M) []normalizer.Row {
	rows := make([]normalizer.Row, 0, len(docs))
	for _, doc := range docs {
		row := make(normalizer.Row, len(doc))
		for k, v := range doc {
			if k == "_id" {
				continue
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows
}

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mlecomte/urbanstyle/internal/entity"
)

const (
	contentCollection = "content"
	contentKey        = "site_content"
)

// ContentMongoStore guarda o documento de conteúdo como um único registro
// {key: "site_content", data: <documento>, updatedAt}.
type ContentMongoStore struct {
	Collection *mongo.Collection
}

func NewContentMongoStore(db *MongoDB) *ContentMongoStore {
	return &ContentMongoStore{Collection: db.Database.Collection(contentCollection)}
}

type contentDocument struct {
	Key       string             `bson:"key"`
	Data      entity.SiteContent `bson:"data"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// GetAll devolve entity.ErrNoDocument quando a coleção ainda não foi semeada,
// para o store de fallback distinguir "vazio" de "indisponível".
func (s *ContentMongoStore) GetAll(ctx context.Context) (entity.SiteContent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc contentDocument
	err := s.Collection.FindOne(ctx, bson.M{"key": contentKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read content document: %w", err)
	}
	return doc.Data, nil
}

func (s *ContentMongoStore) Replace(ctx context.Context, content entity.SiteContent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"data": content, "updatedAt": time.Now()}}
	opts := options.Update().SetUpsert(true)

	if _, err := s.Collection.UpdateOne(ctx, bson.M{"key": contentKey}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert content document: %w", err)
	}
	return nil
}

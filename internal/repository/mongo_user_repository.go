package repository

import (
	"context"
	"fmt"

	"github.com/MSSkowron/registrar/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

// MongoUserRepository implements the UserRepository interface on a MongoDB collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository writing to the provided collection.
func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{
		collection: collection,
	}
}

func (ur *MongoUserRepository) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Username: user.Username,
		Password: user.Password,
	}

	if _, err := ur.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	return &model.User{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
		Password: doc.Password,
	}, nil
}

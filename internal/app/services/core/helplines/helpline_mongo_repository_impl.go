package helplines

import (
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HelplineMongoRepository struct {
	Collection *mongo.Collection
}

func NewHelplineMongoRepository(db *mongo.Client, dbName string) contracts.HelplineRepository {
	return &HelplineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHelplines),
	}
}

func (r *HelplineMongoRepository) CreateHelpline(ctx context.Context, helpline *models.Helpline) (string, error) {
	result, err := r.Collection.InsertOne(ctx, helpline)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HelplineMongoRepository) FindAll(ctx context.Context) ([]models.Helpline, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	helplines := make([]models.Helpline, 0)
	if err := cursor.All(ctx, &helplines); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return helplines, nil
}

func (r *HelplineMongoRepository) FindByID(ctx context.Context, helplineID string) (*models.Helpline, error) {
	objectID, err := primitive.ObjectIDFromHex(helplineID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var helpline models.Helpline
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&helpline)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &helpline, nil
}

func (r *HelplineMongoRepository) UpdateHelpline(ctx context.Context, helpline *models.Helpline) error {
	objectID, err := primitive.ObjectIDFromHex(helpline.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":        helpline.Name,
		"description": helpline.Description,
		"contact":     helpline.Contact,
		"updatedAt":   helpline.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HelplineMongoRepository) DeleteByID(ctx context.Context, helplineID string) error {
	objectID, err := primitive.ObjectIDFromHex(helplineID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

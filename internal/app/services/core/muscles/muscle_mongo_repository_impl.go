package muscles

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

type MuscleMongoRepository struct {
	Collection *mongo.Collection
}

func NewMuscleMongoRepository(db *mongo.Client, dbName string) contracts.MuscleRepository {
	return &MuscleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMuscles),
	}
}

func (r *MuscleMongoRepository) CreateMuscle(ctx context.Context, muscle *models.Muscle) (string, error) {
	result, err := r.Collection.InsertOne(ctx, muscle)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MuscleMongoRepository) FindAll(ctx context.Context) ([]models.Muscle, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	muscles := make([]models.Muscle, 0)
	if err := cursor.All(ctx, &muscles); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return muscles, nil
}

func (r *MuscleMongoRepository) FindByID(ctx context.Context, muscleID string) (*models.Muscle, error) {
	objectID, err := primitive.ObjectIDFromHex(muscleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *MuscleMongoRepository) FindByName(ctx context.Context, name string) (*models.Muscle, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MuscleMongoRepository) UpdateMuscle(ctx context.Context, muscle *models.Muscle) error {
	objectID, err := primitive.ObjectIDFromHex(muscle.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":        muscle.Name,
		"description": muscle.Description,
		"updatedAt":   muscle.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MuscleMongoRepository) DeleteByID(ctx context.Context, muscleID string) error {
	objectID, err := primitive.ObjectIDFromHex(muscleID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *MuscleMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Muscle, error) {
	var muscle models.Muscle
	err := r.Collection.FindOne(ctx, filter).Decode(&muscle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &muscle, nil
}

package exercises

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

type ExerciseMongoRepository struct {
	Collection *mongo.Collection
}

func NewExerciseMongoRepository(db *mongo.Client, dbName string) contracts.ExerciseRepository {
	return &ExerciseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionExercises),
	}
}

func (r *ExerciseMongoRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) (string, error) {
	result, err := r.Collection.InsertOne(ctx, exercise)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ExerciseMongoRepository) FindAll(ctx context.Context, muscleID string) ([]models.Exercise, error) {
	filter := bson.M{}
	if muscleID != "" {
		filter["muscleIds"] = muscleID
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	exercises := make([]models.Exercise, 0)
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return exercises, nil
}

func (r *ExerciseMongoRepository) FindByID(ctx context.Context, exerciseID string) (*models.Exercise, error) {
	objectID, err := primitive.ObjectIDFromHex(exerciseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var exercise models.Exercise
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&exercise)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &exercise, nil
}

func (r *ExerciseMongoRepository) UpdateExercise(ctx context.Context, exercise *models.Exercise) error {
	objectID, err := primitive.ObjectIDFromHex(exercise.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":        exercise.Name,
		"description": exercise.Description,
		"muscleIds":   exercise.MuscleIDs,
		"difficulty":  exercise.Difficulty,
		"equipment":   exercise.Equipment,
		"updatedAt":   exercise.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ExerciseMongoRepository) DeleteByID(ctx context.Context, exerciseID string) error {
	objectID, err := primitive.ObjectIDFromHex(exerciseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

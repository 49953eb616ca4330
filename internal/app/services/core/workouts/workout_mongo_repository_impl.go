package workouts

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

type WorkoutMongoRepository struct {
	Collection *mongo.Collection
}

func NewWorkoutMongoRepository(db *mongo.Client, dbName string) contracts.WorkoutRepository {
	return &WorkoutMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWorkouts),
	}
}

func (r *WorkoutMongoRepository) CreateWorkout(ctx context.Context, workout *models.Workout) (string, error) {
	result, err := r.Collection.InsertOne(ctx, workout)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *WorkoutMongoRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	workouts := make([]models.Workout, 0)
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return workouts, nil
}

func (r *WorkoutMongoRepository) FindByIDAndUserID(ctx context.Context, workoutID, userID string) (*models.Workout, error) {
	objectID, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var workout models.Workout
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&workout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &workout, nil
}

func (r *WorkoutMongoRepository) UpdateWorkout(ctx context.Context, workout *models.Workout) error {
	objectID, err := primitive.ObjectIDFromHex(workout.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":      workout.Name,
		"notes":     workout.Notes,
		"entries":   workout.Entries,
		"updatedAt": workout.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "userId": workout.UserID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *WorkoutMongoRepository) DeleteByIDAndUserID(ctx context.Context, workoutID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

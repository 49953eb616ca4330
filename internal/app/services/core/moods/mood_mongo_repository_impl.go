package moods

import (
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/app/models"
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodMongoRepository struct {
	Collection *mongo.Collection
}

func NewMoodMongoRepository(db *mongo.Client, dbName string) contracts.MoodRepository {
	return &MoodMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMoods),
	}
}

func (r *MoodMongoRepository) CreateMood(ctx context.Context, mood *models.Mood) (string, error) {
	result, err := r.Collection.InsertOne(ctx, mood)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MoodMongoRepository) FindAllByUserID(ctx context.Context, userID string, from, to *time.Time) ([]models.Mood, error) {
	filter := bson.M{"userId": userID}

	createdAt := bson.M{}
	if from != nil {
		createdAt["$gte"] = *from
	}
	if to != nil {
		createdAt["$lte"] = *to
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	moods := make([]models.Mood, 0)
	if err := cursor.All(ctx, &moods); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return moods, nil
}

func (r *MoodMongoRepository) FindByIDAndUserID(ctx context.Context, moodID, userID string) (*models.Mood, error) {
	objectID, err := primitive.ObjectIDFromHex(moodID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var mood models.Mood
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&mood)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &mood, nil
}

func (r *MoodMongoRepository) UpdateMood(ctx context.Context, mood *models.Mood) error {
	objectID, err := primitive.ObjectIDFromHex(mood.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"scale":     mood.Scale,
		"note":      mood.Note,
		"tags":      mood.Tags,
		"updatedAt": mood.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "userId": mood.UserID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MoodMongoRepository) DeleteByIDAndUserID(ctx context.Context, moodID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(moodID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

package penpals

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

// PenpalMongoRepository keeps all friendship edges in a single relations
// collection and all chat messages in a single messages collection, both
// keyed by the two usernames involved.
type PenpalMongoRepository struct {
	Relations *mongo.Collection
	Messages  *mongo.Collection
}

func NewPenpalMongoRepository(db *mongo.Client, dbName string) contracts.PenpalRepository {
	database := db.Database(dbName)
	return &PenpalMongoRepository{
		Relations: database.Collection(constvars.MongoCollectionPenpalRelations),
		Messages:  database.Collection(constvars.MongoCollectionPenpalMessages),
	}
}

func (r *PenpalMongoRepository) CreateRelation(ctx context.Context, relation *models.PenpalRelation) (string, error) {
	result, err := r.Relations.InsertOne(ctx, relation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PenpalMongoRepository) FindRelationBetween(ctx context.Context, userA, userB string) (*models.PenpalRelation, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"requester": userA, "recipient": userB},
		bson.M{"requester": userB, "recipient": userA},
	}}

	var relation models.PenpalRelation
	err := r.Relations.FindOne(ctx, filter).Decode(&relation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &relation, nil
}

func (r *PenpalMongoRepository) FindRelationByID(ctx context.Context, relationID string) (*models.PenpalRelation, error) {
	objectID, err := primitive.ObjectIDFromHex(relationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var relation models.PenpalRelation
	err = r.Relations.FindOne(ctx, bson.M{"_id": objectID}).Decode(&relation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &relation, nil
}

func (r *PenpalMongoRepository) FindPendingByRecipient(ctx context.Context, recipient string) ([]models.PenpalRelation, error) {
	filter := bson.M{"recipient": recipient, "status": constvars.PenpalRelationPending}
	return r.findRelations(ctx, filter, bson.D{{Key: "sentAt", Value: -1}})
}

func (r *PenpalMongoRepository) FindFriendsOf(ctx context.Context, username string) ([]models.PenpalRelation, error) {
	filter := bson.M{
		"status": constvars.PenpalRelationAccepted,
		"$or": bson.A{
			bson.M{"requester": username},
			bson.M{"recipient": username},
		},
	}
	return r.findRelations(ctx, filter, bson.D{{Key: "answerAt", Value: -1}})
}

func (r *PenpalMongoRepository) UpdateRelationStatus(ctx context.Context, relationID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(relationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":   status,
		"answerAt": now,
	}}

	_, err = r.Relations.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PenpalMongoRepository) DeleteRelationBetween(ctx context.Context, userA, userB string) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"requester": userA, "recipient": userB},
		bson.M{"requester": userB, "recipient": userA},
	}}

	_, err := r.Relations.DeleteOne(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *PenpalMongoRepository) CreateMessage(ctx context.Context, message *models.PenpalMessage) (string, error) {
	result, err := r.Messages.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PenpalMongoRepository) FindConversation(ctx context.Context, userA, userB string) ([]models.PenpalMessage, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": userA, "recipient": userB},
		bson.M{"sender": userB, "recipient": userA},
	}}

	findOptions := options.Find().SetSort(bson.D{{Key: "sentAt", Value: 1}})
	cursor, err := r.Messages.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	messages := make([]models.PenpalMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *PenpalMongoRepository) findRelations(ctx context.Context, filter bson.M, sort bson.D) ([]models.PenpalRelation, error) {
	cursor, err := r.Relations.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	relations := make([]models.PenpalRelation, 0)
	if err := cursor.All(ctx, &relations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return relations, nil
}

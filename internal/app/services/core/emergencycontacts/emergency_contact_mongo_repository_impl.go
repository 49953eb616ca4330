package emergencycontacts

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

type EmergencyContactMongoRepository struct {
	Collection *mongo.Collection
}

func NewEmergencyContactMongoRepository(db *mongo.Client, dbName string) contracts.EmergencyContactRepository {
	return &EmergencyContactMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEmergencyContacts),
	}
}

func (r *EmergencyContactMongoRepository) CreateContact(ctx context.Context, contact *models.EmergencyContact) (string, error) {
	result, err := r.Collection.InsertOne(ctx, contact)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *EmergencyContactMongoRepository) FindAllByUserID(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	contacts := make([]models.EmergencyContact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return contacts, nil
}

func (r *EmergencyContactMongoRepository) FindByIDAndUserID(ctx context.Context, contactID, userID string) (*models.EmergencyContact, error) {
	objectID, err := primitive.ObjectIDFromHex(contactID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var contact models.EmergencyContact
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "userId": userID}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &contact, nil
}

func (r *EmergencyContactMongoRepository) UpdateContact(ctx context.Context, contact *models.EmergencyContact) error {
	objectID, err := primitive.ObjectIDFromHex(contact.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":         contact.Name,
		"relationship": contact.Relationship,
		"phoneNumber":  contact.PhoneNumber,
		"email":        contact.Email,
		"updatedAt":    contact.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "userId": contact.UserID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *EmergencyContactMongoRepository) DeleteByIDAndUserID(ctx context.Context, contactID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(contactID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

package recordsRepo

import (
	"context"

	"tripgenius/database"
	"tripgenius/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TripRecordRepository persists confirmed bookings and generated itineraries.
type TripRecordRepository interface {
	Create(ctx context.Context, record models.TripRecord) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.TripRecord, error)
	Recent(ctx context.Context, limit int64) ([]models.TripRecord, error)
}

type mongoTripRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRecordRepo returns a new TripRecordRepository instance using MongoDB.
func NewMongoTripRecordRepo() TripRecordRepository {
	db := database.MongoClient.Database("tripgenius")
	return &mongoTripRecordRepo{
		coll: db.Collection("trip_records"),
	}
}

package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type patientMongoRepository struct {
	Collection *mongo.Collection
	Counters   *mongo.Collection
	Log        *zap.Logger
}

type sequenceCounter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

func NewPatientMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.PatientRepository {
	return &patientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPatients),
		Counters:   db.Collection(constvars.MongoCollectionCounters),
		Log:        logger,
	}
}

// Save assigns the next id from the counters collection before inserting.
func (repo *patientMongoRepository) Save(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	id, err := repo.nextID(ctx)
	if err != nil {
		return nil, err
	}

	saved := *patient
	saved.ID = id
	_, err = repo.Collection.InsertOne(ctx, saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return &saved, nil
}

func (repo *patientMongoRepository) Update(ctx context.Context, patient *models.Patient) (bool, error) {
	filter := bson.M{"_id": patient.ID}
	update := bson.M{"$set": bson.M{
		"name":       patient.Name,
		"first_name": patient.FirstName,
		"birth_date": patient.BirthDate,
		"contact":    patient.Contact,
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *patientMongoRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	// birth dates are stored at midnight UTC
	patient.BirthDate = patient.BirthDate.UTC()
	return &patient, nil
}

func (repo *patientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for i := range patients {
		patients[i].BirthDate = patients[i].BirthDate.UTC()
	}
	return patients, nil
}

func (repo *patientMongoRepository) DeleteByID(ctx context.Context, patientID int64) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": patientID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (repo *patientMongoRepository) nextID(ctx context.Context) (int64, error) {
	var counter sequenceCounter
	err := repo.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": constvars.MongoCollectionPatients},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		repo.Log.Error("patientMongoRepository.nextID error calling Counters.FindOneAndUpdate",
			zap.Error(err),
		)
		return 0, exceptions.ErrMongoDBGenerateSequence(err, constvars.MongoCollectionPatients)
	}
	return counter.Seq, nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/companieshouse/chs.go/log"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no database connection
	// so the service must crash here as it cannot continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// NewGetMongoDatabase returns a handle to the database used by this service
func NewGetMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface backed by MongoDB
type MongoService struct {
	db                       MongoDatabaseInterface
	PaymentsCollection       string
	PaymentMethodsCollection string
	UsersCollection          string
}

// NewMongoService constructs a MongoService using the supplied config
func NewMongoService(cfg *config.Config) *MongoService {
	return &MongoService{
		db:                       NewGetMongoDatabase(cfg.MongoDBURL, cfg.Database),
		PaymentsCollection:       cfg.PaymentsCollection,
		PaymentMethodsCollection: cfg.PaymentMethodsCollection,
		UsersCollection:          cfg.UsersCollection,
	}
}

// EnsureIndexes creates the indexes the list queries rely on. Index creation
// is idempotent so this is safe to run on every startup.
func (m *MongoService) EnsureIndexes() error {
	collection := m.db.Collection(m.PaymentsCollection)
	_, err := collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "agreement_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}

// CreatePaymentResource writes a new payment resource to the DB
func (m *MongoService) CreatePaymentResource(paymentResource *models.PaymentResourceDB) error {
	collection := m.db.Collection(m.PaymentsCollection)
	_, err := collection.InsertOne(context.Background(), paymentResource)

	return err
}

// GetPaymentResource gets a payment resource from the DB
// If the payment is not found, nil is returned
func (m *MongoService) GetPaymentResource(id string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.db.Collection(m.PaymentsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetPaymentResourceForUser gets a payment resource owned by the given user
// from the DB. If no such payment exists for that user, nil is returned.
func (m *MongoService) GetPaymentResourceForUser(id, userID string) (*models.PaymentResourceDB, error) {
	var resource models.PaymentResourceDB

	collection := m.db.Collection(m.PaymentsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id, "user_id": userID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetPaymentResources gets payment resources matching all the supplied
// filters, ordered most recent first
func (m *MongoService) GetPaymentResources(filters models.PaymentFilters) ([]models.PaymentResourceDB, error) {
	query := bson.M{}
	if filters.UserID != "" {
		query["user_id"] = filters.UserID
	}
	if filters.AgreementID != "" {
		query["agreement_id"] = filters.AgreementID
	}
	if filters.Status != "" {
		query["status"] = filters.Status
	}
	if filters.PaymentMethodID != "" {
		query["payment_method_id"] = filters.PaymentMethodID
	}

	createdAt := bson.M{}
	if !filters.StartDate.IsZero() {
		createdAt["$gte"] = filters.StartDate
	}
	if !filters.EndDate.IsZero() {
		createdAt["$lte"] = filters.EndDate
	}
	if len(createdAt) > 0 {
		query["created_at"] = createdAt
	}

	collection := m.db.Collection(m.PaymentsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(context.Background(), query, opts)
	if err != nil {
		return nil, err
	}

	payments := []models.PaymentResourceDB{}
	err = cursor.All(context.Background(), &payments)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// CommitRefund applies a refund to a payment resource. The update is
// conditional on the refunded amount still holding the value read before the
// gateway refund was made; a concurrent refund that committed first changes
// that value and this write then matches nothing. The first return value
// reports whether the update was applied.
func (m *MongoService) CommitRefund(id, expectedRefundedAmount string, update *models.RefundUpdateDB) (bool, error) {
	collection := m.db.Collection(m.PaymentsCollection)

	filter := bson.M{
		"_id":             id,
		"refunded_amount": expectedRefundedAmount,
	}

	updateCall := bson.M{
		"$set": bson.M{
			"refunded_amount": update.RefundedAmount,
			"status":          update.Status,
			"refund_reason":   update.RefundReason,
			"updated_at":      update.UpdatedAt,
		},
		"$push": bson.M{
			"reconciliation.refund_ids": update.RefundID,
		},
	}

	result, err := collection.UpdateOne(context.Background(), filter, updateCall)
	if err != nil {
		return false, err
	}

	return result.MatchedCount == 1, nil
}

// CreatePaymentMethodResource writes a new payment method resource to the DB
func (m *MongoService) CreatePaymentMethodResource(methodResource *models.PaymentMethodResourceDB) error {
	collection := m.db.Collection(m.PaymentMethodsCollection)
	_, err := collection.InsertOne(context.Background(), methodResource)

	return err
}

// GetPaymentMethodResource gets a payment method owned by the given user from
// the DB. If no such method exists for that user, nil is returned.
func (m *MongoService) GetPaymentMethodResource(id, userID string) (*models.PaymentMethodResourceDB, error) {
	var resource models.PaymentMethodResourceDB

	collection := m.db.Collection(m.PaymentMethodsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id, "user_id": userID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetUserResource gets a user from the DB. If the user is not found, nil is returned.
func (m *MongoService) GetUserResource(id string) (*models.UserResourceDB, error) {
	var resource models.UserResourceDB

	collection := m.db.Collection(m.UsersCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

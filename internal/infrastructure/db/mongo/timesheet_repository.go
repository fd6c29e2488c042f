package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizportal/portal-api/internal/core/domain"
)

const collectionTimesheets = "timesheets"

// TimesheetRepository implements ports.TimesheetRepository using MongoDB.
type TimesheetRepository struct {
	col *mongo.Collection
}

func NewTimesheetRepository(db *mongo.Database) *TimesheetRepository {
	return &TimesheetRepository{col: db.Collection(collectionTimesheets)}
}

type hoursDoc struct {
	Monday    int `bson:"monday"`
	Tuesday   int `bson:"tuesday"`
	Wednesday int `bson:"wednesday"`
	Thursday  int `bson:"thursday"`
	Friday    int `bson:"friday"`
	Saturday  int `bson:"saturday"`
	Sunday    int `bson:"sunday"`
}

type timesheetDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Employee  primitive.ObjectID `bson:"employee"`
	Project   primitive.ObjectID `bson:"project"`
	Manager   primitive.ObjectID `bson:"manager,omitempty"`
	Week      time.Time          `bson:"week"`
	Hours     hoursDoc           `bson:"hours"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func toHoursDoc(h domain.Hours) hoursDoc {
	return hoursDoc(h)
}

func (d timesheetDoc) toDomain() *domain.Timesheet {
	status := domain.TimesheetStatus(d.Status)
	if status == "" {
		status = domain.TimesheetSubmitted
	}
	return &domain.Timesheet{
		ID:         d.ID.Hex(),
		EmployeeID: hexOrEmpty(d.Employee),
		ProjectID:  hexOrEmpty(d.Project),
		ManagerID:  hexOrEmpty(d.Manager),
		Week:       d.Week,
		Hours:      domain.Hours(d.Hours),
		Status:     status,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *TimesheetRepository) Create(ctx context.Context, t *domain.Timesheet) error {
	employee, err := primitive.ObjectIDFromHex(t.EmployeeID)
	if err != nil {
		return fmt.Errorf("insert timesheet: employee: %w", err)
	}
	project, err := primitive.ObjectIDFromHex(t.ProjectID)
	if err != nil {
		return fmt.Errorf("insert timesheet: project: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := timesheetDoc{
		Employee:  employee,
		Project:   project,
		Manager:   optionalObjectID(t.ManagerID),
		Week:      t.Week,
		Hours:     toHoursDoc(t.Hours),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert timesheet: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}
	return nil
}

func (r *TimesheetRepository) FindByID(ctx context.Context, id string) (*domain.Timesheet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTimesheetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc timesheetDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimesheetNotFound
		}
		return nil, fmt.Errorf("find timesheet: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns timesheets newest week first, scoped to employeeID when set.
func (r *TimesheetRepository) List(ctx context.Context, employeeID string) ([]*domain.Timesheet, error) {
	filter := bson.M{}
	if employeeID != "" {
		oid, err := primitive.ObjectIDFromHex(employeeID)
		if err != nil {
			return []*domain.Timesheet{}, nil
		}
		filter["employee"] = oid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "week", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find timesheets: %w", err)
	}
	var docs []timesheetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode timesheets: %w", err)
	}

	sheets := make([]*domain.Timesheet, 0, len(docs))
	for _, d := range docs {
		sheets = append(sheets, d.toDomain())
	}
	return sheets, nil
}

// UpdateHours applies the edit only while the stored status is not approved,
// so an approval racing with the edit always wins.
func (r *TimesheetRepository) UpdateHours(ctx context.Context, id, employeeID string, hours domain.Hours, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTimesheetNotFound
	}
	owner, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return domain.ErrTimesheetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":      oid,
		"employee": owner,
		"status":   bson.M{"$ne": string(domain.TimesheetApproved)},
	}
	update := bson.M{"$set": bson.M{
		"hours":     toHoursDoc(hours),
		"status":    string(domain.TimesheetSubmitted),
		"updatedAt": at,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update timesheet hours: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	return r.missOrState(ctx, bson.M{"_id": oid, "employee": owner})
}

// UpdateStatus is a compare-and-set on the status field.
func (r *TimesheetRepository) UpdateStatus(ctx context.Context, id string, from, to domain.TimesheetStatus, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTimesheetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(to), "updatedAt": at}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update timesheet status: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	return r.missOrState(ctx, bson.M{"_id": oid})
}

// missOrState explains a conditional update that matched nothing.
func (r *TimesheetRepository) missOrState(ctx context.Context, filter bson.M) error {
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("check timesheet: %w", err)
	}
	if n == 0 {
		return domain.ErrTimesheetNotFound
	}
	return domain.ErrInvalidState
}

// EnsureIndexes creates the owner/week index used by the employee list.
func (r *TimesheetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee", Value: 1}, {Key: "week", Value: -1}}},
		{Keys: bson.D{{Key: "project", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

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
	"github.com/bizportal/portal-api/internal/core/ports"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type assignmentDoc struct {
	Employee primitive.ObjectID `bson:"employee"`
	Role     string             `bson:"role"`
}

type milestoneDoc struct {
	Name    string    `bson:"name"`
	DueDate time.Time `bson:"dueDate,omitempty"`
	Status  string    `bson:"status"`
}

type timelineDoc struct {
	StartDate  time.Time      `bson:"startDate"`
	EndDate    time.Time      `bson:"endDate"`
	Milestones []milestoneDoc `bson:"milestones"`
}

type projectDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Description       string             `bson:"description"`
	Client            primitive.ObjectID `bson:"client"`
	AssignedEmployees []assignmentDoc    `bson:"assignedEmployees"`
	Timeline          timelineDoc        `bson:"timeline"`
	Status            string             `bson:"status"`
	Budget            float64            `bson:"budget"`
	Priority          string             `bson:"priority"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func toProjectDoc(p *domain.Project) projectDoc {
	doc := projectDoc{
		Name:              p.Name,
		Description:       p.Description,
		Client:            optionalObjectID(p.ClientID),
		AssignedEmployees: make([]assignmentDoc, 0, len(p.AssignedEmployees)),
		Timeline: timelineDoc{
			StartDate:  p.Timeline.StartDate,
			EndDate:    p.Timeline.EndDate,
			Milestones: make([]milestoneDoc, 0, len(p.Timeline.Milestones)),
		},
		Status:    string(p.Status),
		Budget:    p.Budget,
		Priority:  string(p.Priority),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, a := range p.AssignedEmployees {
		oid, err := primitive.ObjectIDFromHex(a.EmployeeID)
		if err != nil {
			continue
		}
		doc.AssignedEmployees = append(doc.AssignedEmployees, assignmentDoc{Employee: oid, Role: string(a.Role)})
	}
	for _, m := range p.Timeline.Milestones {
		doc.Timeline.Milestones = append(doc.Timeline.Milestones, milestoneDoc{Name: m.Name, DueDate: m.DueDate, Status: string(m.Status)})
	}
	return doc
}

func (d projectDoc) toDomain() *domain.Project {
	p := &domain.Project{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Description:       d.Description,
		ClientID:          hexOrEmpty(d.Client),
		AssignedEmployees: make([]domain.Assignment, 0, len(d.AssignedEmployees)),
		Timeline: domain.Timeline{
			StartDate:  d.Timeline.StartDate,
			EndDate:    d.Timeline.EndDate,
			Milestones: make([]domain.Milestone, 0, len(d.Timeline.Milestones)),
		},
		Status:    statusOrDefault(d.Status),
		Budget:    d.Budget,
		Priority:  priorityOrDefault(d.Priority),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, a := range d.AssignedEmployees {
		p.AssignedEmployees = append(p.AssignedEmployees, domain.Assignment{EmployeeID: a.Employee.Hex(), Role: domain.AssignmentRole(a.Role)})
	}
	for _, m := range d.Timeline.Milestones {
		p.Timeline.Milestones = append(p.Timeline.Milestones, domain.Milestone{Name: m.Name, DueDate: m.DueDate, Status: domain.MilestoneStatus(m.Status)})
	}
	return p
}

func statusOrDefault(s string) domain.ProjectStatus {
	if s == "" {
		return domain.ProjectOngoing
	}
	return domain.ProjectStatus(s)
}

func priorityOrDefault(s string) domain.Priority {
	if s == "" {
		return domain.PriorityMedium
	}
	return domain.Priority(s)
}

// Create inserts a new project and sets its ID.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toProjectDoc(p))
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Project, error) {
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return []*domain.Project{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// List returns projects matching filter, newest created first. A malformed
// id in the filter matches nothing.
func (r *ProjectRepository) List(ctx context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	filter := bson.M{}
	if f.ClientID != "" {
		oid, err := primitive.ObjectIDFromHex(f.ClientID)
		if err != nil {
			return []*domain.Project{}, nil
		}
		filter["client"] = oid
	}
	if f.EmployeeID != "" {
		oid, err := primitive.ObjectIDFromHex(f.EmployeeID)
		if err != nil {
			return []*domain.Project{}, nil
		}
		filter["assignedEmployees.employee"] = oid
	}
	return r.find(ctx, filter)
}

func (r *ProjectRepository) find(ctx context.Context, filter bson.M) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	projects := make([]*domain.Project, 0, len(docs))
	for _, d := range docs {
		projects = append(projects, d.toDomain())
	}
	return projects, nil
}

// Update overwrites every field but createdAt.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toProjectDoc(p)
	update := bson.M{"$set": bson.M{
		"name":              doc.Name,
		"description":       doc.Description,
		"client":            doc.Client,
		"assignedEmployees": doc.AssignedEmployees,
		"timeline":          doc.Timeline,
		"status":            doc.Status,
		"budget":            doc.Budget,
		"priority":          doc.Priority,
		"updatedAt":         doc.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

type groupCount struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

// Count runs a single $facet aggregation grouping by status and priority.
func (r *ProjectRepository) Count(ctx context.Context) (*ports.ProjectCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	groupBy := func(field string) bson.A {
		return bson.A{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$" + field},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
		}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.D{
			{Key: "byStatus", Value: groupBy("status")},
			{Key: "byPriority", Value: groupBy("priority")},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate projects: %w", err)
	}
	var out []struct {
		ByStatus   []groupCount `bson:"byStatus"`
		ByPriority []groupCount `bson:"byPriority"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode project counts: %w", err)
	}

	counts := &ports.ProjectCounts{
		ByStatus:   make(map[domain.ProjectStatus]int64),
		ByPriority: make(map[domain.Priority]int64),
	}
	if len(out) == 0 {
		return counts, nil
	}
	for _, g := range out[0].ByStatus {
		counts.ByStatus[statusOrDefault(g.Key)] += g.Count
	}
	for _, g := range out[0].ByPriority {
		counts.ByPriority[priorityOrDefault(g.Key)] += g.Count
	}
	return counts, nil
}

// EnsureIndexes creates the lookup indexes used by the scoped list queries.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client", Value: 1}}},
		{Keys: bson.D{{Key: "assignedEmployees.employee", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

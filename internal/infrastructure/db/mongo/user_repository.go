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

const collectionUsers = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type companyDetailsDoc struct {
	Name    string `bson:"name"`
	Address string `bson:"address"`
	Phone   string `bson:"phone"`
}

// userDoc keeps role-specific attributes flat on one document, the same
// shape the collection has always had.
type userDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	Contact        string             `bson:"contact,omitempty"`
	Role           string             `bson:"role"`
	Access         string             `bson:"access"`
	Department     string             `bson:"department,omitempty"`
	Position       string             `bson:"position,omitempty"`
	Skills         []string           `bson:"skills,omitempty"`
	CompanyDetails *companyDetailsDoc `bson:"companyDetails,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func toUserDoc(u *domain.User) userDoc {
	doc := userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Contact:   u.Contact,
		Role:      string(u.Role),
		Access:    string(u.Access),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if p, ok := u.Employee(); ok {
		doc.Department = p.Department
		doc.Position = p.Position
		doc.Skills = p.Skills
	}
	if p, ok := u.Client(); ok {
		doc.CompanyDetails = &companyDetailsDoc{
			Name:    p.CompanyDetails.Name,
			Address: p.CompanyDetails.Address,
			Phone:   p.CompanyDetails.Phone,
		}
	}
	return doc
}

func (d userDoc) toDomain() *domain.User {
	u := &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Contact:      d.Contact,
		Role:         domain.Role(d.Role),
		Access:       domain.Access(d.Access),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if u.Access == "" {
		u.Access = domain.AccessActive
	}
	switch u.Role {
	case domain.RoleEmployee:
		u.Profile = domain.EmployeeProfile{Department: d.Department, Position: d.Position, Skills: d.Skills}
	case domain.RoleClient:
		var cd domain.CompanyDetails
		if d.CompanyDetails != nil {
			cd = domain.CompanyDetails{Name: d.CompanyDetails.Name, Address: d.CompanyDetails.Address, Phone: d.CompanyDetails.Phone}
		}
		u.Profile = domain.ClientProfile{CompanyDetails: cd}
	}
	return u
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toUserDoc(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": domain.NormalizeEmail(email)})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return []*domain.User{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

func (r *UserRepository) ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error) {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, bson.M{"role": bson.M{"$in": names}}, opts)
}

func (r *UserRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

// Update rewrites the mutable fields. The stored password is never touched.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toUserDoc(user)
	set := bson.M{
		"name":      doc.Name,
		"email":     doc.Email,
		"contact":   doc.Contact,
		"access":    doc.Access,
		"updatedAt": doc.UpdatedAt,
	}
	unset := bson.M{}
	switch user.Role {
	case domain.RoleEmployee:
		set["department"] = doc.Department
		set["position"] = doc.Position
		set["skills"] = doc.Skills
	case domain.RoleClient:
		if doc.CompanyDetails != nil {
			set["companyDetails"] = doc.CompanyDetails
		} else {
			unset["companyDetails"] = ""
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index and the role index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// toObjectIDs parses hex ids, skipping the malformed ones.
func toObjectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

// optionalObjectID parses id, returning NilObjectID for empty input.
func optionalObjectID(id string) primitive.ObjectID {
	if id == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// hexOrEmpty renders an ObjectID, mapping the zero value to "".
func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

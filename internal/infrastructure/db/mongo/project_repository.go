package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type projectDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ClientID     string             `bson:"client_id"`
	FreelancerID string             `bson:"freelancer_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Budget       float64            `bson:"budget"`
	Status       string             `bson:"status"`
	Deadline     time.Time          `bson:"deadline"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *projectDoc) toDomain() *domain.Project {
	return &domain.Project{
		ID:           d.ID.Hex(),
		ClientID:     d.ClientID,
		FreelancerID: d.FreelancerID,
		Title:        d.Title,
		Description:  d.Description,
		Budget:       d.Budget,
		Status:       domain.ProjectStatus(d.Status),
		Deadline:     d.Deadline,
		CreatedAt:    d.CreatedAt,
	}
}

// Create inserts a new project document and returns it with the assigned id.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := projectDoc{
		ClientID:     project.ClientID,
		FreelancerID: project.FreelancerID,
		Title:        project.Title,
		Description:  project.Description,
		Budget:       project.Budget,
		Status:       string(project.Status),
		Deadline:     project.Deadline,
		CreatedAt:    project.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	stored := *project
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

// FindByID retrieves a project by its hex identifier.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var doc projectDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindAll lists every project, newest first.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		projects = append(projects, doc.toDomain())
	}
	return projects, cur.Err()
}

// Update replaces the mutable fields of an existing project.
func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(project.ID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	update := bson.M{"$set": bson.M{
		"freelancer_id": project.FreelancerID,
		"title":         project.Title,
		"description":   project.Description,
		"budget":        project.Budget,
		"status":        string(project.Status),
		"deadline":      project.Deadline,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project document.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates indexes on the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

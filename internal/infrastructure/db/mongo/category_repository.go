package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

const categoriesCollection = "categories"

type CategoryRepository struct {
	coll *mongo.Collection
	db   *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{coll: db.Collection(categoriesCollection), db: db}
}

type mongoCategory struct {
	ID       int64  `bson:"_id"`
	Name     string `bson:"name"`
	Slug     string `bson:"slug"`
	ParentID *int64 `bson:"parent_id,omitempty"`
	IsActive bool   `bson:"is_active"`
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	id, err := nextID(ctx, r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoCategory{
		ID:       id,
		Name:     category.Name,
		Slug:     category.Slug,
		ParentID: category.ParentID,
		IsActive: category.IsActive,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	created := *category
	created.ID = id
	return &created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

func (r *CategoryRepository) ListChildren(ctx context.Context, parentID int64) ([]domain.Category, error) {
	return r.list(ctx, bson.M{"parent_id": parentID})
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	set := bson.M{
		"name":      category.Name,
		"slug":      category.Slug,
		"parent_id": category.ParentID,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": category.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("deactivate category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) findOne(ctx context.Context, filter bson.M) (*domain.Category, error) {
	var mc mongoCategory
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CategoryRepository) list(ctx context.Context, filter bson.M) ([]domain.Category, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []domain.Category
	for cur.Next(ctx) {
		var mc mongoCategory
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, *mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (mc *mongoCategory) toDomain() *domain.Category {
	return &domain.Category{
		ID:       mc.ID,
		Name:     mc.Name,
		Slug:     mc.Slug,
		ParentID: mc.ParentID,
		IsActive: mc.IsActive,
	}
}

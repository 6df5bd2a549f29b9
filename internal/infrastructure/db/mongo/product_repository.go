package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
	db   *mongo.Database
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection), db: db}
}

type mongoProduct struct {
	ID          int64   `bson:"_id"`
	Name        string  `bson:"name"`
	Slug        string  `bson:"slug"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	ImageURL    string  `bson:"image_url"`
	Stock       int     `bson:"stock"`
	Rating      float64 `bson:"rating"`
	CategoryID  int64   `bson:"category_id"`
	SupplierID  int64   `bson:"supplier_id"`
	IsActive    bool    `bson:"is_active"`
}

// activeFilter matches listable products: active and in stock.
func activeFilter() bson.M {
	return bson.M{"is_active": true, "stock": bson.M{"$gt": 0}}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	id, err := nextID(ctx, r.db, productsCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoProduct(product)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = id
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, activeFilter())
}

func (r *ProductRepository) ListActiveByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]domain.Product, error) {
	filter := activeFilter()
	filter["category_id"] = bson.M{"$in": categoryIDs}
	return r.list(ctx, filter)
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	set := bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"price":       product.Price,
		"image_url":   product.ImageURL,
		"stock":       product.Stock,
		"category_id": product.CategoryID,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	var mp mongoProduct
	if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func toMongoProduct(p *domain.Product) mongoProduct {
	return mongoProduct{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Rating:      p.Rating,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		IsActive:    p.IsActive,
	}
}

func (mp *mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:          mp.ID,
		Name:        mp.Name,
		Slug:        mp.Slug,
		Description: mp.Description,
		Price:       mp.Price,
		ImageURL:    mp.ImageURL,
		Stock:       mp.Stock,
		Rating:      mp.Rating,
		CategoryID:  mp.CategoryID,
		SupplierID:  mp.SupplierID,
		IsActive:    mp.IsActive,
	}
}

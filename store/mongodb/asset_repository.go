package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridianhq/meridian/asset"
)

const assetCollection = "assets"

// AssetRepository manages asset documents in mongodb.
type AssetRepository struct {
	collection *mongo.Collection
}

// NewAssetRepository initializes the repository.
func NewAssetRepository(c *Client) (*AssetRepository, error) {
	if c == nil {
		return nil, errNilMongoClient
	}
	return &AssetRepository{
		collection: c.db.Collection(assetCollection),
	}, nil
}

// List retrieves all assets in creation order.
func (repo *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := repo.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}
	defer cursor.Close(ctx)

	var ams []AssetModel
	if err := cursor.All(ctx, &ams); err != nil {
		return nil, fmt.Errorf("error decoding assets: %w", err)
	}

	assets := make([]asset.Asset, 0, len(ams))
	for _, am := range ams {
		assets = append(assets, am.toAsset())
	}
	return assets, nil
}

func (repo *AssetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	var am AssetModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&am); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return asset.Asset{}, asset.NotFoundError{AssetID: id}
		}
		return asset.Asset{}, fmt.Errorf("error getting asset: %w", err)
	}
	return am.toAsset(), nil
}

func (repo *AssetRepository) Insert(ctx context.Context, ast *asset.Asset) error {
	if _, err := repo.collection.InsertOne(ctx, newAssetModel(ast)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return asset.DuplicateIDError{AssetID: ast.ID}
		}
		return fmt.Errorf("error inserting asset: %w", err)
	}
	return nil
}

// Replace overwrites the stored document, keeping its creation
// timestamp and reflecting it back into ast.
func (repo *AssetRepository) Replace(ctx context.Context, ast *asset.Asset) error {
	am := newAssetModel(ast)
	update := bson.M{"$set": bson.M{
		"name":      am.Name,
		"region":    am.Region,
		"type":      am.Type,
		"status":    am.Status,
		"latitude":  am.Latitude,
		"longitude": am.Longitude,
		"updatedAt": am.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated AssetModel
	if err := repo.collection.FindOneAndUpdate(ctx, bson.M{"_id": ast.ID}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return asset.NotFoundError{AssetID: ast.ID}
		}
		return fmt.Errorf("error replacing asset: %w", err)
	}
	ast.CreatedAt = updated.CreatedAt.UTC()
	return nil
}

func (repo *AssetRepository) Delete(ctx context.Context, id string) error {
	res, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting asset: %w", err)
	}
	if res.DeletedCount == 0 {
		return asset.NotFoundError{AssetID: id}
	}
	return nil
}

func (repo *AssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking asset existence: %w", err)
	}
	return count > 0, nil
}

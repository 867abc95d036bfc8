package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/meridianhq/meridian/asset"
)

var assetColumns = []string{"id", "name", "region", "type", "status", "latitude", "longitude", "created_at", "updated_at"}

// AssetRepository manages asset rows in the primary database.
type AssetRepository struct {
	client *Client
}

// NewAssetRepository initializes the repository.
func NewAssetRepository(c *Client) (*AssetRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &AssetRepository{
		client: c,
	}, nil
}

// List retrieves all assets in creation order.
func (r *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	query, args, err := sq.Select(assetColumns...).
		From("assets").
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	var ams []AssetModel
	if err := r.client.db.SelectContext(ctx, &ams, query, args...); err != nil {
		return nil, fmt.Errorf("error getting asset list: %w", err)
	}

	assets := make([]asset.Asset, 0, len(ams))
	for _, am := range ams {
		assets = append(assets, am.toAsset())
	}
	return assets, nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	query, args, err := sq.Select(assetColumns...).
		From("assets").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return asset.Asset{}, fmt.Errorf("error building get query: %w", err)
	}

	var am AssetModel
	if err := r.client.db.GetContext(ctx, &am, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return asset.Asset{}, asset.NotFoundError{AssetID: id}
		}
		return asset.Asset{}, fmt.Errorf("error getting asset: %w", err)
	}
	return am.toAsset(), nil
}

func (r *AssetRepository) Insert(ctx context.Context, ast *asset.Asset) error {
	am := newAssetModel(ast)
	query, args, err := sq.Insert("assets").
		Columns(assetColumns...).
		Values(am.ID, am.Name, am.Region, am.Type, am.Status, am.Latitude, am.Longitude, am.CreatedAt, am.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	if _, err := r.client.db.ExecContext(ctx, query, args...); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errDuplicateKey) {
			return asset.DuplicateIDError{AssetID: ast.ID}
		}
		return fmt.Errorf("error running insert query: %w", err)
	}
	return nil
}

// Replace overwrites the stored row, keeping its creation timestamp and
// reflecting it back into ast.
func (r *AssetRepository) Replace(ctx context.Context, ast *asset.Asset) error {
	am := newAssetModel(ast)
	query, args, err := sq.Update("assets").
		Set("name", am.Name).
		Set("region", am.Region).
		Set("type", am.Type).
		Set("status", am.Status).
		Set("latitude", am.Latitude).
		Set("longitude", am.Longitude).
		Set("updated_at", am.UpdatedAt).
		Where(sq.Eq{"id": am.ID}).
		Suffix(`RETURNING "created_at"`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	var createdAt time.Time
	if err := r.client.db.QueryRowxContext(ctx, query, args...).Scan(&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return asset.NotFoundError{AssetID: ast.ID}
		}
		return fmt.Errorf("error running update query: %w", err)
	}
	ast.CreatedAt = createdAt.UTC()
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("assets").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	res, err := r.client.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error running delete query: %w", err)
	}
	affectedRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting affected rows: %w", err)
	}
	if affectedRows == 0 {
		return asset.NotFoundError{AssetID: id}
	}
	return nil
}

func (r *AssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.client.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM assets WHERE id = $1)", id); err != nil {
		return false, fmt.Errorf("error checking asset existence: %w", err)
	}
	return exists, nil
}

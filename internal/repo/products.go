package repo

import (
	"context"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/models"
)

const ownerJoin = "JOIN users ON users.id = products.user_id"

// List ordering everywhere: newest first, id as the tiebreak so rows created
// within the same second keep a stable order.
const newestFirst = "products.created_at DESC, products.id DESC"

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.ProductWithOwner, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return r.ProductByID(ctx, prod.ID)
}

func (r *GormRepo) ProductByID(ctx context.Context, id uint) (*models.ProductWithOwner, error) {
	var row models.ProductWithOwner
	res := r.DB.WithContext(ctx).
		Table("products").
		Select("products.*, users.name AS owner_name").
		Joins(ownerJoin).
		Where("products.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrProductNotFound
	}
	return &row, nil
}

func (r *GormRepo) ProductsByOwner(ctx context.Context, ownerID uint) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order(newestFirst).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateOwnProduct overwrites the mutable fields and forces the row back to
// pending in a single guarded UPDATE. Zero affected rows means the product
// does not exist or belongs to someone else; the two cases are deliberately
// not distinguished.
func (r *GormRepo) UpdateOwnProduct(ctx context.Context, id, ownerID uint, attrs models.Product) (*models.ProductWithOwner, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"name":        attrs.Name,
			"price":       attrs.Price,
			"quantity":    attrs.Quantity,
			"description": attrs.Description,
			"status":      models.ProductPending,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotYourProduct
	}
	return r.ProductByID(ctx, id)
}

func (r *GormRepo) DeleteOwnProduct(ctx context.Context, id, ownerID uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotYourProduct
	}
	return nil
}

// SetProductStatus is the moderation write: unconditional overwrite, no
// ownership scope.
func (r *GormRepo) SetProductStatus(ctx context.Context, id uint, status string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrProductNotFound
	}
	return nil
}

func (r *GormRepo) ApprovedProducts(ctx context.Context) ([]models.PublicProduct, error) {
	var rows []models.PublicProduct
	if err := r.DB.WithContext(ctx).
		Table("products").
		Select("products.id, products.name, products.price, products.quantity, products.description, products.created_at, users.name AS owner_name").
		Joins(ownerJoin).
		Where("products.status = ?", models.ProductApproved).
		Order(newestFirst).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) AllProductsForAdmin(ctx context.Context) ([]models.ProductWithOwner, error) {
	var rows []models.ProductWithOwner
	if err := r.DB.WithContext(ctx).
		Table("products").
		Select("products.*, users.name AS owner_name, users.email AS owner_email").
		Joins(ownerJoin).
		Order(newestFirst).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

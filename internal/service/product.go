package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/logging"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
)

// ProductService owns the moderation lifecycle: every product enters pending,
// admins move it to approved or disapproved, and any owner edit drops it back
// to pending.
type ProductService struct {
	Repo *repo.GormRepo
}

type ProductAttrs struct {
	Name        string
	Price       float64
	Quantity    uint
	Description string
}

func (s *ProductService) Create(ctx context.Context, attrs ProductAttrs, ownerID uint) (*models.ProductWithOwner, error) {
	l := logging.FromContext(ctx).With("svc", "product.create", "owner_id", ownerID)

	prod := models.Product{
		Name:        attrs.Name,
		Price:       attrs.Price,
		Quantity:    attrs.Quantity,
		Description: attrs.Description,
		UserID:      ownerID,
		Status:      models.ProductPending,
	}

	row, err := s.Repo.CreateProduct(ctx, &prod)
	if err != nil {
		l.Error("create_failed", "status", 500, "error", err)
		return nil, err
	}

	l.Info("create_success", "product_id", row.ID)
	return row, nil
}

// Update is owner-scoped: the repo runs one guarded UPDATE, so a requester
// cannot tell a missing product from someone else's. A successful edit always
// resets the status to pending, discarding prior moderation.
func (s *ProductService) Update(ctx context.Context, id uint, attrs ProductAttrs, requesterID uint) (*models.ProductWithOwner, error) {
	l := logging.FromContext(ctx).With("svc", "product.update", "product_id", id, "requester_id", requesterID)

	row, err := s.Repo.UpdateOwnProduct(ctx, id, requesterID, models.Product{
		Name:        attrs.Name,
		Price:       attrs.Price,
		Quantity:    attrs.Quantity,
		Description: attrs.Description,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotYourProduct) {
			l.Warn("update_failed", "status", 400, "reason", "not found or not owner")
		} else {
			l.Error("update_failed", "status", 500, "error", err)
		}
		return nil, err
	}

	l.Info("update_success")
	return row, nil
}

func (s *ProductService) Delete(ctx context.Context, id, requesterID uint) error {
	l := logging.FromContext(ctx).With("svc", "product.delete", "product_id", id, "requester_id", requesterID)

	if err := s.Repo.DeleteOwnProduct(ctx, id, requesterID); err != nil {
		if errors.Is(err, apperr.ErrNotYourProduct) {
			l.Warn("delete_failed", "status", 400, "reason", "not found or not owner")
		} else {
			l.Error("delete_failed", "status", 500, "error", err)
		}
		return err
	}

	l.Info("delete_success")
	return nil
}

func (s *ProductService) Approve(ctx context.Context, id uint) error {
	return s.moderate(ctx, id, models.ProductApproved)
}

func (s *ProductService) Disapprove(ctx context.Context, id uint) error {
	return s.moderate(ctx, id, models.ProductDisapproved)
}

func (s *ProductService) moderate(ctx context.Context, id uint, status string) error {
	l := logging.FromContext(ctx).With("svc", "product.moderate", "product_id", id, "status", status)

	if err := s.Repo.SetProductStatus(ctx, id, status); err != nil {
		if errors.Is(err, apperr.ErrProductNotFound) {
			l.Warn("moderate_failed", "status", 400, "reason", "not found")
		} else {
			l.Error("moderate_failed", "status", 500, "error", err)
		}
		return err
	}

	l.Info("moderate_success")
	return nil
}

func (s *ProductService) ListApproved(ctx context.Context) ([]models.PublicProduct, error) {
	return s.Repo.ApprovedProducts(ctx)
}

func (s *ProductService) ListAllForAdmin(ctx context.Context) ([]models.ProductWithOwner, error) {
	return s.Repo.AllProductsForAdmin(ctx)
}

func (s *ProductService) ListMine(ctx context.Context, ownerID uint) ([]models.Product, error) {
	return s.Repo.ProductsByOwner(ctx, ownerID)
}

// GetByID has no status filter: pending and disapproved products are
// fetchable by id through the public endpoint. That mirrors the upstream
// behavior this service reproduces.
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.ProductWithOwner, error) {
	return s.Repo.ProductByID(ctx, id)
}

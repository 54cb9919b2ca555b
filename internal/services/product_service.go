// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/config"
	"github.com/inventra/inventory-backend/internal/database"
	"github.com/inventra/inventory-backend/internal/models"
)

type ProductService struct {
	db                 *gorm.DB
	refCaseInsensitive bool
	now                func() time.Time
}

type CreateProductRequest struct {
	Ref           string          `json:"ref" validate:"required,max=50"`
	Name          *string         `json:"name" validate:"omitempty,max=50"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" validate:"required,gt=0"`
	SellingPrice  decimal.Decimal `json:"sellingPrice" validate:"required,gt=0"`
	CategoryID    int64           `json:"categoryId" validate:"required,gt=0"`
}

// UpdateProductRequest is a sparse edit; nil fields are left as they are.
type UpdateProductRequest struct {
	Ref           *string          `json:"ref" validate:"omitempty,max=50"`
	Name          *string          `json:"name" validate:"omitempty,max=50"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" validate:"omitempty,gt=0"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice" validate:"omitempty,gt=0"`
}

// ProductFilter narrows a listing. Nil fields do not constrain; set fields
// are ANDed and match the base record.
type ProductFilter struct {
	Ref          *string
	SellingPrice *decimal.Decimal
	CreatedAt    *time.Time // calendar day, UTC
	CategoryID   *uint
}

func NewProductService(db *gorm.DB, catalog config.CatalogConfig) *ProductService {
	return &ProductService{
		db:                 db,
		refCaseInsensitive: catalog.RefFilterCaseInsensitive,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *ProductService) ListProducts(p *Principal, filter ProductFilter) ([]ProductView, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	var views []ProductView
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var products []models.Product
		if err := s.applyFilter(tx.Model(&models.Product{}), filter).Find(&products).Error; err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		views = make([]ProductView, 0, len(products))
		for i := range products {
			view, err := buildProductView(tx, &products[i])
			if err != nil {
				return err
			}
			views = append(views, *view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByActivity(views)
	return views, nil
}

func (s *ProductService) GetProduct(p *Principal, id uint) (*ProductView, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	var view *ProductView
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		product, err := findProduct(tx, id)
		if err != nil {
			return err
		}
		view, err = buildProductView(tx, product)
		return err
	})
	return view, err
}

func (s *ProductService) CreateProduct(p *Principal, req *CreateProductRequest) (*ProductView, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	var view *ProductView
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if _, err := findCategory(tx, uint(req.CategoryID)); err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return ErrUnknownCategory
			}
			return err
		}

		product := &models.Product{
			Ref:           req.Ref,
			Name:          req.Name,
			PurchasePrice: req.PurchasePrice,
			SellingPrice:  req.SellingPrice,
			CreatedAt:     s.now(),
			CategoryID:    uint(req.CategoryID),
		}
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		var err error
		view, err = buildProductView(tx, product)
		return err
	})
	return view, err
}

// UpdateProduct appends a delta holding only the supplied fields. The base
// record is never modified. An empty request still records a delta.
func (s *ProductService) UpdateProduct(p *Principal, id uint, req *UpdateProductRequest) (*ProductView, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	var view *ProductView
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		product, err := findProduct(tx, id)
		if err != nil {
			return err
		}

		update := &models.ProductUpdate{
			ProductID: product.ID,
			Ref:       req.Ref,
			Name:      req.Name,
			UpdatedAt: s.now(),
		}
		if req.PurchasePrice != nil {
			update.PurchasePrice = decimal.NewNullDecimal(*req.PurchasePrice)
		}
		if req.SellingPrice != nil {
			update.SellingPrice = decimal.NewNullDecimal(*req.SellingPrice)
		}

		if err := tx.Create(update).Error; err != nil {
			return fmt.Errorf("failed to record product update: %w", err)
		}

		view, err = buildProductView(tx, product)
		return err
	})
	return view, err
}

// DeleteProduct removes the product together with its update log and stock.
func (s *ProductService) DeleteProduct(p *Principal, id uint) error {
	if err := requireAuthenticated(p); err != nil {
		return err
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if _, err := findProduct(tx, id); err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductUpdate{}).Error; err != nil {
			return fmt.Errorf("failed to delete product updates: %w", err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductStock{}).Error; err != nil {
			return fmt.Errorf("failed to delete product stock: %w", err)
		}
		if err := tx.Delete(&models.Product{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

// ListUpdates returns the product's update log, newest first.
func (s *ProductService) ListUpdates(p *Principal, id uint) ([]ProductUpdateView, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	var views []ProductUpdateView
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if _, err := findProduct(tx, id); err != nil {
			return err
		}

		var updates []models.ProductUpdate
		if err := tx.Where("product_id = ?", id).Order(latestUpdateOrder).Find(&updates).Error; err != nil {
			return fmt.Errorf("failed to list product updates: %w", err)
		}

		views = make([]ProductUpdateView, 0, len(updates))
		for i := range updates {
			views = append(views, newProductUpdateView(&updates[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (s *ProductService) applyFilter(query *gorm.DB, filter ProductFilter) *gorm.DB {
	if filter.Ref != nil && *filter.Ref != "" {
		query = s.applyRefFilter(query, *filter.Ref)
	}

	if filter.SellingPrice != nil {
		query = query.Where("selling_price = ?", *filter.SellingPrice)
	}

	if filter.CreatedAt != nil {
		day := filter.CreatedAt.UTC().Truncate(24 * time.Hour)
		query = query.Where("created_at >= ? AND created_at < ?", day, day.Add(24*time.Hour))
	}

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	return query
}

func (s *ProductService) applyRefFilter(query *gorm.DB, ref string) *gorm.DB {
	postgres := strings.EqualFold(query.Name(), "postgres")

	if s.refCaseInsensitive {
		if postgres {
			return query.Where(`ref ILIKE ? ESCAPE '\'`, likePattern(ref))
		}
		return query.Where(`LOWER(ref) LIKE ? ESCAPE '\'`, likePattern(strings.ToLower(ref)))
	}

	if postgres {
		return query.Where(`ref LIKE ? ESCAPE '\'`, likePattern(ref))
	}
	// SQLite LIKE ignores ASCII case.
	return query.Where("instr(ref, ?) > 0", ref)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(substr string) string {
	return "%" + likeEscaper.Replace(substr) + "%"
}

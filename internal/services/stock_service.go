// internal/services/stock_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inventra/inventory-backend/internal/database"
	"github.com/inventra/inventory-backend/internal/models"
)

type StockService struct {
	db *gorm.DB
}

// StockRequest sets the quantity on hand. A null quantity means unknown.
type StockRequest struct {
	Quantity *int `json:"quantity" validate:"omitempty,min=0"`
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// SetStock writes the single stock row of a product and returns the
// refreshed product view.
func (s *StockService) SetStock(p *Principal, productID uint, req *StockRequest) (*ProductView, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	var view *ProductView
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		product, err := findProduct(tx, productID)
		if err != nil {
			return err
		}

		stock := &models.ProductStock{ProductID: product.ID, Quantity: req.Quantity}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).Create(stock).Error
		if err != nil {
			return fmt.Errorf("failed to save product stock: %w", err)
		}

		view, err = buildProductView(tx, product)
		return err
	})
	return view, err
}

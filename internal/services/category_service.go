// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventra/inventory-backend/internal/database"
	"github.com/inventra/inventory-backend/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories(p *Principal) ([]models.Category, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := s.db.Order("name ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(p *Principal, id uint) (*models.Category, error) {
	if err := requireAuthenticated(p); err != nil {
		return nil, err
	}
	return findCategory(s.db, id)
}

func (s *CategoryService) CreateCategory(p *Principal, req *CategoryRequest) (*models.Category, error) {
	if err := requireRole(p, categoryWriters...); err != nil {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := ensureCategoryNameFree(tx, req.Name, 0); err != nil {
			return err
		}
		return translateCategoryWrite(tx.Create(category).Error)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category. Keeping the current name is allowed.
func (s *CategoryService) UpdateCategory(p *Principal, id uint, req *CategoryRequest) (*models.Category, error) {
	if err := requireRole(p, categoryWriters...); err != nil {
		return nil, err
	}

	var category *models.Category
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var err error
		if category, err = findCategory(tx, id); err != nil {
			return err
		}
		if err := ensureCategoryNameFree(tx, req.Name, id); err != nil {
			return err
		}
		category.Name = req.Name
		return translateCategoryWrite(tx.Model(category).Update("name", req.Name).Error)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(p *Principal, id uint) error {
	if err := requireRole(p, categoryWriters...); err != nil {
		return err
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if _, err := findCategory(tx, id); err != nil {
			return err
		}

		var productCount int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
			return fmt.Errorf("failed to count category products: %w", err)
		}
		if productCount > 0 {
			return ErrCategoryHasProducts
		}

		if err := tx.Delete(&models.Category{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}

func findCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return &category, nil
}

// ensureCategoryNameFree compares names byte for byte. selfID is the
// category being renamed, 0 on create.
func ensureCategoryNameFree(tx *gorm.DB, name string, selfID uint) error {
	var existing models.Category
	err := tx.Where("name = ?", name).Limit(1).Find(&existing).Error
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if existing.ID != 0 && existing.ID != selfID {
		return ErrCategoryNameTaken
	}
	return nil
}

func translateCategoryWrite(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrCategoryNameTaken
	default:
		return fmt.Errorf("failed to save category: %w", err)
	}
}

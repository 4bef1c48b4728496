package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/models"
	"hotel_standards_backend/internal/repositories"
)

// --- Custom Service Errors for the Catalog ---
var (
	ErrStandardItemNotFound = errors.New("standard item not found")
	ErrCatalogValidation    = errors.New("catalog validation error")
)

// UpdateItemTextRequest carries the presentation-editable fields of a catalog
// item. Pointers distinguish between empty and not provided.
type UpdateItemTextRequest struct {
	TitleAR       *string `json:"title_ar"`
	TitleEN       *string `json:"title_en"`
	DescriptionAR *string `json:"description_ar"`
	DescriptionEN *string `json:"description_en"`
	Citation      *string `json:"citation"`
}

// --- CatalogService Interface ---
type CatalogService interface {
	GetItems(category *models.Category) ([]models.StandardItem, error)
	GetItemByID(id string) (*models.StandardItem, error)
	UpdateItemText(id string, req UpdateItemTextRequest) (*models.StandardItem, error)
	// ValidateCatalog checks every stored item against the section routing
	// table. Run at startup so authoring mistakes fail loudly.
	ValidateCatalog() error
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
	db          *sql.DB
}

func NewCatalogService(repo repositories.CatalogRepository, db *sql.DB) CatalogService {
	return &catalogService{catalogRepo: repo, db: db}
}

func (s *catalogService) GetItems(category *models.Category) ([]models.StandardItem, error) {
	if category != nil && !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrCatalogValidation, *category)
	}
	items, err := s.catalogRepo.GetItems(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get standard items: %w", err)
	}
	return items, nil
}

func (s *catalogService) GetItemByID(id string) (*models.StandardItem, error) {
	item, err := s.catalogRepo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStandardItemNotFound
		}
		return nil, fmt.Errorf("failed to get standard item by ID: %w", err)
	}
	return item, nil
}

func (s *catalogService) UpdateItemText(id string, req UpdateItemTextRequest) (*models.StandardItem, error) {
	trimmed := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	// Titles may be edited but never blanked: a catalog line without a title
	// is unusable in every rendering of the BoQ.
	for _, title := range []*string{trimmed(req.TitleAR), trimmed(req.TitleEN)} {
		if title != nil && *title == "" {
			return nil, fmt.Errorf("%w: item title cannot be empty if provided", ErrCatalogValidation)
		}
	}

	err := s.catalogRepo.UpdateItemText(s.db, id, repositories.UpdateItemTextFields{
		TitleAR:       trimmed(req.TitleAR),
		TitleEN:       trimmed(req.TitleEN),
		DescriptionAR: trimmed(req.DescriptionAR),
		DescriptionEN: trimmed(req.DescriptionEN),
		Citation:      trimmed(req.Citation),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStandardItemNotFound
		}
		return nil, fmt.Errorf("failed to update standard item text: %w", err)
	}
	return s.catalogRepo.GetItemByID(id)
}

func (s *catalogService) ValidateCatalog() error {
	items, err := s.catalogRepo.GetItems(nil)
	if err != nil {
		return fmt.Errorf("failed to load catalog for validation: %w", err)
	}
	if err := engine.ValidateRouting(items); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogValidation, err)
	}
	return nil
}

package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/models"
	"hotel_standards_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Estimates ---
var (
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrEstimateValidation = errors.New("estimate validation error")
)

// EstimateRequest is the input of one BoQ computation: the star rating and
// the unit mix. Counts are clamped to >= 0 before they reach the engine.
type EstimateRequest struct {
	Rating  int            `json:"rating" binding:"required,min=1,max=5"`
	UnitMix models.UnitMix `json:"unit_mix"`
	Name    *string        `json:"name"`
}

// --- EstimateService Interface ---
type EstimateService interface {
	// PreviewEstimate runs the BoQ pipeline without persisting anything.
	PreviewEstimate(req EstimateRequest) (*models.BoQ, error)
	// CreateEstimate runs the pipeline and saves an immutable snapshot.
	CreateEstimate(req EstimateRequest) (*models.BoQEstimate, error)
	GetEstimateByID(id string) (*models.BoQEstimate, error)
	GetEstimates(page, pageSize int) ([]models.BoQEstimate, int, error)
	DeleteEstimate(id string) error
	// ExportBoQ renders the BoQ as an xlsx workbook in the given language.
	ExportBoQ(req EstimateRequest, lang string) ([]byte, error)
}

type estimateService struct {
	estimateRepo repositories.EstimateRepository
	catalogRepo  repositories.CatalogRepository
	db           *sql.DB
	engineCfg    engine.Config
}

func NewEstimateService(estimateRepo repositories.EstimateRepository, catalogRepo repositories.CatalogRepository, db *sql.DB, engineCfg engine.Config) EstimateService {
	return &estimateService{
		estimateRepo: estimateRepo,
		catalogRepo:  catalogRepo,
		db:           db,
		engineCfg:    engineCfg,
	}
}

// compute loads the catalog and runs the pure pipeline over it.
func (s *estimateService) compute(req EstimateRequest) (*models.BoQ, error) {
	rating := models.Rating(req.Rating)
	if !rating.IsValid() {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5, got %d", ErrEstimateValidation, req.Rating)
	}
	catalog, err := s.catalogRepo.GetItems(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for estimate: %w", err)
	}
	boq := engine.BuildBoQ(catalog, rating, req.UnitMix.Clamped(), s.engineCfg)
	return &boq, nil
}

func (s *estimateService) PreviewEstimate(req EstimateRequest) (*models.BoQ, error) {
	return s.compute(req)
}

func (s *estimateService) CreateEstimate(req EstimateRequest) (*models.BoQEstimate, error) {
	boq, err := s.compute(req)
	if err != nil {
		return nil, err
	}

	estimate := &models.BoQEstimate{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Rating:     boq.Rating,
		UnitMix:    boq.UnitMix,
		GrandTotal: boq.GrandTotal,
		CostPerKey: boq.CostPerKey,
		Result:     boq,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.estimateRepo.CreateEstimate(s.db, estimate); err != nil {
		return nil, fmt.Errorf("failed to save estimate: %w", err)
	}
	return estimate, nil
}

func (s *estimateService) GetEstimateByID(id string) (*models.BoQEstimate, error) {
	estimate, err := s.estimateRepo.GetEstimateByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEstimateNotFound
		}
		return nil, fmt.Errorf("failed to get estimate by ID: %w", err)
	}
	return estimate, nil
}

func (s *estimateService) GetEstimates(page, pageSize int) ([]models.BoQEstimate, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	estimates, totalCount, err := s.estimateRepo.GetEstimates(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get estimates: %w", err)
	}
	return estimates, totalCount, nil
}

func (s *estimateService) DeleteEstimate(id string) error {
	err := s.estimateRepo.DeleteEstimate(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEstimateNotFound
		}
		return fmt.Errorf("failed to delete estimate: %w", err)
	}
	return nil
}

func (s *estimateService) ExportBoQ(req EstimateRequest, lang string) ([]byte, error) {
	boq, err := s.compute(req)
	if err != nil {
		return nil, err
	}
	workbook, err := BuildBoQWorkbook(boq, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to build BoQ workbook: %w", err)
	}
	return workbook, nil
}

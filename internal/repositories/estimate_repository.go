package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hotel_standards_backend/internal/models"

	"github.com/lib/pq"
)

// EstimateRepository defines the database operations for saved BoQ estimates.
type EstimateRepository interface {
	CreateEstimate(executor SQLExecutor, estimate *models.BoQEstimate) error
	GetEstimateByID(id string) (*models.BoQEstimate, error)
	// GetEstimates lists saved estimates newest first, without the full result
	// payload. Returns estimates, total count, error.
	GetEstimates(page, pageSize int) ([]models.BoQEstimate, int, error)
	DeleteEstimate(executor SQLExecutor, id string) error
}

type estimateRepository struct {
	db *sql.DB
}

// NewEstimateRepository creates a new instance of EstimateRepository.
func NewEstimateRepository(db *sql.DB) EstimateRepository {
	return &estimateRepository{db: db}
}

func (r *estimateRepository) CreateEstimate(executor SQLExecutor, estimate *models.BoQEstimate) error {
	resultJSON, err := json.Marshal(estimate.Result)
	if err != nil {
		return fmt.Errorf("%w: encoding estimate result: %v", ErrDatabaseError, err)
	}

	query := `INSERT INTO boq_estimates
	          (id, name, rating, single_units, double_units, twin_units, suite_units, vip_units,
	           grand_total, cost_per_key, result, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING created_at`
	err = executor.QueryRow(query,
		estimate.ID, estimate.Name, int(estimate.Rating),
		estimate.UnitMix.Single, estimate.UnitMix.Double, estimate.UnitMix.Twin,
		estimate.UnitMix.Suite, estimate.UnitMix.Vip,
		estimate.GrandTotal, estimate.CostPerKey, resultJSON, estimate.CreatedAt,
	).Scan(&estimate.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: estimate %s already exists (constraint: %s)", ErrDuplicateKey, estimate.ID, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating estimate: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *estimateRepository) GetEstimateByID(id string) (*models.BoQEstimate, error) {
	estimate := &models.BoQEstimate{}
	var rating int
	var resultRaw []byte

	query := `SELECT id, name, rating, single_units, double_units, twin_units, suite_units, vip_units,
	                 grand_total, cost_per_key, result, created_at
	          FROM boq_estimates WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&estimate.ID, &estimate.Name, &rating,
		&estimate.UnitMix.Single, &estimate.UnitMix.Double, &estimate.UnitMix.Twin,
		&estimate.UnitMix.Suite, &estimate.UnitMix.Vip,
		&estimate.GrandTotal, &estimate.CostPerKey, &resultRaw, &estimate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting estimate %s: %v", ErrDatabaseError, id, err)
	}
	estimate.Rating = models.Rating(rating)

	if len(resultRaw) > 0 {
		var result models.BoQ
		if err := json.Unmarshal(resultRaw, &result); err != nil {
			return nil, fmt.Errorf("%w: decoding estimate %s result: %v", ErrDatabaseError, id, err)
		}
		estimate.Result = &result
	}
	return estimate, nil
}

func (r *estimateRepository) GetEstimates(page, pageSize int) ([]models.BoQEstimate, int, error) {
	estimates := []models.BoQEstimate{}
	totalCount := 0

	query := `SELECT id, name, rating, single_units, double_units, twin_units, suite_units, vip_units,
	                 grand_total, cost_per_key, created_at, COUNT(*) OVER() AS total_count
	          FROM boq_estimates
	          ORDER BY created_at DESC
	          LIMIT $1 OFFSET $2`
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting estimates: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var estimate models.BoQEstimate
		var rating int
		if err := rows.Scan(
			&estimate.ID, &estimate.Name, &rating,
			&estimate.UnitMix.Single, &estimate.UnitMix.Double, &estimate.UnitMix.Twin,
			&estimate.UnitMix.Suite, &estimate.UnitMix.Vip,
			&estimate.GrandTotal, &estimate.CostPerKey, &estimate.CreatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning estimate: %v", ErrDatabaseError, err)
		}
		estimate.Rating = models.Rating(rating)
		estimates = append(estimates, estimate)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating estimates: %v", ErrDatabaseError, err)
	}
	return estimates, totalCount, nil
}

func (r *estimateRepository) DeleteEstimate(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM boq_estimates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting estimate %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

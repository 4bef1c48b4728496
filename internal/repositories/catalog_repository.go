package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_standards_backend/internal/models"

	"github.com/lib/pq"
)

// UpdateItemTextFields carries the editable localized text of a catalog item.
// Pointers distinguish "not provided" from "set to empty". Only these fields
// are presentation-editable; everything that feeds quantity or cost arithmetic
// is immutable through this repository.
type UpdateItemTextFields struct {
	TitleAR       *string
	TitleEN       *string
	DescriptionAR *string
	DescriptionEN *string
	Citation      *string
}

// CatalogRepository defines the database operations for the standards catalog.
type CatalogRepository interface {
	GetItems(category *models.Category) ([]models.StandardItem, error)
	GetItemByID(id string) (*models.StandardItem, error)
	UpdateItemText(executor SQLExecutor, id string, fields UpdateItemTextFields) error
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

const catalogColumns = `id, category, sub_category, title_ar, title_en,
	description_ar, description_en, citation, mandatory_min, points,
	req_star1, req_star2, req_star3, req_star4, req_star5,
	has_cost, base_cost, calc_rule, item_type, specs`

// GetItems returns catalog items in declaration (position) order, optionally
// filtered by category. Declaration order is what keeps BoQ output
// deterministic, so no other ordering is offered.
func (r *catalogRepository) GetItems(category *models.Category) ([]models.StandardItem, error) {
	items := []models.StandardItem{}

	query := `SELECT ` + catalogColumns + ` FROM standard_items`
	var args []interface{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, string(*category))
	}
	query += ` ORDER BY position`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting standard items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanStandardItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating standard items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *catalogRepository) GetItemByID(id string) (*models.StandardItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM standard_items WHERE id = $1`
	row := r.db.QueryRow(query, id)
	item, err := scanStandardItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// UpdateItemText updates only the provided localized text fields.
func (r *catalogRepository) UpdateItemText(executor SQLExecutor, id string, fields UpdateItemTextFields) error {
	var sets []string
	var args []interface{}
	argCount := 1

	addSet := func(column string, value *string) {
		if value != nil {
			sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
			args = append(args, *value)
			argCount++
		}
	}
	addSet("title_ar", fields.TitleAR)
	addSet("title_en", fields.TitleEN)
	addSet("description_ar", fields.DescriptionAR)
	addSet("description_en", fields.DescriptionEN)
	addSet("citation", fields.Citation)

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE standard_items SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), argCount)
	result, err := executor.Exec(query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("%w: updating standard item %s (code %s): %v", ErrDatabaseError, id, pqErr.Code.Name(), err)
		}
		return fmt.Errorf("%w: updating standard item %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanStandardItem maps one standard_items row into the model, expanding the
// mandatory-minimum threshold into the full rating set and decoding the specs
// JSON column.
func scanStandardItem(row rowScanner) (*models.StandardItem, error) {
	var (
		item         models.StandardItem
		subCategory  sql.NullString
		citation     sql.NullString
		mandatoryMin int
		itemType     sql.NullString
		specsRaw     []byte
	)
	err := row.Scan(
		&item.ID, &item.Category, &subCategory,
		&item.Title.AR, &item.Title.EN,
		&item.Description.AR, &item.Description.EN,
		&citation, &mandatoryMin, &item.Points,
		&item.RequirementByRating[0], &item.RequirementByRating[1],
		&item.RequirementByRating[2], &item.RequirementByRating[3],
		&item.RequirementByRating[4],
		&item.HasCost, &item.BaseCost, &item.CalcRule, &itemType, &specsRaw,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scanning standard item: %v", ErrDatabaseError, err)
	}

	item.SubCategory = subCategory.String
	item.Citation = citation.String
	item.ItemType = itemType.String
	item.MandatoryFor = models.ExpandMandatory(mandatoryMin)

	if len(specsRaw) > 0 {
		specs := map[models.Rating]models.LocalizedText{}
		if err := json.Unmarshal(specsRaw, &specs); err != nil {
			return nil, fmt.Errorf("%w: decoding specs for item %s: %v", ErrDatabaseError, item.ID, err)
		}
		if len(specs) > 0 {
			item.SpecsByRating = specs
		}
	}
	return &item, nil
}

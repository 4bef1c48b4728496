package services_test

import (
	"bytes"
	"testing"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/models"
	"hotel_standards_backend/internal/repositories"
	"hotel_standards_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeCatalogRepo serves a fixed catalog from memory.
type fakeCatalogRepo struct {
	items []models.StandardItem
}

func (f *fakeCatalogRepo) GetItems(category *models.Category) ([]models.StandardItem, error) {
	if category == nil {
		return f.items, nil
	}
	var out []models.StandardItem
	for _, item := range f.items {
		if item.Category == *category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetItemByID(id string) (*models.StandardItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCatalogRepo) UpdateItemText(_ repositories.SQLExecutor, id string, _ repositories.UpdateItemTextFields) error {
	if _, err := f.GetItemByID(id); err != nil {
		return err
	}
	return nil
}

// fakeEstimateRepo stores estimates in memory.
type fakeEstimateRepo struct {
	saved map[string]*models.BoQEstimate
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{saved: map[string]*models.BoQEstimate{}}
}

func (f *fakeEstimateRepo) CreateEstimate(_ repositories.SQLExecutor, estimate *models.BoQEstimate) error {
	f.saved[estimate.ID] = estimate
	return nil
}

func (f *fakeEstimateRepo) GetEstimateByID(id string) (*models.BoQEstimate, error) {
	estimate, ok := f.saved[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return estimate, nil
}

func (f *fakeEstimateRepo) GetEstimates(page, pageSize int) ([]models.BoQEstimate, int, error) {
	var out []models.BoQEstimate
	for _, estimate := range f.saved {
		out = append(out, *estimate)
	}
	return out, len(out), nil
}

func (f *fakeEstimateRepo) DeleteEstimate(_ repositories.SQLExecutor, id string) error {
	if _, ok := f.saved[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.saved, id)
	return nil
}

func fixtureCatalog() []models.StandardItem {
	same := func(req string) [5]string {
		return [5]string{req, req, req, req, req}
	}
	return []models.StandardItem{
		{
			ID: "r-bed", Category: models.CategoryRoom,
			Title:    models.LocalizedText{AR: "السرير والمرتبة", EN: "Bed & Mattress"},
			CalcRule: models.RulePerKingBed, HasCost: true, BaseCost: 2500,
			ItemType: models.ItemTypeFFE, RequirementByRating: same("1"),
		},
		{
			ID: "rec-sofa", Category: models.CategoryReception,
			Title:    models.LocalizedText{AR: "طقم كنب اللوبي", EN: "Lobby Sofa Set"},
			CalcRule: models.RuleFixed, HasCost: true, BaseCost: 15000,
			ItemType: models.ItemTypeFFE, RequirementByRating: same("1 set"),
		},
	}
}

func newEstimateService(estimateRepo repositories.EstimateRepository) services.EstimateService {
	catalogRepo := &fakeCatalogRepo{items: fixtureCatalog()}
	return services.NewEstimateService(estimateRepo, catalogRepo, nil, engine.DefaultConfig())
}

func TestEstimateService_Preview(t *testing.T) {
	svc := newEstimateService(newFakeEstimateRepo())

	boq, err := svc.PreviewEstimate(services.EstimateRequest{
		Rating:  3,
		UnitMix: models.UnitMix{Double: 30, Twin: 15, Suite: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 50, boq.TotalUnits)
	// 35 king beds * 2500 * 1.5 + one sofa set * 15000 * 1.5
	assert.InDelta(t, 35*2500*1.5+15000*1.5, boq.GrandTotal, 1e-9)
	assert.InDelta(t, boq.GrandTotal/50, boq.CostPerKey, 1e-9)
}

func TestEstimateService_PreviewInvalidRating(t *testing.T) {
	svc := newEstimateService(newFakeEstimateRepo())

	_, err := svc.PreviewEstimate(services.EstimateRequest{Rating: 7})
	assert.ErrorIs(t, err, services.ErrEstimateValidation)
}

func TestEstimateService_CreateAndFetch(t *testing.T) {
	repo := newFakeEstimateRepo()
	svc := newEstimateService(repo)

	name := "phase one"
	created, err := svc.CreateEstimate(services.EstimateRequest{
		Rating:  4,
		UnitMix: models.UnitMix{Single: 20},
		Name:    &name,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.Rating(4), created.Rating)
	require.NotNil(t, created.Result)
	assert.Equal(t, created.GrandTotal, created.Result.GrandTotal)

	fetched, err := svc.GetEstimateByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = svc.GetEstimateByID("no-such-id")
	assert.ErrorIs(t, err, services.ErrEstimateNotFound)
}

func TestEstimateService_Delete(t *testing.T) {
	repo := newFakeEstimateRepo()
	svc := newEstimateService(repo)

	created, err := svc.CreateEstimate(services.EstimateRequest{
		Rating:  2,
		UnitMix: models.UnitMix{Single: 5},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEstimate(created.ID))
	assert.ErrorIs(t, svc.DeleteEstimate(created.ID), services.ErrEstimateNotFound)
}

func TestEstimateService_ExportBoQ(t *testing.T) {
	svc := newEstimateService(newFakeEstimateRepo())

	workbook, err := svc.ExportBoQ(services.EstimateRequest{
		Rating:  3,
		UnitMix: models.UnitMix{Double: 10},
	}, "en")
	require.NoError(t, err)
	require.NotEmpty(t, workbook)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("BoQ")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Section", rows[0][0])

	var foundBed bool
	for _, row := range rows[1:] {
		if len(row) > 1 && row[1] == "Bed & Mattress" {
			foundBed = true
		}
	}
	assert.True(t, foundBed, "exported workbook should carry the bed line")
}

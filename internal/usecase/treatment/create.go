package treatment

import (
	"context"

	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

type Repository interface {
	CreateTreatment(ctx context.Context, t *models.Treatment) error
}

type CreateInput struct {
	Name        string
	Description string
	DurationMin int
	Price       float64
	Category    string
}

type CreateTreatment struct {
	repo Repository
}

func NewCreateTreatment(repo Repository) *CreateTreatment {
	return &CreateTreatment{repo: repo}
}

// Execute validates the catalog entry and persists it. Both checks reject
// before any write.
func (uc *CreateTreatment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Treatment, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDuration)
	}
	if in.Price < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPrice)
	}

	t := &models.Treatment{
		Name:        in.Name,
		Description: in.Description,
		DurationMin: in.DurationMin,
		Price:       in.Price,
		Category:    in.Category,
	}

	if err := uc.repo.CreateTreatment(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

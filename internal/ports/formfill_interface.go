package ports

import (
	"context"
	"envelope-orchestrator/internal/model"
)

// FormFillEngine : движок генерации PDF-форм
type FormFillEngine interface {
	GenerateDocuments(ctx context.Context, forms []model.GenerateFormRequest) ([]model.GeneratedDocument, error)
	// FetchFieldLocations : формы, для которых координаты получить не удалось, в результат не попадают
	FetchFieldLocations(ctx context.Context, formIDs []string) (map[string]*model.FieldLocationBundle, error)
}

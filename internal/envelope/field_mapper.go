package envelope

import (
	"envelope-orchestrator/internal/model"
	"math"
)

// MapFieldLocations : переводит координаты полей формы в вкладки документа documentID,
// оставляя только поля указанных ролей. Порядок полей сохраняется
func MapFieldLocations(bundle *model.FieldLocationBundle, documentID string, roles ...string) model.Tabs {
	tabs := model.NewTabs()
	if bundle == nil || len(roles) == 0 {
		return tabs
	}

	accepted := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		accepted[role] = struct{}{}
	}

	tabs.SignHereTabs = appendPlacements(tabs.SignHereTabs, bundle.Locations(model.TabKindSign), documentID, accepted)
	tabs.DateSignedTabs = appendPlacements(tabs.DateSignedTabs, bundle.Locations(model.TabKindDate), documentID, accepted)
	tabs.InitialHereTabs = appendPlacements(tabs.InitialHereTabs, bundle.Locations(model.TabKindInitial), documentID, accepted)

	return tabs
}

func appendPlacements(dst []model.TabPlacement, locations []model.FieldLocation, documentID string, accepted map[string]struct{}) []model.TabPlacement {
	for _, location := range locations {
		if _, ok := accepted[location.Role]; !ok {
			continue
		}
		dst = append(dst, Placement(documentID, location.PageNumber(), location.XCoord, location.YCoord))
	}
	return dst
}

// Placement : провайдер принимает только целые координаты, округление от нуля
func Placement(documentID, pageNumber string, x, y float64) model.TabPlacement {
	return model.TabPlacement{
		DocumentID: documentID,
		PageNumber: pageNumber,
		XPosition:  int(math.Round(x)),
		YPosition:  int(math.Round(y)),
	}
}

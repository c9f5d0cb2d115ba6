package envelope

import (
	"envelope-orchestrator/internal/model"
	"strconv"
)

// CarbonCopyDeclaration : получатель копии, указанный в форме
type CarbonCopyDeclaration struct {
	Name  string
	Email string
}

// ResolveCarbonCopies : собирает получателей копий по всем формам без повторов.
// Получателю скрываются документы форм, где он не указан, и все клиентские PDF.
// recipientId продолжает нумерацию после signerCount подписантов
func ResolveCarbonCopies(forms []FormDocument, supplementaryIDs []string, signerCount int) []model.CarbonCopy {
	carbonCopies := make([]model.CarbonCopy, 0)
	seen := make(map[string]struct{})
	next := signerCount + 1

	for _, form := range forms {
		for _, declaration := range form.CarbonCopies {
			key := NormalizeEmail(declaration.Email)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			carbonCopies = append(carbonCopies, model.CarbonCopy{
				Name:              declaration.Name,
				Email:             declaration.Email,
				RecipientID:       strconv.Itoa(next),
				RoutingOrder:      model.CarbonCopyRoutingOrder,
				ExcludedDocuments: excludedDocuments(key, forms, supplementaryIDs),
			})
			next++
		}
	}

	return carbonCopies
}

func excludedDocuments(key string, forms []FormDocument, supplementaryIDs []string) []string {
	excluded := make([]string, 0, len(forms)+len(supplementaryIDs))
	for _, form := range forms {
		if listsCarbonCopy(form, key) == false {
			excluded = append(excluded, form.DocumentID)
		}
	}
	return append(excluded, supplementaryIDs...)
}

func listsCarbonCopy(form FormDocument, key string) bool {
	for _, declaration := range form.CarbonCopies {
		if NormalizeEmail(declaration.Email) == key {
			return true
		}
	}
	return false
}

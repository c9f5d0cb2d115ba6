package envelope

import (
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/model/requestresponse"
	"fmt"
	"sort"
	"strings"
)

// Plan : запрос с назначенными идентификаторами документов, готовый к
// получению PDF и координат полей. Все варианты маршрутов сводятся к нему
type Plan struct {
	EmailSubject         string
	Status               model.EnvelopeStatus
	Supplementary        []SupplementaryDocument
	SupplementarySources []model.DocumentSource
	Forms                []FormDocument
	Generate             []model.GenerateFormRequest
}

// PlanCreateRequest : клиентские PDF нумеруются первыми, формы после них
func PlanCreateRequest(req *requestresponse.CreateEnvelopeRequest) *Plan {
	pdfIDs, formIDs := AssignDocumentIDs(len(req.AdditionalPDFs), len(req.Forms))

	plan := &Plan{
		EmailSubject:         req.EmailSubject,
		Status:               req.Status,
		Supplementary:        make([]SupplementaryDocument, 0, len(req.AdditionalPDFs)),
		SupplementarySources: make([]model.DocumentSource, 0, len(req.AdditionalPDFs)),
		Forms:                make([]FormDocument, 0, len(req.Forms)),
		Generate:             make([]model.GenerateFormRequest, 0, len(req.Forms)),
	}

	for i, pdf := range req.AdditionalPDFs {
		documentID := pdfIDs[i]
		plan.SupplementarySources = append(plan.SupplementarySources, model.DocumentSource{
			DocumentID:    documentID,
			Origin:        model.OriginClientSupplied,
			ContentBase64: pdf.DocumentBase64,
			DisplayName:   pdf.DocumentName,
		})

		document := SupplementaryDocument{DocumentID: documentID}
		for _, signer := range pdf.Signers {
			document.Signers = append(document.Signers, explicitSigner(signer))
		}
		plan.Supplementary = append(plan.Supplementary, document)
	}

	for i, form := range req.Forms {
		documentID := formIDs[i]
		document := FormDocument{
			DocumentID: documentID,
			FormID:     form.FormID.String(),
		}
		for _, signer := range form.Signers {
			document.Signers = append(document.Signers, SignerDeclaration{
				Email: signer.Email,
				Name:  fullName(signer.FirstName, signer.LastName),
				Roles: []string{signer.Role},
			})
		}
		for _, cc := range form.CC {
			document.CarbonCopies = append(document.CarbonCopies, CarbonCopyDeclaration{Name: cc.Name, Email: cc.Email})
		}
		plan.Forms = append(plan.Forms, document)
		plan.Generate = append(plan.Generate, model.GenerateFormRequest{
			FormID:     form.FormID.String(),
			DocumentID: documentID,
			Fields:     fieldValues(form.FormFields),
		})
	}

	return plan
}

// PlanLinkedRequest : документы уже пронумерованы клиентом. Получатель документа
// без ролей получает все поля этого документа
func PlanLinkedRequest(req *requestresponse.CreateLinkedEnvelopeRequest) *Plan {
	plan := &Plan{
		EmailSubject: req.EmailSubject,
		Status:       req.Status,
		Forms:        make([]FormDocument, 0, len(req.Forms)),
		Generate:     make([]model.GenerateFormRequest, 0, len(req.Forms)),
	}

	for _, form := range req.Forms {
		document := FormDocument{
			DocumentID: form.DocumentID,
			FormID:     form.FormID.String(),
		}
		for _, recipient := range req.Recipients {
			for _, link := range recipient.Documents {
				if link.DocumentID != form.DocumentID {
					continue
				}
				document.Signers = append(document.Signers, SignerDeclaration{
					Email:       recipient.Email,
					Name:        recipient.Name,
					Roles:       link.Roles,
					AllRoles:    len(link.Roles) == 0,
					Attachments: recipient.Attachments,
				})
			}
		}
		plan.Forms = append(plan.Forms, document)
		plan.Generate = append(plan.Generate, model.GenerateFormRequest{
			FormID:     form.FormID.String(),
			DocumentID: form.DocumentID,
			Fields:     form.FormFields,
		})
	}

	return plan
}

// UniqueFormIDs : координаты полей запрашиваются один раз на форму
func (p *Plan) UniqueFormIDs() []string {
	seen := make(map[string]struct{}, len(p.Forms))
	ids := make([]string, 0, len(p.Forms))
	for _, form := range p.Forms {
		if _, ok := seen[form.FormID]; ok {
			continue
		}
		seen[form.FormID] = struct{}{}
		ids = append(ids, form.FormID)
	}
	return ids
}

// ApplyFieldLocations : раздаёт координаты документам по formId.
// Формы без координат остаются с nil
func (p *Plan) ApplyFieldLocations(locations map[string]*model.FieldLocationBundle) {
	for i := range p.Forms {
		p.Forms[i].Locations = locations[p.Forms[i].FormID]
	}
}

func (p *Plan) SupplementaryIDs() []string {
	ids := make([]string, 0, len(p.Supplementary))
	for _, document := range p.Supplementary {
		ids = append(ids, document.DocumentID)
	}
	return ids
}

// Compose : агрегирует подписантов и копии и собирает конверт.
// Каждой форме плана должен соответствовать сгенерированный PDF
func (p *Plan) Compose(generated []model.GeneratedDocument) (*model.EnvelopeDefinition, error) {
	byDocument := make(map[string]model.GeneratedDocument, len(generated))
	for _, document := range generated {
		byDocument[document.DocumentID] = document
	}

	sources := make([]model.DocumentSource, 0, len(p.Forms))
	for _, form := range p.Forms {
		document, ok := byDocument[form.DocumentID]
		if !ok {
			return nil, fmt.Errorf("%w: нет PDF для формы %s (документ %s)", model.ErrUpstreamGeneration, form.FormID, form.DocumentID)
		}
		sources = append(sources, model.DocumentSource{
			DocumentID:    form.DocumentID,
			Origin:        model.OriginGeneratedForm,
			ContentBase64: document.PDFBase64,
			DisplayName:   document.FileName,
		})
	}

	signers := AggregateSigners(p.Forms, p.Supplementary)
	carbonCopies := ResolveCarbonCopies(p.Forms, p.SupplementaryIDs(), len(signers))

	return ComposeEnvelope(Composition{
		EmailSubject:  p.EmailSubject,
		Status:        p.Status,
		Supplementary: p.SupplementarySources,
		Generated:     sources,
		Signers:       signers,
		CarbonCopies:  carbonCopies,
	})
}

func explicitSigner(signer requestresponse.AdditionalPDFSigner) ExplicitSigner {
	result := ExplicitSigner{
		Email: signer.Email,
		Name:  fullName(signer.FirstName, signer.LastName),
	}
	if signer.SignLocations == nil {
		return result
	}
	result.SignHere = explicitLocations(signer.SignLocations.SignHere)
	result.DateSigned = explicitLocations(signer.SignLocations.DateSigned)
	result.InitialHere = explicitLocations(signer.SignLocations.InitialHere)
	result.Attachments = signer.SignLocations.AttachmentTabs
	return result
}

func explicitLocations(locations []requestresponse.SignLocation) []ExplicitLocation {
	result := make([]ExplicitLocation, 0, len(locations))
	for _, location := range locations {
		result = append(result, ExplicitLocation{
			X:          location.XPosition,
			Y:          location.YPosition,
			PageNumber: location.PageNumber,
		})
	}
	return result
}

func fullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

// fieldValues : порядок полей фиксируется по имени, чтобы запрос к движку был воспроизводимым
func fieldValues(fields map[string]string) []model.FormFieldValue {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]model.FormFieldValue, 0, len(names))
	for _, name := range names {
		values = append(values, model.FormFieldValue{FieldName: name, FieldValue: fields[name]})
	}
	return values
}

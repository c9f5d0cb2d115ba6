package envelope

import (
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/model/requestresponse"
	"fmt"
	"regexp"
	"strings"
)

var numericID = regexp.MustCompile(`^\d+$`)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateStatus(status model.EnvelopeStatus) error {
	switch status {
	case "", model.EnvelopeStatusCreated, model.EnvelopeStatusSent:
		return nil
	default:
		return model.NewValidationError(fmt.Sprintf("статус должен быть created или sent, получено %q", status))
	}
}

// ValidateCreateRequest : проверка запроса до любых внешних вызовов
func ValidateCreateRequest(req *requestresponse.CreateEnvelopeRequest) error {
	if req == nil {
		return model.NewValidationError("пустое тело запроса")
	}
	if blank(req.EmailSubject) {
		return model.NewValidationError("emailSubject обязателен")
	}
	if len(req.Forms) == 0 && len(req.AdditionalPDFs) == 0 {
		return model.NewValidationError("нужна хотя бы одна форма или дополнительный PDF")
	}
	if err := validateStatus(req.Status); err != nil {
		return err
	}

	for i, form := range req.Forms {
		if blank(form.FormID.String()) {
			return model.NewValidationError(fmt.Sprintf("forms[%d]: formId обязателен", i))
		}
		for j, signer := range form.Signers {
			switch {
			case blank(signer.Email):
				return model.NewValidationError(fmt.Sprintf("forms[%d].signers[%d]: email обязателен", i, j))
			case blank(signer.FirstName):
				return model.NewValidationError(fmt.Sprintf("forms[%d].signers[%d]: firstName обязателен", i, j))
			case blank(signer.LastName):
				return model.NewValidationError(fmt.Sprintf("forms[%d].signers[%d]: lastName обязателен", i, j))
			case blank(signer.Role):
				return model.NewValidationError(fmt.Sprintf("forms[%d].signers[%d]: role обязателен", i, j))
			}
		}
		for j, cc := range form.CC {
			if blank(cc.Email) {
				return model.NewValidationError(fmt.Sprintf("forms[%d].cc[%d]: email обязателен", i, j))
			}
		}
	}

	for i, pdf := range req.AdditionalPDFs {
		if blank(pdf.DocumentBase64) {
			return model.NewValidationError(fmt.Sprintf("additionalPDFs[%d]: documentBase64 обязателен", i))
		}
		for j, signer := range pdf.Signers {
			switch {
			case blank(signer.Email):
				return model.NewValidationError(fmt.Sprintf("additionalPDFs[%d].signers[%d]: email обязателен", i, j))
			case blank(signer.FirstName):
				return model.NewValidationError(fmt.Sprintf("additionalPDFs[%d].signers[%d]: firstName обязателен", i, j))
			case blank(signer.LastName):
				return model.NewValidationError(fmt.Sprintf("additionalPDFs[%d].signers[%d]: lastName обязателен", i, j))
			case signer.SignLocations == nil:
				return model.NewValidationError(fmt.Sprintf("additionalPDFs[%d].signers[%d]: signLocations обязателен", i, j))
			}
		}
	}

	return nil
}

// ValidateLinkedRequest : идентификаторы документов задаёт клиент, поэтому
// они должны быть уникальными числовыми строками, а ссылки получателей
// указывать только на существующие документы
func ValidateLinkedRequest(req *requestresponse.CreateLinkedEnvelopeRequest) error {
	if req == nil || len(req.Forms) == 0 || len(req.Recipients) == 0 {
		return model.NewValidationError("нужны forms и recipientDetails")
	}
	if blank(req.EmailSubject) {
		return model.NewValidationError("emailSubject обязателен")
	}
	if err := validateStatus(req.Status); err != nil {
		return err
	}

	documentIDs := make(map[string]struct{}, len(req.Forms))
	for i, form := range req.Forms {
		if blank(form.DocumentID) {
			return model.NewValidationError(fmt.Sprintf("forms[%d]: documentId должен быть непустой строкой", i))
		}
		if numericID.MatchString(form.DocumentID) == false {
			return model.NewValidationError(fmt.Sprintf("forms[%d]: documentId должен быть числовой строкой (например \"1\")", i))
		}
		if _, ok := documentIDs[form.DocumentID]; ok {
			return model.NewValidationError(fmt.Sprintf("forms[%d]: documentId %s повторяется", i, form.DocumentID))
		}
		if blank(form.FormID.String()) {
			return model.NewValidationError(fmt.Sprintf("forms[%d]: formId обязателен", i))
		}
		documentIDs[form.DocumentID] = struct{}{}
	}

	for i, recipient := range req.Recipients {
		if blank(recipient.Email) || blank(recipient.Name) {
			return model.NewValidationError(fmt.Sprintf("recipientDetails[%d]: email и name обязательны", i))
		}
		if len(recipient.Documents) == 0 {
			return model.NewValidationError(fmt.Sprintf("recipientDetails[%d]: нужен хотя бы один документ", i))
		}
		for _, link := range recipient.Documents {
			if _, ok := documentIDs[link.DocumentID]; !ok {
				return model.NewValidationError(fmt.Sprintf("recipientDetails[%d]: документ %q не найден", i, link.DocumentID))
			}
		}
		for _, attachment := range recipient.Attachments {
			if _, ok := documentIDs[attachment.DocumentID]; !ok {
				return model.NewValidationError(fmt.Sprintf("recipientDetails[%d]: документ вложения %q не найден", i, attachment.DocumentID))
			}
		}
	}

	return nil
}

package envelope

import (
	"envelope-orchestrator/internal/model"
	"log"
	"strconv"
	"strings"
)

// SignerDeclaration : подписант формы. Вкладки берутся из координат полей его ролей
type SignerDeclaration struct {
	Email string
	Name  string
	Roles []string
	// AllRoles : подписанту достаются все поля документа независимо от роли
	AllRoles    bool
	Attachments []model.AttachmentTab
}

// FormDocument : документ, сгенерированный из формы движка
type FormDocument struct {
	DocumentID string
	FormID     string
	// Locations : nil, если координаты полей получить не удалось
	Locations    *model.FieldLocationBundle
	Signers      []SignerDeclaration
	CarbonCopies []CarbonCopyDeclaration
}

// ExplicitLocation : координата, заданная клиентом для своего PDF
type ExplicitLocation struct {
	X          float64
	Y          float64
	PageNumber string
}

type ExplicitSigner struct {
	Email       string
	Name        string
	SignHere    []ExplicitLocation
	DateSigned  []ExplicitLocation
	InitialHere []ExplicitLocation
	Attachments []model.AttachmentTab
}

// SupplementaryDocument : клиентский PDF с явными координатами подписантов
type SupplementaryDocument struct {
	DocumentID string
	Signers    []ExplicitSigner
}

// NormalizeEmail : ключ слияния получателей, регистр адреса не учитывается
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// signerRegistry : подписанты одного вызова агрегации в порядке первого появления
type signerRegistry struct {
	order []*model.Signer
	index map[string]*model.Signer
}

func newSignerRegistry() *signerRegistry {
	return &signerRegistry{index: make(map[string]*model.Signer)}
}

func (r *signerRegistry) add(email, name string, tabs model.Tabs, attachments []model.AttachmentTab) {
	key := NormalizeEmail(email)

	existing, ok := r.index[key]
	if ok == false {
		signer := &model.Signer{
			Email:       email,
			Name:        name,
			RecipientID: strconv.Itoa(len(r.order) + 1),
			Tabs:        tabs,
		}
		if len(attachments) > 0 {
			signer.Tabs.AttachmentTabs = append(signer.Tabs.AttachmentTabs, attachments...)
		}
		r.index[key] = signer
		r.order = append(r.order, signer)
		return
	}

	existing.Tabs.SignHereTabs = append(existing.Tabs.SignHereTabs, tabs.SignHereTabs...)
	existing.Tabs.DateSignedTabs = append(existing.Tabs.DateSignedTabs, tabs.DateSignedTabs...)
	existing.Tabs.InitialHereTabs = append(existing.Tabs.InitialHereTabs, tabs.InitialHereTabs...)
}

func (r *signerRegistry) signers() []model.Signer {
	result := make([]model.Signer, 0, len(r.order))
	for _, signer := range r.order {
		result = append(result, *signer)
	}
	return result
}

// AggregateSigners : сводит вкладки всех документов в одну запись на подписанта.
// Сначала обрабатываются формы, затем клиентские PDF. recipientId назначается
// в порядке первого появления адреса, повторные появления только дописывают вкладки
func AggregateSigners(forms []FormDocument, supplementary []SupplementaryDocument) []model.Signer {
	registry := newSignerRegistry()

	for _, form := range forms {
		if form.Locations == nil && len(form.Signers) > 0 {
			log.Printf("[SignerAggregator] координаты полей формы %s (документ %s) не найдены, вкладки подписантов будут пустыми",
				form.FormID, form.DocumentID)
		}

		for _, declaration := range form.Signers {
			roles := declaration.Roles
			if declaration.AllRoles {
				roles = form.Locations.Roles()
			}
			tabs := MapFieldLocations(form.Locations, form.DocumentID, roles...)
			registry.add(declaration.Email, declaration.Name, tabs, declaration.Attachments)
		}
	}

	for _, document := range supplementary {
		for _, signer := range document.Signers {
			registry.add(signer.Email, signer.Name, explicitTabs(document.DocumentID, signer), signer.Attachments)
		}
	}

	return registry.signers()
}

func explicitTabs(documentID string, signer ExplicitSigner) model.Tabs {
	tabs := model.NewTabs()
	for _, location := range signer.SignHere {
		tabs.SignHereTabs = append(tabs.SignHereTabs, Placement(documentID, location.PageNumber, location.X, location.Y))
	}
	for _, location := range signer.DateSigned {
		tabs.DateSignedTabs = append(tabs.DateSignedTabs, Placement(documentID, location.PageNumber, location.X, location.Y))
	}
	for _, location := range signer.InitialHere {
		tabs.InitialHereTabs = append(tabs.InitialHereTabs, Placement(documentID, location.PageNumber, location.X, location.Y))
	}
	return tabs
}

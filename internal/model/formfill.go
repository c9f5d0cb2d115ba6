package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// TabKind : вид вкладки, к которому относится координата поля
type TabKind string

const (
	TabKindSign    TabKind = "sign"
	TabKindDate    TabKind = "date"
	TabKindInitial TabKind = "initial"
)

// FlexString : идентификатор, который движок форм отдаёт то числом, то строкой.
// Сравнение идентификаторов форм и документов всегда идёт по строковому виду
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FieldLocation : координата поля подписи в системе координат провайдера
type FieldLocation struct {
	XCoord float64 `json:"DocusignXCoord"`
	YCoord float64 `json:"DocusignYCoord"`
	Page   int     `json:"Page"`
	Role   string  `json:"FieldRole"`
}

// PageNumber : номер страницы в строковом виде, как его ждёт провайдер
func (l FieldLocation) PageNumber() string {
	return strconv.Itoa(l.Page)
}

// FieldLocationBundle : координаты всех полей одной формы, сгруппированные по виду вкладки
type FieldLocationBundle struct {
	FormID             FlexString      `json:"FormId"`
	SignFields         []FieldLocation `json:"SignFields"`
	SignDateFields     []FieldLocation `json:"SignDateFields"`
	SignInitialsFields []FieldLocation `json:"SignInitialsFields"`
}

// Locations : координаты для указанного вида вкладки
func (b *FieldLocationBundle) Locations(kind TabKind) []FieldLocation {
	if b == nil {
		return nil
	}
	switch kind {
	case TabKindSign:
		return b.SignFields
	case TabKindDate:
		return b.SignDateFields
	case TabKindInitial:
		return b.SignInitialsFields
	default:
		return nil
	}
}

// Roles : все роли, встречающиеся в наборе, в порядке первого появления
func (b *FieldLocationBundle) Roles() []string {
	if b == nil {
		return nil
	}
	seen := make(map[string]struct{})
	roles := make([]string, 0)
	for _, kind := range []TabKind{TabKindSign, TabKindDate, TabKindInitial} {
		for _, location := range b.Locations(kind) {
			if _, ok := seen[location.Role]; ok {
				continue
			}
			seen[location.Role] = struct{}{}
			roles = append(roles, location.Role)
		}
	}
	return roles
}

type FormFieldValue struct {
	FieldName  string `json:"FieldName"`
	FieldValue string `json:"FieldValue"`
}

// GenerateFormRequest : одна форма для генерации PDF
type GenerateFormRequest struct {
	FormID     string
	DocumentID string
	Fields     []FormFieldValue
}

// GeneratedDocument : PDF, сгенерированный движком форм
type GeneratedDocument struct {
	DocumentID string
	PDFBase64  string
	FileName   string
}

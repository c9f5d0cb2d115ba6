package envelope

import (
	"envelope-orchestrator/internal/model"
	"sort"
	"strings"
)

const envelopeStatusCompleted = "completed"

// служебные документы провайдера, которые никто не подписывает
var nonContentDocuments = map[string]struct{}{
	"certificate": {},
	"summary":     {},
}

type rawTabKind int

const (
	rawTabSignHere rawTabKind = iota
	rawTabDateSigned
	rawTabOther
)

type kindedTab struct {
	kind rawTabKind
	tab  model.RawTab
}

func (t kindedTab) completed() bool {
	switch t.kind {
	case rawTabSignHere:
		return t.tab.Status == "signed"
	case rawTabDateSigned:
		return strings.TrimSpace(t.tab.Value) != ""
	default:
		return t.tab.Status == "signed" || strings.TrimSpace(t.tab.Value) != ""
	}
}

// signerSnapshot : все вкладки одного адреса, даже если провайдер вернул его несколькими получателями
type signerSnapshot struct {
	email          string
	name           string
	signedDateTime string
	tabs           []kindedTab
}

func flattenTabs(tabs *model.RawTabs) []kindedTab {
	if tabs == nil {
		return nil
	}
	groups := []struct {
		kind rawTabKind
		tabs []model.RawTab
	}{
		{rawTabSignHere, tabs.SignHereTabs},
		{rawTabOther, tabs.InitialHereTabs},
		{rawTabDateSigned, tabs.DateSignedTabs},
		{rawTabOther, tabs.TextTabs},
		{rawTabOther, tabs.CheckboxTabs},
	}

	result := make([]kindedTab, 0)
	for _, group := range groups {
		for _, tab := range group.tabs {
			result = append(result, kindedTab{kind: group.kind, tab: tab})
		}
	}
	return result
}

func groupSigners(recipients *model.RawRecipients) []*signerSnapshot {
	order := make([]*signerSnapshot, 0)
	index := make(map[string]*signerSnapshot)
	if recipients == nil {
		return order
	}

	for _, signer := range recipients.Signers {
		key := NormalizeEmail(signer.Email)
		snapshot, ok := index[key]
		if !ok {
			snapshot = &signerSnapshot{email: signer.Email, name: signer.Name}
			index[key] = snapshot
			order = append(order, snapshot)
		}
		if snapshot.signedDateTime == "" {
			snapshot.signedDateTime = signer.SignedDateTime
		}
		snapshot.tabs = append(snapshot.tabs, flattenTabs(signer.Tabs)...)
	}
	return order
}

func reduceSigner(snapshot *signerSnapshot, documents map[string]model.RawDocument) model.SignerStatus {
	status := model.SignerStatus{
		Email:     snapshot.email,
		Name:      snapshot.name,
		Documents: make([]model.SignerDocument, 0),
	}

	documentOrder := make([]string, 0)
	byDocument := make(map[string][]kindedTab)
	for _, tab := range snapshot.tabs {
		id := tab.tab.DocumentID
		if _, ok := byDocument[id]; !ok {
			documentOrder = append(documentOrder, id)
		}
		byDocument[id] = append(byDocument[id], tab)
	}

	for _, documentID := range documentOrder {
		document, ok := documents[documentID]
		if !ok {
			continue
		}

		tabs := byDocument[documentID]
		signed := len(tabs) > 0
		for _, tab := range tabs {
			if tab.completed() == false {
				signed = false
				break
			}
		}

		entry := model.SignerDocument{
			DocumentID:   document.DocumentID,
			DocumentName: document.Name,
			Status:       model.DocumentNotSigned,
		}
		if signed {
			entry.Status = model.DocumentSigned
			entry.SignedDateTime = snapshot.signedDateTime
			for _, tab := range tabs {
				if tab.tab.SignedDateTime != "" {
					entry.SignedDateTime = tab.tab.SignedDateTime
					break
				}
			}
			status.SignedCount++
		}

		status.Documents = append(status.Documents, entry)
		status.TotalDocuments++
	}

	return status
}

// ReduceSigningStatus : сводит снимок конверта, получателей и документов
// в прогресс по подписантам и хронологию. Состояние провайдера не меняется
func ReduceSigningStatus(envelopeID string, envelope *model.RawEnvelope, recipients *model.RawRecipients, documents *model.RawDocuments) model.EnvelopeSignersStatus {
	contentDocuments := make(map[string]model.RawDocument)
	if documents != nil {
		for _, document := range documents.EnvelopeDocuments {
			if _, skip := nonContentDocuments[document.DocumentID]; skip {
				continue
			}
			contentDocuments[document.DocumentID] = document
		}
	}

	snapshots := groupSigners(recipients)
	signers := make([]model.SignerStatus, 0, len(snapshots))
	for _, snapshot := range snapshots {
		signers = append(signers, reduceSigner(snapshot, contentDocuments))
	}
	sort.SliceStable(signers, func(i, j int) bool {
		return signers[i].Email < signers[j].Email
	})

	if envelope == nil {
		envelope = &model.RawEnvelope{}
	}

	return model.EnvelopeSignersStatus{
		EnvelopeID: envelopeID,
		Status:     envelope.Status,
		Timeline:   BuildTimeline(envelope, signers),
		Signers:    signers,
	}
}

// BuildTimeline : created → sent → delivered → signed → completed
func BuildTimeline(envelope *model.RawEnvelope, signers []model.SignerStatus) []model.TimelineEvent {
	timeline := []model.TimelineEvent{
		timestampEvent(model.TimelineCreated, envelope.CreatedDateTime),
		timestampEvent(model.TimelineSent, envelope.SentDateTime),
		timestampEvent(model.TimelineDelivered, envelope.DeliveredDateTime),
	}

	signedTimes := make([]string, 0)
	allCompleted := true
	anySigned := false
	for _, signer := range signers {
		if signer.TotalDocuments == 0 || signer.SignedCount != signer.TotalDocuments {
			allCompleted = false
		}
		if signer.SignedCount > 0 {
			anySigned = true
		}
		for _, document := range signer.Documents {
			if document.Status == model.DocumentSigned && document.SignedDateTime != "" {
				signedTimes = append(signedTimes, document.SignedDateTime)
			}
		}
	}
	sort.Strings(signedTimes)

	signedEvent := model.TimelineEvent{Status: model.TimelineSigned}
	switch {
	case allCompleted:
		signedEvent.Completed = true
		if len(signedTimes) > 0 {
			signedEvent.DateTime = signedTimes[len(signedTimes)-1]
		}
	case anySigned && len(signedTimes) > 0:
		signedEvent.DateTime = signedTimes[0]
	}
	timeline = append(timeline, signedEvent)

	completedEvent := model.TimelineEvent{Status: model.TimelineCompleted}
	if envelope.Status == envelopeStatusCompleted {
		completedEvent.Completed = true
		completedEvent.DateTime = envelope.CompletedDateTime
		if completedEvent.DateTime == "" {
			completedEvent.DateTime = envelope.StatusChangedDateTime
		}
	}

	return append(timeline, completedEvent)
}

func timestampEvent(status model.TimelineStatus, timestamp string) model.TimelineEvent {
	return model.TimelineEvent{
		Status:    status,
		DateTime:  timestamp,
		Completed: timestamp != "",
	}
}

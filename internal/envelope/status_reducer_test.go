package envelope_test

import (
	"envelope-orchestrator/internal/envelope"
	"envelope-orchestrator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const (
	t1 = "2025-08-20T10:00:00.0000000Z"
	t2 = "2025-08-21T11:30:00.0000000Z"
)

func contentDocuments() *model.RawDocuments {
	return &model.RawDocuments{
		EnvelopeID: "env-1",
		EnvelopeDocuments: []model.RawDocument{
			{DocumentID: "1", Name: "Account Agreement", Type: "content"},
			{DocumentID: "2", Name: "Beneficiary Form", Type: "content"},
			{DocumentID: "certificate", Name: "Summary", Type: "summary"},
		},
	}
}

func timelineEvent(t *testing.T, status model.EnvelopeSignersStatus, name model.TimelineStatus) model.TimelineEvent {
	t.Helper()
	for _, event := range status.Timeline {
		if event.Status == name {
			return event
		}
	}
	require.Failf(t, "нет события", "событие %s отсутствует в хронологии", name)
	return model.TimelineEvent{}
}

func TestReduceSigningStatus_PendingTabKeepsDocumentUnsigned(t *testing.T) {
	recipients := &model.RawRecipients{Signers: []model.RawSigner{
		{
			Email: "a@example.com",
			Name:  "Ann",
			Tabs: &model.RawTabs{
				SignHereTabs: []model.RawTab{
					{DocumentID: "1", Status: "signed", SignedDateTime: t1},
					{DocumentID: "1", Status: "active"},
				},
			},
		},
	}}

	status := envelope.ReduceSigningStatus("env-1", &model.RawEnvelope{Status: "sent"}, recipients, contentDocuments())

	require.Len(t, status.Signers, 1)
	signer := status.Signers[0]
	assert.Equal(t, 0, signer.SignedCount)
	assert.Equal(t, 1, signer.TotalDocuments)
	require.Len(t, signer.Documents, 1)
	assert.Equal(t, "1", signer.Documents[0].DocumentID)
	assert.Equal(t, "Account Agreement", signer.Documents[0].DocumentName)
	assert.Equal(t, model.DocumentNotSigned, signer.Documents[0].Status)
	assert.Empty(t, signer.Documents[0].SignedDateTime)
}

func TestReduceSigningStatus_TabCompletionRules(t *testing.T) {
	tests := []struct {
		name       string
		tabs       *model.RawTabs
		wantSigned bool
	}{
		{
			name:       "signHere подписан",
			tabs:       &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: "1", Status: "signed"}}},
			wantSigned: true,
		},
		{
			name:       "signHere со значением, но без статуса",
			tabs:       &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: "1", Value: "x"}}},
			wantSigned: false,
		},
		{
			name:       "dateSigned со значением",
			tabs:       &model.RawTabs{DateSignedTabs: []model.RawTab{{DocumentID: "1", Value: "8/20/2025"}}},
			wantSigned: true,
		},
		{
			name:       "dateSigned с пробелами",
			tabs:       &model.RawTabs{DateSignedTabs: []model.RawTab{{DocumentID: "1", Value: "   ", Status: "signed"}}},
			wantSigned: false,
		},
		{
			name:       "initialHere со значением",
			tabs:       &model.RawTabs{InitialHereTabs: []model.RawTab{{DocumentID: "1", Value: "AL"}}},
			wantSigned: true,
		},
		{
			name:       "текстовое поле подписано",
			tabs:       &model.RawTabs{TextTabs: []model.RawTab{{DocumentID: "1", Status: "signed"}}},
			wantSigned: true,
		},
		{
			name:       "пустой флажок",
			tabs:       &model.RawTabs{CheckboxTabs: []model.RawTab{{DocumentID: "1"}}},
			wantSigned: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipients := &model.RawRecipients{Signers: []model.RawSigner{{Email: "a@example.com", Tabs: tt.tabs}}}

			status := envelope.ReduceSigningStatus("env-1", &model.RawEnvelope{}, recipients, contentDocuments())

			require.Len(t, status.Signers, 1)
			require.Len(t, status.Signers[0].Documents, 1)
			assert.Equal(t, tt.wantSigned, status.Signers[0].Documents[0].Status == model.DocumentSigned)
		})
	}
}

func TestReduceSigningStatus_DocumentsAndSignedDateTime(t *testing.T) {
	recipients := &model.RawRecipients{Signers: []model.RawSigner{
		{
			Email:          "b@example.com",
			Name:           "Bob",
			SignedDateTime: t2,
			Tabs: &model.RawTabs{
				SignHereTabs: []model.RawTab{
					{DocumentID: "2", Status: "signed"},
					{DocumentID: "1", Status: "signed", SignedDateTime: t1},
					{DocumentID: "certificate", Status: "signed"},
					{DocumentID: "77", Status: "signed"},
				},
			},
		},
	}}

	status := envelope.ReduceSigningStatus("env-1", &model.RawEnvelope{}, recipients, contentDocuments())

	require.Len(t, status.Signers, 1)
	signer := status.Signers[0]
	assert.Equal(t, 2, signer.TotalDocuments)
	assert.Equal(t, 2, signer.SignedCount)
	assert.Equal(t, []model.SignerDocument{
		{DocumentID: "2", DocumentName: "Beneficiary Form", Status: model.DocumentSigned, SignedDateTime: t2},
		{DocumentID: "1", DocumentName: "Account Agreement", Status: model.DocumentSigned, SignedDateTime: t1},
	}, signer.Documents)
}

func TestReduceSigningStatus_SignersSortedAndMergedByEmail(t *testing.T) {
	recipients := &model.RawRecipients{Signers: []model.RawSigner{
		{Email: "zed@example.com", Name: "Zed", Tabs: &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: "1", Status: "signed"}}}},
		{Email: "amy@example.com", Name: "Amy", Tabs: &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: "1", Status: "signed"}}}},
		{Email: "AMY@example.com", Name: "Amy again", Tabs: &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: "2", Status: "sent"}}}},
		{Email: "nobody@example.com", Name: "No tabs"},
	}}

	status := envelope.ReduceSigningStatus("env-1", &model.RawEnvelope{}, recipients, contentDocuments())

	require.Len(t, status.Signers, 3)
	assert.Equal(t, "amy@example.com", status.Signers[0].Email)
	assert.Equal(t, "nobody@example.com", status.Signers[1].Email)
	assert.Equal(t, "zed@example.com", status.Signers[2].Email)

	amy := status.Signers[0]
	assert.Equal(t, 2, amy.TotalDocuments)
	assert.Equal(t, 1, amy.SignedCount)

	nobody := status.Signers[1]
	assert.Equal(t, 0, nobody.TotalDocuments)
	assert.NotNil(t, nobody.Documents)
	assert.Empty(t, nobody.Documents)
}

func TestReduceSigningStatus_Timeline(t *testing.T) {
	signedTabs := func(documentID, at string) *model.RawTabs {
		return &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: documentID, Status: "signed", SignedDateTime: at}}}
	}

	t.Run("Часть подписантов подписала", func(t *testing.T) {
		recipients := &model.RawRecipients{Signers: []model.RawSigner{
			{Email: "a@example.com", Tabs: signedTabs("1", t1)},
			{Email: "b@example.com", Tabs: &model.RawTabs{SignHereTabs: []model.RawTab{{DocumentID: "1", Status: "active"}}}},
		}}
		envelopeState := &model.RawEnvelope{
			Status:          "sent",
			CreatedDateTime: "2025-08-19T09:00:00Z",
			SentDateTime:    "2025-08-19T09:05:00Z",
		}

		status := envelope.ReduceSigningStatus("env-1", envelopeState, recipients, contentDocuments())

		require.Len(t, status.Timeline, 5)
		assert.Equal(t, model.TimelineEvent{Status: model.TimelineCreated, DateTime: "2025-08-19T09:00:00Z", Completed: true}, status.Timeline[0])
		assert.Equal(t, model.TimelineEvent{Status: model.TimelineSent, DateTime: "2025-08-19T09:05:00Z", Completed: true}, status.Timeline[1])
		assert.Equal(t, model.TimelineEvent{Status: model.TimelineDelivered}, status.Timeline[2])
		assert.Equal(t, model.TimelineEvent{Status: model.TimelineSigned, DateTime: t1}, timelineEvent(t, status, model.TimelineSigned))
		assert.Equal(t, model.TimelineEvent{Status: model.TimelineCompleted}, timelineEvent(t, status, model.TimelineCompleted))
	})

	t.Run("Все подписали", func(t *testing.T) {
		recipients := &model.RawRecipients{Signers: []model.RawSigner{
			{Email: "a@example.com", Tabs: signedTabs("1", t1)},
			{Email: "b@example.com", Tabs: signedTabs("2", t2)},
		}}
		envelopeState := &model.RawEnvelope{Status: "completed", CompletedDateTime: t2}

		status := envelope.ReduceSigningStatus("env-1", envelopeState, recipients, contentDocuments())

		assert.Equal(t, model.TimelineEvent{Status: model.TimelineSigned, DateTime: t2, Completed: true}, timelineEvent(t, status, model.TimelineSigned))
		assert.Equal(t, model.TimelineEvent{Status: model.TimelineCompleted, DateTime: t2, Completed: true}, timelineEvent(t, status, model.TimelineCompleted))
		assert.Equal(t, "completed", status.Status)
		assert.Equal(t, "env-1", status.EnvelopeID)
	})

	t.Run("Завершение без completedDateTime", func(t *testing.T) {
		envelopeState := &model.RawEnvelope{Status: "completed", StatusChangedDateTime: t1}

		status := envelope.ReduceSigningStatus("env-1", envelopeState, &model.RawRecipients{}, contentDocuments())

		assert.Equal(t, model.TimelineEvent{Status: model.TimelineCompleted, DateTime: t1, Completed: true}, timelineEvent(t, status, model.TimelineCompleted))
	})

	t.Run("Подписант без документов", func(t *testing.T) {
		recipients := &model.RawRecipients{Signers: []model.RawSigner{
			{Email: "a@example.com", Tabs: signedTabs("1", t1)},
			{Email: "b@example.com"},
		}}

		status := envelope.ReduceSigningStatus("env-1", &model.RawEnvelope{}, recipients, contentDocuments())

		assert.Equal(t, model.TimelineEvent{Status: model.TimelineSigned, DateTime: t1}, timelineEvent(t, status, model.TimelineSigned))
	})
}

func TestReduceSigningStatus_NilInputs(t *testing.T) {
	status := envelope.ReduceSigningStatus("env-1", nil, nil, nil)

	assert.Equal(t, "env-1", status.EnvelopeID)
	assert.NotNil(t, status.Signers)
	assert.Empty(t, status.Signers)
	require.Len(t, status.Timeline, 5)
	assert.True(t, timelineEvent(t, status, model.TimelineSigned).Completed)
	assert.False(t, timelineEvent(t, status, model.TimelineCompleted).Completed)
}

package record

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	datasetID types.DatasetID = "5a8ee1d5-2f6f-4c3b-a8a7-0e1b7d3c9f10"
	recordID  types.RecordID  = "05caae8d-6d4b-4a47-9cf0-53b0c1d1f6a2"
)

// fakeClient records every call in order and returns canned answers
type fakeClient struct {
	calls []string

	dataset   *models.Dataset
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	lastCreate models.CreateRecordInput
	lastUpdate models.UpdateRecordInput
}

func (f *fakeClient) GetDataset(_ context.Context, id types.DatasetID) (*models.Dataset, error) {
	f.calls = append(f.calls, "GetDataset")
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.dataset == nil {
		return &models.Dataset{ID: id, Records: []models.Record{}}, nil
	}
	return f.dataset, nil
}

func (f *fakeClient) CreateRecord(_ context.Context, input models.CreateRecordInput) (*models.RecordSummary, error) {
	f.calls = append(f.calls, "CreateRecord")
	f.lastCreate = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.RecordSummary{ID: recordID, PublicationDate: input.PublicationDate}, nil
}

func (f *fakeClient) UpdateRecord(_ context.Context, input models.UpdateRecordInput) (*models.RecordSummary, error) {
	f.calls = append(f.calls, "UpdateRecord")
	f.lastUpdate = input
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.RecordSummary{ID: input.ID, PublicationDate: input.PublicationDate}, nil
}

func (f *fakeClient) DeleteRecord(_ context.Context, id types.RecordID) (types.RecordID, error) {
	f.calls = append(f.calls, "DeleteRecord")
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return id, nil
}

func newTestService(c *fakeClient) Service {
	return NewService(c, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validData() []models.EntryInput {
	return []models.EntryInput{
		{Category: "gender", CategoryValue: "men", Count: 3},
		{Category: "gender", CategoryValue: "women", Count: 4},
		{Category: "gender", CategoryValue: "others", Count: 0},
	}
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSubmit_CreateInvokesOnlyCreate(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc)

	result, err := svc.Submit(context.Background(), Create{Input: models.CreateRecordInput{
		DatasetID:       datasetID,
		PublicationDate: "2024-05-01",
		Data:            validData(),
	}})
	if err != nil {
		t.Fatalf("Submit(Create) error = %v", err)
	}

	want := []string{"CreateRecord", "GetDataset"}
	if !equalCalls(fc.calls, want) {
		t.Errorf("calls = %v, want %v", fc.calls, want)
	}
	if result.Dataset == nil {
		t.Error("result.Dataset = nil, want refreshed dataset")
	}
	if len(fc.lastCreate.Data) != 3 {
		t.Errorf("create sent %d entries, want 3", len(fc.lastCreate.Data))
	}
}

func TestSubmit_UpdateInvokesOnlyUpdate(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc)

	_, err := svc.Submit(context.Background(), Update{Input: models.UpdateRecordInput{
		ID:              recordID,
		DatasetID:       datasetID,
		PublicationDate: "2024-05-01",
		Data:            validData(),
	}})
	if err != nil {
		t.Fatalf("Submit(Update) error = %v", err)
	}

	want := []string{"UpdateRecord", "GetDataset"}
	if !equalCalls(fc.calls, want) {
		t.Errorf("calls = %v, want %v", fc.calls, want)
	}
	if fc.lastUpdate.ID != recordID {
		t.Errorf("update id = %q, want %q", fc.lastUpdate.ID, recordID)
	}
}

func TestSubmit_Nil(t *testing.T) {
	svc := newTestService(&fakeClient{})
	if _, err := svc.Submit(context.Background(), nil); !errors.Is(err, ErrNilSubmission) {
		t.Errorf("Submit(nil) error = %v, want ErrNilSubmission", err)
	}
}

func TestSubmit_PointerVariants(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, &Create{Input: models.CreateRecordInput{
		DatasetID:       datasetID,
		PublicationDate: "2024-05-01",
		Data:            validData(),
	}}); err != nil {
		t.Fatalf("Submit(*Create) error = %v", err)
	}
	if _, err := svc.Submit(ctx, &Update{Input: models.UpdateRecordInput{
		ID:              recordID,
		DatasetID:       datasetID,
		PublicationDate: "2024-05-01",
		Data:            validData(),
	}}); err != nil {
		t.Fatalf("Submit(*Update) error = %v", err)
	}

	want := []string{"CreateRecord", "GetDataset", "UpdateRecord", "GetDataset"}
	if !equalCalls(fc.calls, want) {
		t.Errorf("calls = %v, want %v", fc.calls, want)
	}

	for _, sub := range []Submission{(*Create)(nil), (*Update)(nil)} {
		if _, err := svc.Submit(ctx, sub); !errors.Is(err, ErrNilSubmission) {
			t.Errorf("Submit(%T nil) error = %v, want ErrNilSubmission", sub, err)
		}
	}
}

func TestMutationFailureSkipsRefresh(t *testing.T) {
	backendErr := errors.New("record not found")
	fc := &fakeClient{deleteErr: backendErr}
	svc := newTestService(fc)

	_, err := svc.DeleteRecord(context.Background(), datasetID, recordID)

	var mutErr *MutationError
	if !errors.As(err, &mutErr) {
		t.Fatalf("DeleteRecord() error = %T %v, want *MutationError", err, err)
	}
	if !errors.Is(err, backendErr) {
		t.Error("MutationError does not wrap the backend error unmodified")
	}
	var refreshErr *RefreshError
	if errors.As(err, &refreshErr) {
		t.Error("mutation failure reported as RefreshError")
	}

	want := []string{"DeleteRecord"}
	if !equalCalls(fc.calls, want) {
		t.Errorf("calls = %v, want %v (no refresh after failed mutation)", fc.calls, want)
	}
}

func TestRefreshFailureAfterSuccessfulWrite(t *testing.T) {
	refreshFail := errors.New("connection reset")
	fc := &fakeClient{getErr: refreshFail}
	svc := newTestService(fc)

	result, err := svc.CreateRecord(context.Background(), models.CreateRecordInput{
		DatasetID:       datasetID,
		PublicationDate: "2024-05-01",
		Data:            validData(),
	})

	if result != nil {
		t.Errorf("CreateRecord() result = %+v, want nil on refresh failure", result)
	}
	var refreshErr *RefreshError
	if !errors.As(err, &refreshErr) {
		t.Fatalf("CreateRecord() error = %T %v, want *RefreshError", err, err)
	}
	if refreshErr.Result == nil || refreshErr.Result.Record == nil || refreshErr.Result.Record.ID != recordID {
		t.Errorf("RefreshError.Result = %+v, want the successful write's summary", refreshErr.Result)
	}
	if !errors.Is(err, refreshFail) {
		t.Error("RefreshError does not wrap the refresh error")
	}
	var mutErr *MutationError
	if errors.As(err, &mutErr) {
		t.Error("refresh failure reported as MutationError")
	}
}

func TestGetDataset_QueryError(t *testing.T) {
	fc := &fakeClient{getErr: errors.New("boom")}
	svc := newTestService(fc)

	_, err := svc.GetDataset(context.Background(), datasetID)

	var qErr *QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("GetDataset() error = %T, want *QueryError", err)
	}
	if qErr.DatasetID != datasetID {
		t.Errorf("QueryError.DatasetID = %q, want %q", qErr.DatasetID, datasetID)
	}
}

func TestValidation(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc)
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.CreateRecordInput
		want  error
	}{
		{"bad dataset id", models.CreateRecordInput{DatasetID: "nope", PublicationDate: "2024-05-01", Data: validData()}, ErrInvalidDatasetID},
		{"bad date", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "05/01/2024", Data: validData()}, ErrInvalidDate},
		{"no entries", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "2024-05-01"}, ErrNoEntries},
		{"negative count", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "2024-05-01",
			Data: []models.EntryInput{{Category: "gender", CategoryValue: "men", Count: -1}}}, ErrNegativeCount},
		{"empty value", models.CreateRecordInput{DatasetID: datasetID, PublicationDate: "2024-05-01",
			Data: []models.EntryInput{{Category: "gender", CategoryValue: " ", Count: 1}}}, ErrEmptyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateRecord(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("CreateRecord() error = %v, want %v", err, tt.want)
			}
		})
	}

	if len(fc.calls) != 0 {
		t.Errorf("invalid input reached the backend: calls = %v", fc.calls)
	}

	if _, err := svc.UpdateRecord(ctx, models.UpdateRecordInput{DatasetID: datasetID, PublicationDate: "2024-05-01", Data: validData()}); !errors.Is(err, ErrInvalidRecordID) {
		t.Errorf("UpdateRecord(no id) error = %v, want ErrInvalidRecordID", err)
	}
	if _, err := svc.DeleteRecord(ctx, "", recordID); !errors.Is(err, ErrInvalidDatasetID) {
		t.Errorf("DeleteRecord(no dataset) error = %v, want ErrInvalidDatasetID", err)
	}
}

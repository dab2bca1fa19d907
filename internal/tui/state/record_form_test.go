package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/tally/internal/converters"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/services/record"
	"github.com/thenoetrevino/tally/internal/types"
)

const testDataset types.DatasetID = "5a8ee1d5-2f6f-4c3b-a8a7-0e1b7d3c9f10"

func genderScaffold() []models.CategoryEntry {
	return converters.ScaffoldEntries(nil, models.DefaultScaffold())
}

func existingRecord() models.Record {
	return models.Record{
		ID:              "05caae8d-6d4b-4a47-9cf0-53b0c1d1f6a2",
		PublicationDate: "2024-03-01",
		Entries: []models.CategoryEntry{
			{ID: "e1", Category: "gender", CategoryValue: "men", Count: 0},
			{ID: "e2", Category: "gender", CategoryValue: "women", Count: 5},
		},
	}
}

// TestNewCreateForm_Defaults ensures add mode starts with today's date and zero counts.
func TestNewCreateForm_Defaults(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	scaffold := genderScaffold()
	scaffold[0].Count = 7 // a stale count must not leak into a new record

	form := NewCreateForm(testDataset, scaffold, now)

	if form.Mode() != FormModeCreate {
		t.Errorf("Mode() = %v, want create", form.Mode())
	}
	if form.PublicationDate() != "2026-10-14" {
		t.Errorf("PublicationDate() = %q, want 2026-10-14", form.PublicationDate())
	}
	for _, e := range form.Entries() {
		if e.Count != 0 {
			t.Errorf("entry %s count = %d, want 0", e.CategoryValue, e.Count)
		}
	}
	if scaffold[0].Count != 7 {
		t.Error("NewCreateForm mutated the scaffold slice")
	}
}

func TestNewUpdateForm_RequiresRecordID(t *testing.T) {
	rec := existingRecord()
	rec.ID = ""

	_, err := NewUpdateForm(testDataset, rec)
	if !errors.Is(err, ErrMissingRecordID) {
		t.Errorf("NewUpdateForm(no id) error = %v, want ErrMissingRecordID", err)
	}
}

func TestNewUpdateForm_SeedsFromRecord(t *testing.T) {
	rec := existingRecord()

	form, err := NewUpdateForm(testDataset, rec)
	if err != nil {
		t.Fatalf("NewUpdateForm() error = %v", err)
	}
	if form.Mode() != FormModeUpdate {
		t.Errorf("Mode() = %v, want update", form.Mode())
	}
	if form.PublicationDate() != rec.PublicationDate {
		t.Errorf("PublicationDate() = %q, want %q", form.PublicationDate(), rec.PublicationDate)
	}
	if diff := cmp.Diff(rec.Entries, form.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

// TestHandleChange_Idempotent ensures applying the same change twice equals applying it once.
func TestHandleChange_Idempotent(t *testing.T) {
	once, _ := NewUpdateForm(testDataset, existingRecord())
	twice, _ := NewUpdateForm(testDataset, existingRecord())

	if err := once.HandleChange(1, "9"); err != nil {
		t.Fatalf("HandleChange() error = %v", err)
	}
	_ = twice.HandleChange(1, "9")
	_ = twice.HandleChange(1, "9")

	if diff := cmp.Diff(once.Entries(), twice.Entries()); diff != "" {
		t.Errorf("double HandleChange differs from single (-once +twice):\n%s", diff)
	}
}

func TestHandleChange_OnlyTargetChanges(t *testing.T) {
	form, _ := NewUpdateForm(testDataset, existingRecord())
	before := form.Entries()

	if err := form.HandleChange(0, " 12 "); err != nil {
		t.Fatalf("HandleChange() error = %v", err)
	}

	after := form.Entries()
	if after[0].Count != 12 {
		t.Errorf("entry 0 count = %d, want 12", after[0].Count)
	}
	if diff := cmp.Diff(before[1], after[1]); diff != "" {
		t.Errorf("untouched entry changed (-before +after):\n%s", diff)
	}
	if before[0].Count != 0 {
		t.Error("Entries() returned a slice aliasing form state")
	}
}

func TestHandleChange_InvalidInputLeavesEntries(t *testing.T) {
	tests := []struct {
		name  string
		index int
		raw   string
		want  error
	}{
		{"letters", 0, "abc", models.ErrInvalidCount},
		{"negative", 0, "-3", models.ErrInvalidCount},
		{"fraction", 0, "1.5", models.ErrInvalidCount},
		{"empty", 0, "", models.ErrInvalidCount},
		{"out of range", 5, "1", converters.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, _ := NewUpdateForm(testDataset, existingRecord())
			before := form.Entries()

			err := form.HandleChange(tt.index, tt.raw)
			if !errors.Is(err, tt.want) {
				t.Errorf("HandleChange(%d, %q) error = %v, want %v", tt.index, tt.raw, err, tt.want)
			}
			if diff := cmp.Diff(before, form.Entries()); diff != "" {
				t.Errorf("entries changed on invalid input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSetPublicationDate(t *testing.T) {
	form := NewCreateForm(testDataset, genderScaffold(), time.Now())

	if err := form.SetPublicationDate("2024-02-30"); !errors.Is(err, models.ErrInvalidDate) {
		t.Errorf("SetPublicationDate(2024-02-30) error = %v, want ErrInvalidDate", err)
	}
	if err := form.SetPublicationDate(" 2024-02-29 "); err != nil {
		t.Fatalf("SetPublicationDate() error = %v", err)
	}
	if form.PublicationDate() != "2024-02-29" {
		t.Errorf("PublicationDate() = %q, want 2024-02-29", form.PublicationDate())
	}
}

// TestApply_AllOrNothing ensures a set of field values commits together.
// Edge case: the last count is invalid after a valid first one.
func TestApply_AllOrNothing(t *testing.T) {
	form, _ := NewUpdateForm(testDataset, existingRecord())
	before := form.Entries()

	err := form.Apply("2024-04-01", []string{"7", "-2"})
	if !errors.Is(err, models.ErrInvalidCount) {
		t.Fatalf("Apply() error = %v, want ErrInvalidCount", err)
	}
	if diff := cmp.Diff(before, form.Entries()); diff != "" {
		t.Errorf("entries changed after failed Apply (-before +after):\n%s", diff)
	}
	if form.PublicationDate() != "2024-03-01" {
		t.Errorf("PublicationDate() = %q, want 2024-03-01", form.PublicationDate())
	}

	if err := form.Apply("2024-02-30", []string{"7", "8"}); !errors.Is(err, models.ErrInvalidDate) {
		t.Fatalf("Apply(bad date) error = %v, want ErrInvalidDate", err)
	}
	if diff := cmp.Diff(before, form.Entries()); diff != "" {
		t.Errorf("entries changed after bad date (-before +after):\n%s", diff)
	}

	if err := form.Apply("2024-01-01", []string{"7"}); !errors.Is(err, ErrFieldCount) {
		t.Errorf("Apply(short) error = %v, want ErrFieldCount", err)
	}

	if err := form.Apply(" 2024-04-01 ", []string{"7", " 8"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	got := form.Entries()
	if got[0].Count != 7 || got[1].Count != 8 {
		t.Errorf("counts = %d, %d, want 7, 8", got[0].Count, got[1].Count)
	}
	if form.PublicationDate() != "2024-04-01" {
		t.Errorf("PublicationDate() = %q, want 2024-04-01", form.PublicationDate())
	}
}

func TestSubmission_CreateOmitsID(t *testing.T) {
	now := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	form := NewCreateForm(testDataset, genderScaffold(), now)
	_ = form.HandleChange(form.IndexOf("gender", "men"), "3")
	_ = form.HandleChange(form.IndexOf("gender", "women"), "4")
	_ = form.HandleChange(form.IndexOf("gender", "others"), "0")

	sub, ok := form.Submission().(record.Create)
	if !ok {
		t.Fatalf("Submission() = %T, want record.Create", form.Submission())
	}

	want := models.CreateRecordInput{
		DatasetID:       testDataset,
		PublicationDate: "2026-10-14",
		Data: []models.EntryInput{
			{Category: "gender", CategoryValue: "men", Count: 3},
			{Category: "gender", CategoryValue: "women", Count: 4},
			{Category: "gender", CategoryValue: "others", Count: 0},
		},
	}
	if diff := cmp.Diff(want, sub.Input); diff != "" {
		t.Errorf("create input mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmission_UpdateCarriesID(t *testing.T) {
	form, _ := NewUpdateForm(testDataset, existingRecord())

	sub, ok := form.Submission().(record.Update)
	if !ok {
		t.Fatalf("Submission() = %T, want record.Update", form.Submission())
	}
	if sub.Input.ID != existingRecord().ID {
		t.Errorf("update id = %q, want %q", sub.Input.ID, existingRecord().ID)
	}
	if sub.Dataset() != testDataset {
		t.Errorf("Dataset() = %q, want %q", sub.Dataset(), testDataset)
	}
}

func TestGroups_FollowEntryOrder(t *testing.T) {
	rec := existingRecord()
	rec.Entries = append(rec.Entries, models.CategoryEntry{Category: "age", CategoryValue: "18-24", Count: 2})
	form, _ := NewUpdateForm(testDataset, rec)

	groups := form.Groups()
	if len(groups) != 2 {
		t.Fatalf("len(Groups()) = %d, want 2", len(groups))
	}
	if groups[0].Category != "gender" || groups[1].Category != "age" {
		t.Errorf("group order = [%s %s], want [gender age]", groups[0].Category, groups[1].Category)
	}
	if form.IndexOf("age", "18-24") != 2 {
		t.Errorf("IndexOf(age, 18-24) = %d, want 2", form.IndexOf("age", "18-24"))
	}
	if form.IndexOf("age", "65+") != -1 {
		t.Error("IndexOf(missing) != -1")
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// Validation errors returned to clients in the GraphQL errors list
var (
	ErrInvalidID       = errors.New("invalid id")
	ErrMissingRecordID = errors.New("updateRecord requires an id")
	ErrInvalidDate     = errors.New("publicationDate must be YYYY-MM-DD")
	ErrNegativeCount   = errors.New("count cannot be negative")
	ErrEmptyEntry      = errors.New("category and categoryValue are required")
	ErrNoEntries       = errors.New("at least one entry is required")
)

// Resolver is the root resolver for queries and mutations
type Resolver struct {
	store   database.DataStore
	metrics *Metrics
	logger  *slog.Logger
}

func newResolver(store database.DataStore, metrics *Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{store: store, metrics: metrics, logger: logger}
}

// ============================================================================
// Queries
// ============================================================================

// Dataset resolves dataset(id). Unknown ids resolve to null.
func (r *Resolver) Dataset(ctx context.Context, args struct{ ID graphql.ID }) (res *datasetResolver, err error) {
	defer r.track("dataset", time.Now(), &err)

	id := types.DatasetID(args.ID)
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, args.ID)
	}
	ds, err := r.store.GetDataset(ctx, id)
	if errors.Is(err, database.ErrDatasetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &datasetResolver{r: r, ds: ds}, nil
}

// Datasets lists every dataset
func (r *Resolver) Datasets(ctx context.Context) (res []*datasetResolver, err error) {
	defer r.track("datasets", time.Now(), &err)

	all, err := r.store.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]*datasetResolver, len(all))
	for i := range all {
		res[i] = &datasetResolver{r: r, ds: &all[i], partial: true}
	}
	return res, nil
}

// ============================================================================
// Mutations
// ============================================================================

type entryInput struct {
	Category      string
	CategoryValue string
	Count         int32
}

type createRecordInput struct {
	DatasetID       graphql.ID
	PublicationDate string
	Data            []entryInput
}

type updateRecordInput struct {
	ID              *graphql.ID
	PublicationDate string
	Data            []entryInput
}

// CreateRecord resolves createRecord(input)
func (r *Resolver) CreateRecord(ctx context.Context, args struct{ Input createRecordInput }) (res *recordResolver, err error) {
	defer r.track("createRecord", time.Now(), &err)

	datasetID := types.DatasetID(args.Input.DatasetID)
	if !datasetID.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, args.Input.DatasetID)
	}
	data, err := toEntryInputs(args.Input.PublicationDate, args.Input.Data)
	if err != nil {
		return nil, err
	}

	summary, err := r.store.CreateRecord(ctx, models.CreateRecordInput{
		DatasetID:       datasetID,
		PublicationDate: args.Input.PublicationDate,
		Data:            data,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Info("record created", "dataset_id", datasetID, "record_id", summary.ID)
	return &recordResolver{r: r, summary: summary, datasetID: datasetID}, nil
}

// UpdateRecord resolves updateRecord(input)
func (r *Resolver) UpdateRecord(ctx context.Context, args struct{ Input updateRecordInput }) (res *recordResolver, err error) {
	defer r.track("updateRecord", time.Now(), &err)

	if args.Input.ID == nil {
		return nil, ErrMissingRecordID
	}
	id := types.RecordID(*args.Input.ID)
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, *args.Input.ID)
	}
	data, err := toEntryInputs(args.Input.PublicationDate, args.Input.Data)
	if err != nil {
		return nil, err
	}

	summary, err := r.store.UpdateRecord(ctx, models.UpdateRecordInput{
		ID:              id,
		PublicationDate: args.Input.PublicationDate,
		Data:            data,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Info("record updated", "record_id", id)
	return &recordResolver{r: r, summary: summary}, nil
}

// DeleteRecord resolves deleteRecord(id)
func (r *Resolver) DeleteRecord(ctx context.Context, args struct{ ID graphql.ID }) (res *deletedRecordResolver, err error) {
	defer r.track("deleteRecord", time.Now(), &err)

	id := types.RecordID(args.ID)
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, args.ID)
	}
	deleted, err := r.store.DeleteRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	r.logger.Info("record deleted", "record_id", deleted)
	return &deletedRecordResolver{id: deleted}, nil
}

func (r *Resolver) track(operation string, start time.Time, err *error) {
	r.metrics.observe(operation, start, *err)
	if *err != nil {
		r.logger.Warn("resolver failed", "operation", operation, "error", *err)
	}
}

func toEntryInputs(date string, in []entryInput) ([]models.EntryInput, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if len(in) == 0 {
		return nil, ErrNoEntries
	}
	out := make([]models.EntryInput, len(in))
	for i, e := range in {
		if strings.TrimSpace(e.Category) == "" || strings.TrimSpace(e.CategoryValue) == "" {
			return nil, ErrEmptyEntry
		}
		if e.Count < 0 {
			return nil, fmt.Errorf("%w: %s/%s", ErrNegativeCount, e.Category, e.CategoryValue)
		}
		out[i] = models.EntryInput{
			Category:      e.Category,
			CategoryValue: e.CategoryValue,
			Count:         int(e.Count),
		}
	}
	return out, nil
}

// ============================================================================
// Object resolvers
// ============================================================================

type datasetResolver struct {
	r  *Resolver
	ds *models.Dataset
	// partial datasets came from a list query and carry no records yet
	partial bool
}

func (d *datasetResolver) ID() graphql.ID { return graphql.ID(d.ds.ID) }

func (d *datasetResolver) Name() string { return d.ds.Name }

func (d *datasetResolver) Program() *programResolver { return &programResolver{p: d.ds.Program} }

func (d *datasetResolver) Records(ctx context.Context) ([]*recordResolver, error) {
	if d.partial {
		full, err := d.r.store.GetDataset(ctx, d.ds.ID)
		if err != nil {
			return nil, err
		}
		d.ds, d.partial = full, false
	}
	res := make([]*recordResolver, len(d.ds.Records))
	for i, rec := range d.ds.Records {
		res[i] = &recordResolver{
			r: d.r,
			summary: &models.RecordSummary{
				ID:              rec.ID,
				PublicationDate: rec.PublicationDate,
				Dataset:         models.DatasetRef{Name: d.ds.Name},
				Entries:         rec.Entries,
			},
			datasetID: d.ds.ID,
		}
	}
	return res, nil
}

type programResolver struct {
	p models.Program
}

func (p *programResolver) Name() string { return p.p.Name }

type recordResolver struct {
	r         *Resolver
	summary   *models.RecordSummary
	datasetID types.DatasetID // "" until looked up
}

func (rr *recordResolver) ID() graphql.ID { return graphql.ID(rr.summary.ID) }

func (rr *recordResolver) PublicationDate() string { return rr.summary.PublicationDate }

func (rr *recordResolver) Dataset(ctx context.Context) (*datasetResolver, error) {
	if rr.datasetID == "" {
		id, err := rr.r.store.DatasetIDForRecord(ctx, rr.summary.ID)
		if err != nil {
			return nil, err
		}
		rr.datasetID = id
	}
	ds, err := rr.r.store.GetDataset(ctx, rr.datasetID)
	if err != nil {
		return nil, err
	}
	return &datasetResolver{r: rr.r, ds: ds}, nil
}

func (rr *recordResolver) Entries() []*entryResolver {
	res := make([]*entryResolver, len(rr.summary.Entries))
	for i := range rr.summary.Entries {
		res[i] = &entryResolver{e: rr.summary.Entries[i]}
	}
	return res
}

type entryResolver struct {
	e models.CategoryEntry
}

func (e *entryResolver) ID() graphql.ID { return graphql.ID(e.e.ID) }

func (e *entryResolver) Category() string { return e.e.Category }

func (e *entryResolver) CategoryValue() string { return e.e.CategoryValue }

func (e *entryResolver) Count() int32 { return int32(e.e.Count) }

type deletedRecordResolver struct {
	id types.RecordID
}

func (d *deletedRecordResolver) ID() graphql.ID { return graphql.ID(d.id) }

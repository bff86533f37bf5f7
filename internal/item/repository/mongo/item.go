package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

// ListItems returns every Item, newest first.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	return r.find(ctx, "ListItems", bson.M{}, repo.ErrFailedToList)
}

// GetOneItem returns repo.ErrNotFound for unknown or malformed ids.
func (r *implRepository) GetOneItem(ctx context.Context, id string) (item.Item, error) {
	oid, err := parseID(id)
	if err != nil {
		return item.Item{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc itemDoc
	err = r.coll.FindOne(ctx, bson.M{fieldID: oid}).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return item.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return item.Item{}, r.storeErr(ctx, "GetOneItem", err, repo.ErrFailedToGet)
	}
	return doc.toDomain(), nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	now := r.now().UTC()
	doc := itemDoc{
		ID:        primitive.NewObjectID(),
		Name:      opt.Name,
		Quantity:  opt.Quantity,
		Price:     opt.Price,
		Category:  item.CategoryOrDefault(opt.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := doc.toDomain().Check(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, fmt.Errorf("%w: %w", repo.ErrInvalidRecord, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return item.Item{}, r.storeErr(ctx, "CreateItem", err, repo.ErrFailedToInsert)
	}
	return doc.toDomain(), nil
}

func (r *implRepository) ReplaceItem(ctx context.Context, opt repo.ReplaceItemOptions) (item.Item, error) {
	probe := item.Item{Name: opt.Name, Quantity: opt.Quantity, Price: opt.Price}
	if err := probe.Check(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("ReplaceItem"), err)
		return item.Item{}, fmt.Errorf("%w: %w", repo.ErrInvalidRecord, err)
	}
	return r.findAndUpdate(ctx, "ReplaceItem", opt.ID, buildReplaceUpdate(opt, r.now().UTC()))
}

func (r *implRepository) PatchItem(ctx context.Context, opt repo.PatchItemOptions) (item.Item, error) {
	if err := checkPatch(opt); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("PatchItem"), err)
		return item.Item{}, fmt.Errorf("%w: %w", repo.ErrInvalidRecord, err)
	}
	return r.findAndUpdate(ctx, "PatchItem", opt.ID, buildPatchUpdate(opt, r.now().UTC()))
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{fieldID: oid})
	if err != nil {
		return r.storeErr(ctx, "DeleteItem", err, repo.ErrFailedToDelete)
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *implRepository) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]item.Item, error) {
	if strings.TrimSpace(opt.Query) == "" {
		return nil, repo.ErrEmptyQuery
	}
	return r.find(ctx, "SearchItems", buildSearchFilter(opt.Query), repo.ErrFailedToSearch)
}

func (r *implRepository) Ping(ctx context.Context) error {
	if r.pinger == nil {
		return nil
	}
	if err := r.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
	}
	return nil
}

func (r *implRepository) find(ctx context.Context, method string, filter bson.M, failure error) ([]item.Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(newestFirst()))
	if err != nil {
		return nil, r.storeErr(ctx, method, err, failure)
	}
	defer cur.Close(ctx)

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, r.storeErr(ctx, method, err, failure)
	}
	return toDomainList(docs), nil
}

func (r *implRepository) findAndUpdate(ctx context.Context, method, id string, update bson.M) (item.Item, error) {
	oid, err := parseID(id)
	if err != nil {
		return item.Item{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc itemDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{fieldID: oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return item.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return item.Item{}, r.storeErr(ctx, method, err, repo.ErrFailedToUpdate)
	}
	return doc.toDomain(), nil
}

// storeErr logs a driver error and classifies it. Timeouts and network failures
// become repo.ErrUnavailable so callers can fail fast with 503.
func (r *implRepository) storeErr(ctx context.Context, method string, err, failure error) error {
	r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
	if mongodriver.IsTimeout(err) || mongodriver.IsNetworkError(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongodriver.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", failure, err)
}

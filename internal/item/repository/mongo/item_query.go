package mongo

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory-management-api/internal/item"
	repo "inventory-management-api/internal/item/repository"
)

const (
	fieldID        = "_id"
	fieldName      = "name"
	fieldQuantity  = "quantity"
	fieldPrice     = "price"
	fieldCategory  = "category"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// itemDoc is the stored shape of an Item.
type itemDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Quantity  float64            `bson:"quantity"`
	Price     float64            `bson:"price"`
	Category  string             `bson:"category"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d itemDoc) toDomain() item.Item {
	return item.Item{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Quantity:  d.Quantity,
		Price:     d.Price,
		Category:  d.Category,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func toDomainList(docs []itemDoc) []item.Item {
	items := make([]item.Item, len(docs))
	for i, d := range docs {
		items[i] = d.toDomain()
	}
	return items
}

// parseID converts a hex id; anything else is reported as not found.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repo.ErrNotFound
	}
	return oid, nil
}

// newestFirst is the sort used by every multi-document read.
func newestFirst() bson.D {
	return bson.D{{Key: fieldCreatedAt, Value: -1}, {Key: fieldID, Value: -1}}
}

// buildSearchFilter matches query as a literal, case-insensitive substring of name or category.
func buildSearchFilter(query string) bson.M {
	rx := primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(query)), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{fieldName: rx},
			bson.M{fieldCategory: rx},
		},
	}
}

// buildReplaceUpdate sets every mutable field; _id and createdAt are left alone.
func buildReplaceUpdate(opt repo.ReplaceItemOptions, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		fieldName:      opt.Name,
		fieldQuantity:  opt.Quantity,
		fieldPrice:     opt.Price,
		fieldCategory:  item.CategoryOrDefault(opt.Category),
		fieldUpdatedAt: now,
	}}
}

// buildPatchUpdate sets only the fields the caller supplied, plus updatedAt.
func buildPatchUpdate(opt repo.PatchItemOptions, now time.Time) bson.M {
	set := bson.M{fieldUpdatedAt: now}
	if opt.Name != nil {
		set[fieldName] = *opt.Name
	}
	if opt.Quantity != nil {
		set[fieldQuantity] = *opt.Quantity
	}
	if opt.Price != nil {
		set[fieldPrice] = *opt.Price
	}
	if opt.Category != nil {
		set[fieldCategory] = item.CategoryOrDefault(*opt.Category)
	}
	return bson.M{"$set": set}
}

// checkPatch validates the patched fields against a record that is otherwise valid,
// so a stored record that passed Check keeps passing after the merge.
func checkPatch(opt repo.PatchItemOptions) error {
	probe := opt.Apply(item.Item{Name: "-", Category: item.DefaultCategory})
	return probe.Check()
}

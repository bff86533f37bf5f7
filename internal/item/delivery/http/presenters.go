package http

import (
	"time"

	"inventory-management-api/internal/item"
)

// --- Request DTOs ---

// itemReq is the typed form of a normalized, validated create/replace body.
type itemReq struct {
	ID       string
	Name     string
	Quantity float64
	Price    float64
	Category string
}

func newItemReq(body map[string]any) itemReq {
	r := itemReq{}
	r.Name, _ = body[item.FieldName].(string)
	r.Quantity, _ = item.Number(body[item.FieldQuantity])
	r.Price, _ = item.Number(body[item.FieldPrice])
	r.Category, _ = body[item.FieldCategory].(string)
	return r
}

func (r itemReq) toCreateInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:     r.Name,
		Quantity: r.Quantity,
		Price:    r.Price,
		Category: r.Category,
	}
}

func (r itemReq) toReplaceInput() item.ReplaceItemInput {
	return item.ReplaceItemInput{
		ID:       r.ID,
		Name:     r.Name,
		Quantity: r.Quantity,
		Price:    r.Price,
		Category: r.Category,
	}
}

// ---

type patchReq struct {
	ID       string
	Name     *string
	Quantity *float64
	Price    *float64
	Category *string
}

// newPatchReq keeps only the keys present in body. A null category is ignored.
func newPatchReq(id string, body map[string]any) patchReq {
	r := patchReq{ID: id}
	if v, ok := body[item.FieldName].(string); ok {
		r.Name = &v
	}
	if v, ok := item.Number(body[item.FieldQuantity]); ok {
		r.Quantity = &v
	}
	if v, ok := item.Number(body[item.FieldPrice]); ok {
		r.Price = &v
	}
	if v, ok := body[item.FieldCategory].(string); ok {
		r.Category = &v
	}
	return r
}

func (r patchReq) toInput() item.PatchItemInput {
	return item.PatchItemInput{
		ID:       r.ID,
		Name:     r.Name,
		Quantity: r.Quantity,
		Price:    r.Price,
		Category: r.Category,
	}
}

// ---

type searchReq struct {
	Query string `form:"q"`
}

func (r searchReq) toInput() item.SearchItemsInput {
	return item.SearchItemsInput{Query: r.Query}
}

// --- Response DTOs ---

type itemResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Category:  it.Category,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func newItemListResp(items []item.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

// itemEnvelope and itemListEnvelope only describe the payloads for Swagger.
type itemEnvelope struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message,omitempty"`
	Data    itemResp `json:"data"`
}

type itemListEnvelope struct {
	Success bool       `json:"success" example:"true"`
	Count   int        `json:"count" example:"1"`
	Data    []itemResp `json:"data"`
}

// itemBody documents the accepted request body; "qty" is accepted as an alias of quantity.
type itemBody struct {
	Name     string  `json:"name" example:"HDMI Cable"`
	Quantity float64 `json:"quantity" example:"150"`
	Price    float64 `json:"price" example:"350.5"`
	Category string  `json:"category" example:"Electronics"`
}

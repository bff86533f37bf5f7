package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-management-api/internal/item"
	"inventory-management-api/internal/item/repository/memory"
	"inventory-management-api/internal/item/usecase"
	"inventory-management-api/pkg/log"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(uc item.UseCase, exposeErrors bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), New(log.NewNop(), uc, exposeErrors))
	return r
}

func newMemoryRouter() *gin.Engine {
	l := log.NewNop()
	return newTestRouter(usecase.New(memory.New(l), l), false)
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var rdr *bytes.Reader
	if body == "" {
		rdr = bytes.NewReader(nil)
	} else {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

func decodeItem(t *testing.T, raw json.RawMessage) itemResp {
	t.Helper()
	var it itemResp
	require.NoError(t, json.Unmarshal(raw, &it))
	return it
}

func decodeItems(t *testing.T, raw json.RawMessage) []itemResp {
	t.Helper()
	var items []itemResp
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func TestItemLifecycle(t *testing.T) {
	r := newMemoryRouter()

	code, env := do(t, r, http.MethodPost, "/items", `{"name":"HDMI Cable","quantity":150,"price":350.50}`)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, msgCreated, env.Message)
	created := decodeItem(t, env.Data)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, item.DefaultCategory, created.Category)

	code, env = do(t, r, http.MethodGet, "/items/"+created.ID, "")
	require.Equal(t, http.StatusOK, code)
	got := decodeItem(t, env.Data)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Quantity, got.Quantity)
	assert.Equal(t, created.Price, got.Price)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	code, env = do(t, r, http.MethodPatch, "/items/"+created.ID, `{"quantity":100}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, msgPartialUpdated, env.Message)
	patched := decodeItem(t, env.Data)
	assert.Equal(t, float64(100), patched.Quantity)
	assert.Equal(t, 350.50, patched.Price)
	assert.Equal(t, "HDMI Cable", patched.Name)

	code, env = do(t, r, http.MethodDelete, "/items/"+created.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, msgDeleted, env.Message)

	code, env = do(t, r, http.MethodGet, "/items/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Item not found", env.Message)

	code, _ = do(t, r, http.MethodDelete, "/items/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreate(t *testing.T) {
	t.Run("qty Alias", func(t *testing.T) {
		r := newMemoryRouter()
		code, env := do(t, r, http.MethodPost, "/items", `{"name":"Cable Tie","qty":40,"price":2,"category":"Tools"}`)
		require.Equal(t, http.StatusCreated, code)
		it := decodeItem(t, env.Data)
		assert.Equal(t, float64(40), it.Quantity)
		assert.NotContains(t, string(env.Data), `"qty"`)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"Missing Name", `{"quantity":1,"price":1}`, item.ErrNameRequired.Error()},
		{"Negative Quantity", `{"name":"x","quantity":-1,"price":1}`, item.ErrQuantityInvalid.Error()},
		{"String Price", `{"name":"x","quantity":1,"price":"1"}`, item.ErrPriceInvalid.Error()},
		{"Numeric Category", `{"name":"x","quantity":1,"price":1,"category":5}`, item.ErrCategoryInvalid.Error()},
		{"Malformed JSON", `{"name":`, errInvalidJSON.Message},
		{"Array Body", `[1,2]`, errInvalidJSON.Message},
		{"Empty Body", ``, errInvalidJSON.Message},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newMemoryRouter()
			code, env := do(t, r, http.MethodPost, "/items", tc.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.Success)
			assert.Equal(t, tc.message, env.Message)

			_, list := do(t, r, http.MethodGet, "/items", "")
			require.NotNil(t, list.Count)
			assert.Equal(t, 0, *list.Count, "rejected create must not persist")
		})
	}
}

func TestReplace(t *testing.T) {
	r := newMemoryRouter()
	_, env := do(t, r, http.MethodPost, "/items", `{"name":"Laptop","quantity":2,"price":999,"category":"Electronics"}`)
	created := decodeItem(t, env.Data)

	t.Run("OK", func(t *testing.T) {
		code, env := do(t, r, http.MethodPut, "/items/"+created.ID, `{"name":"Laptop Pro","qty":1,"price":1999}`)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, msgUpdated, env.Message)
		it := decodeItem(t, env.Data)
		assert.Equal(t, created.ID, it.ID)
		assert.Equal(t, float64(1), it.Quantity)
		assert.Equal(t, item.DefaultCategory, it.Category)
		assert.True(t, it.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("Validation", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPut, "/items/"+created.ID, `{"name":"Laptop"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Not Found", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPut, "/items/missing", `{"name":"x","quantity":1,"price":1}`)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestPatch(t *testing.T) {
	r := newMemoryRouter()
	_, env := do(t, r, http.MethodPost, "/items", `{"name":"Hammer","quantity":10,"price":15}`)
	created := decodeItem(t, env.Data)

	t.Run("Category Only", func(t *testing.T) {
		code, env := do(t, r, http.MethodPatch, "/items/"+created.ID, `{"category":"Tools"}`)
		require.Equal(t, http.StatusOK, code)
		it := decodeItem(t, env.Data)
		assert.Equal(t, "Tools", it.Category)
		assert.Equal(t, created.Name, it.Name)
		assert.Equal(t, created.Quantity, it.Quantity)
		assert.Equal(t, created.Price, it.Price)
		assert.True(t, it.CreatedAt.Equal(created.CreatedAt))
		assert.False(t, it.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("qty Alias", func(t *testing.T) {
		code, env := do(t, r, http.MethodPatch, "/items/"+created.ID, `{"qty":3}`)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(3), decodeItem(t, env.Data).Quantity)
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		code, env := do(t, r, http.MethodPatch, "/items/"+created.ID, `{"quantity":-4}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, item.ErrQuantityNegative.Error(), env.Message)
	})

	t.Run("Not Found", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPatch, "/items/missing", `{"price":1}`)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestSearch(t *testing.T) {
	r := newMemoryRouter()
	for _, body := range []string{
		`{"name":"HDMI Cable","quantity":1,"price":1,"category":"Electronics"}`,
		`{"name":"Cable Tie","quantity":1,"price":1}`,
		`{"name":"Laptop","quantity":1,"price":1,"category":"Electronics"}`,
	} {
		code, _ := do(t, r, http.MethodPost, "/items", body)
		require.Equal(t, http.StatusCreated, code)
	}

	t.Run("Matches", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/items/search?q=cable", "")
		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, env.Count)
		assert.Equal(t, 2, *env.Count)
		items := decodeItems(t, env.Data)
		names := []string{items[0].Name, items[1].Name}
		assert.ElementsMatch(t, []string{"HDMI Cable", "Cable Tie"}, names)
		assert.Equal(t, "Cable Tie", items[0].Name, "newest first")
	})

	t.Run("No Match Is Empty Array", func(t *testing.T) {
		code, env := do(t, r, http.MethodGet, "/items/search?q=zzz", "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 0, *env.Count)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	for _, path := range []string{"/items/search", "/items/search?q=", "/items/search?q=%20%20"} {
		t.Run("Bad Request "+path, func(t *testing.T) {
			code, env := do(t, r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, errQueryRequired.Message, env.Message)
		})
	}
}

func TestListOrder(t *testing.T) {
	r := newMemoryRouter()
	do(t, r, http.MethodPost, "/items", `{"name":"first","quantity":1,"price":1}`)
	do(t, r, http.MethodPost, "/items", `{"name":"second","quantity":1,"price":1}`)

	code, env := do(t, r, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, code)
	items := decodeItems(t, env.Data)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)
}

// stubUseCase fails every call with err.
type stubUseCase struct {
	err error
}

func (s stubUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	return item.ListItemsOutput{}, s.err
}
func (s stubUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	return item.DetailItemOutput{}, s.err
}
func (s stubUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	return item.CreateItemOutput{}, s.err
}
func (s stubUseCase) Replace(ctx context.Context, input item.ReplaceItemInput) (item.ReplaceItemOutput, error) {
	return item.ReplaceItemOutput{}, s.err
}
func (s stubUseCase) Patch(ctx context.Context, input item.PatchItemInput) (item.PatchItemOutput, error) {
	return item.PatchItemOutput{}, s.err
}
func (s stubUseCase) Delete(ctx context.Context, id string) error { return s.err }
func (s stubUseCase) Search(ctx context.Context, input item.SearchItemsInput) (item.SearchItemsOutput, error) {
	return item.SearchItemsOutput{}, s.err
}

func TestStoreFailures(t *testing.T) {
	t.Run("Unavailable Is 503", func(t *testing.T) {
		r := newTestRouter(stubUseCase{err: fmt.Errorf("%w: timeout", item.ErrStoreUnavailable)}, false)
		code, env := do(t, r, http.MethodGet, "/items", "")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.False(t, env.Success)
	})

	t.Run("Unexpected Hides Detail", func(t *testing.T) {
		r := newTestRouter(stubUseCase{err: errors.New("connection refused 10.0.0.7")}, false)
		code, env := do(t, r, http.MethodDelete, "/items/abc", "")
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Internal Server Error", env.Message)
	})

	t.Run("Unexpected Exposed Outside Production", func(t *testing.T) {
		r := newTestRouter(stubUseCase{err: errors.New("connection refused")}, true)
		code, env := do(t, r, http.MethodGet, "/items/abc", "")
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "connection refused", env.Message)
	})
}

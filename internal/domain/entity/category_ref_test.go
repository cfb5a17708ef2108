package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallofcayman/catalog-api/internal/domain/entity"
)

// Las formas históricas de product.category se normalizan a una única variante.
func TestParseCategoryRef_Formas(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want entity.CategoryRef
	}{
		{"string", `"Shoes"`, entity.CategoryRef{Kind: entity.CategoryRefByName, Name: "Shoes"}},
		{"string con espacios", `"  Shoes "`, entity.CategoryRef{Kind: entity.CategoryRefByName, Name: "Shoes"}},
		{"string vacío", `""`, entity.CategoryRef{}},
		{"objeto poblado", `{"id":"c1","name":"Shoes","parentId":"root"}`,
			entity.CategoryRef{Kind: entity.CategoryRefByRef, ID: "c1", Name: "Shoes", ParentID: "root"}},
		{"objeto mongo", `{"_id":{"$oid":"65f0"},"name":"Shoes","parent":{"_id":"65aa","name":"Fashion"}}`,
			entity.CategoryRef{Kind: entity.CategoryRefByRef, ID: "65f0", Name: "Shoes", ParentID: "65aa"}},
		{"ids numéricos", `{"id":2,"name":"Phones","parentId":1}`,
			entity.CategoryRef{Kind: entity.CategoryRefByRef, ID: "2", Name: "Phones", ParentID: "1"}},
		{"parent_id sql", `{"id":"7","name":"Lamps","parent_id":"3"}`,
			entity.CategoryRef{Kind: entity.CategoryRefByRef, ID: "7", Name: "Lamps", ParentID: "3"}},
		{"objeto solo id", `{"id":"c9"}`, entity.CategoryRef{Kind: entity.CategoryRefByRef, ID: "c9"}},
		{"parcial", `{"name":"Shoes"}`, entity.CategoryRef{Kind: entity.CategoryRefByPartial, Name: "Shoes"}},
		{"parcial con title", `{"title":"Real Estate"}`, entity.CategoryRef{Kind: entity.CategoryRefByPartial, Name: "Real Estate"}},
		{"parentId null", `{"id":"r","name":"Root","parentId":null}`,
			entity.CategoryRef{Kind: entity.CategoryRefByRef, ID: "r", Name: "Root"}},
		{"objeto vacío", `{}`, entity.CategoryRef{}},
		{"null", `null`, entity.CategoryRef{}},
		{"número", `42`, entity.CategoryRef{}},
		{"arreglo", `["Shoes"]`, entity.CategoryRef{}},
		{"vacío", ``, entity.CategoryRef{}},
		{"json roto", `{"name":`, entity.CategoryRef{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ParseCategoryRef([]byte(tc.raw)))
		})
	}
}

func TestCategoryRef_DentroDeUnProducto(t *testing.T) {
	var doc struct {
		Items []struct {
			ID       string             `json:"id"`
			Category entity.CategoryRef `json:"category"`
		} `json:"items"`
	}
	raw := `{"items":[{"id":"a","category":"Shoes"},{"id":"b","category":{"id":"c1","name":"Shoes"}},{"id":"c"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.Len(t, doc.Items, 3)

	assert.Equal(t, entity.CategoryRefByName, doc.Items[0].Category.Kind)
	assert.Equal(t, entity.CategoryRefByRef, doc.Items[1].Category.Kind)
	assert.Equal(t, entity.CategoryRefNone, doc.Items[2].Category.Kind)
}

func TestCategoryRef_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(entity.CategoryByRef("c1", "Shoes", "root"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","name":"Shoes","parentId":"root"}`, string(out))

	out, err = json.Marshal(entity.CategoryByName("Shoes"))
	require.NoError(t, err)
	assert.Equal(t, `"Shoes"`, string(out))

	out, err = json.Marshal(entity.CategoryRef{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "Shoes", (&entity.Category{Name: "Shoes", Title: "Zapatos"}).DisplayName())
	assert.Equal(t, "Zapatos", (&entity.Category{Title: "Zapatos"}).DisplayName())
	assert.True(t, (&entity.Category{}).IsRoot())
}

package webtools_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpkak/webtools"
	"github.com/rpkak/webtools/body"
	"github.com/rpkak/webtools/filter"
	"github.com/rpkak/webtools/middleware"
	"github.com/rpkak/webtools/respond"
	"github.com/rpkak/webtools/routing"
	"github.com/rpkak/webtools/testutil"
)

// newApp assembles a small service using the full stack: default middleware,
// the rule router, and a filtered JSON body on the create route.
func newApp() http.Handler {
	createFilter := filter.Object(map[string]filter.Entry{
		"name": filter.Key(filter.String),
		"qty":  filter.Key(filter.Int(filter.Min(1))),
	})

	router := webtools.NewRouter([]webtools.Rule{
		webtools.Path,
		webtools.Method,
		webtools.ContentType,
	})

	router.MustRouteFunc(func(w http.ResponseWriter, r *http.Request) {
		id := routing.PathArgs(r.Context())[0].(int)
		respond.JSON(w, http.StatusOK, map[string]any{"id": id})
	}, webtools.MustPattern("/article/", routing.Int), http.MethodGet, nil)

	create := webtools.JSONBody(body.WithFilter(createFilter))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			content := body.Content(r.Context()).(map[string]any)
			respond.JSON(w, http.StatusCreated, map[string]any{
				"name": content["name"],
			})
		}),
	)
	router.MustRoute(create, webtools.MustPattern("/article"), http.MethodPost, "json")

	return webtools.Chain(webtools.DefaultMiddleware(middleware.NopLogger{})...)(router)
}

func TestStack(t *testing.T) {
	app := newApp()

	t.Run("routes a typed path capture", func(t *testing.T) {
		res := testutil.Do(app, testutil.Request(http.MethodGet, "/article/42", "", ""))

		require.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `{"id": 42}`, res.Body.String())
		assert.NotEmpty(t, res.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("accepts a body passing the filter", func(t *testing.T) {
		req := testutil.JSONRequest(t, http.MethodPost, "/article", map[string]any{
			"name": "screwdriver",
			"qty":  3,
		})
		res := testutil.Do(app, req)

		require.Equal(t, http.StatusCreated, res.Code)
		assert.JSONEq(t, `{"name": "screwdriver"}`, res.Body.String())
	})

	t.Run("rejects a body failing the filter with the reason", func(t *testing.T) {
		req := testutil.JSONRequest(t, http.MethodPost, "/article", map[string]any{
			"name": "screwdriver",
			"qty":  0,
		})
		res := testutil.Do(app, req)

		require.Equal(t, http.StatusBadRequest, res.Code)
		assert.Contains(t, res.Body.String(), "qty")
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		res := testutil.Do(app, testutil.Request(http.MethodGet, "/nope", "", ""))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("wrong method is 405", func(t *testing.T) {
		res := testutil.Do(app, testutil.Request(http.MethodDelete, "/article/42", "", ""))
		assert.Equal(t, http.StatusMethodNotAllowed, res.Code)
	})

	t.Run("wrong content type is 415", func(t *testing.T) {
		res := testutil.Do(app, testutil.Request(http.MethodPost, "/article", "text/plain", "hi"))
		assert.Equal(t, http.StatusUnsupportedMediaType, res.Code)
	})

	t.Run("non-integer capture does not match", func(t *testing.T) {
		res := testutil.Do(app, testutil.Request(http.MethodGet, "/article/abc", "", ""))
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, webtools.Version)
}

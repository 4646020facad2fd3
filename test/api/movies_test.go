//go:build api

package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"movieflix/test/api/testserver"
	"movieflix/test/fixtures"
	"movieflix/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddMovie tests the POST /api/v1/movies endpoint.
func TestAddMovie(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	movieHelper := testserver.NewMovieHelper(testServer)
	adminToken := authHelper.CreateAdmin(t)
	_, userToken := authHelper.CreateDefaultUser(t)

	inception := fixtures.NewMovie().
		WithCast("Leonardo DiCaprio", "Elliot Page", "Leonardo DiCaprio").
		Request()

	t.Run("success - stores movie and poster", func(t *testing.T) {
		data := movieHelper.AddMovie(t, adminToken, inception, "inception.png")

		assert.NotZero(t, testserver.MovieID(t, data))
		assert.Equal(t, "Inception", data["title"])
		assert.Equal(t, float64(2010), data["releaseYear"])
		assert.Equal(t, "inception.png", data["poster"])
		assert.Equal(t, testserver.TestBaseURL+"/file/inception.png", data["posterUrl"])
		assert.Equal(t, []interface{}{"Leonardo DiCaprio", "Elliot Page"}, data["movieCast"])

		assert.True(t, testServer.MinIO.ObjectExists(context.Background(), "inception.png"))

		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/file/inception.png", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "poster:inception.png", w.Body.String())
	})

	t.Run("error - poster name already used", func(t *testing.T) {
		other := fixtures.NewMovie().WithTitle("Other").Request()

		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/v1/movies", adminToken,
			testserver.MovieForm(t, other), testserver.PosterFile("inception.png"))

		assert.Equal(t, http.StatusConflict, w.Code)

		all := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies", adminToken, nil)
		assert.Len(t, testutil.ParseListResponse(t, all), 1, "no movie is created on conflict")
	})

	t.Run("error - regular user is forbidden", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/v1/movies", userToken,
			testserver.MovieForm(t, inception), testserver.PosterFile("user.png"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, testServer.MinIO.ObjectExists(context.Background(), "user.png"))
	})

	t.Run("error - unauthenticated", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/v1/movies", "",
			testserver.MovieForm(t, inception), testserver.PosterFile("anon.png"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - missing poster", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/v1/movies", adminToken,
			testserver.MovieForm(t, inception))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - invalid movie json", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/v1/movies", adminToken,
			map[string]string{"movie": "{not json"}, testserver.PosterFile("broken.png"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - blank title", func(t *testing.T) {
		blank := fixtures.NewMovie().WithTitle("  ").Request()

		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/v1/movies", adminToken,
			testserver.MovieForm(t, blank), testserver.PosterFile("blank.png"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestGetMovie tests the GET /api/v1/movies/:id endpoint.
func TestGetMovie(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	movieHelper := testserver.NewMovieHelper(testServer)
	_, userToken := authHelper.CreateDefaultUser(t)
	movie := movieHelper.SeedMovie(t, fixtures.NewMovie().BuildPtr())

	t.Run("success - any user can read", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, fmt.Sprintf("/api/v1/movies/%d", movie.ID), userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(movie.ID), resp.Data["movieId"])
		assert.Equal(t, "Christopher Nolan", resp.Data["director"])
	})

	t.Run("error - not found", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies/9999", userToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - invalid id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies/abc", userToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestListMovies tests the list and page endpoints.
func TestListMovies(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	movieHelper := testserver.NewMovieHelper(testServer)
	_, userToken := authHelper.CreateDefaultUser(t)

	titles := []string{"Charlie", "Alpha", "Echo", "Bravo", "Delta"}
	for i, title := range titles {
		movieHelper.SeedMovie(t, fixtures.NewMovie().
			WithTitle(title).
			WithReleaseYear(2000+i).
			WithPoster(title+".png").
			BuildPtr())
	}

	titlesOf := func(items []interface{}) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.(map[string]interface{})["title"].(string))
		}
		return out
	}

	t.Run("all movies", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies", userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, testutil.ParseListResponse(t, w), len(titles))
	})

	t.Run("last partial page", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies/pages?pageNumber=2&pageSize=2", userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, []string{"Delta"}, titlesOf(resp.Data["content"].([]interface{})))
		assert.Equal(t, float64(2), resp.Data["pageNumber"])
		assert.Equal(t, float64(2), resp.Data["pageSize"])
		assert.Equal(t, float64(5), resp.Data["totalElements"])
		assert.Equal(t, float64(3), resp.Data["totalPages"])
		assert.Equal(t, true, resp.Data["isLast"])
	})

	t.Run("default page size", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies/pages", userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Len(t, resp.Data["content"], len(titles))
		assert.Equal(t, float64(10), resp.Data["pageSize"])
		assert.Equal(t, true, resp.Data["isLast"])
	})

	t.Run("sorted by title descending", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/movies/pages/sorted?pageNumber=0&pageSize=3&sortBy=title&dir=desc", userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, []string{"Echo", "Delta", "Charlie"}, titlesOf(resp.Data["content"].([]interface{})))
		assert.Equal(t, false, resp.Data["isLast"])
	})

	t.Run("sorted by release year ascending", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/movies/pages/sorted?pageSize=2&sortBy=releaseYear&dir=ASC", userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, []string{"Charlie", "Alpha"}, titlesOf(resp.Data["content"].([]interface{})))
	})

	t.Run("error - unknown sort field", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/movies/pages/sorted?sortBy=password", userToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - page size out of range", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/movies/pages?pageSize=0", userToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestUpdateMovie tests the PUT /api/v1/movies/:id endpoint.
func TestUpdateMovie(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	movieHelper := testserver.NewMovieHelper(testServer)
	adminToken := authHelper.CreateAdmin(t)

	created := movieHelper.AddMovie(t, adminToken, fixtures.NewMovie().Request(), "inception.png")
	path := fmt.Sprintf("/api/v1/movies/%d", testserver.MovieID(t, created))

	t.Run("success - fields only keeps the poster", func(t *testing.T) {
		req := fixtures.NewMovie().WithTitle("Inception (Remastered)").WithCast("Tom Hardy").Request()

		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPut, path, adminToken,
			testserver.MovieForm(t, req))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Inception (Remastered)", resp.Data["title"])
		assert.Equal(t, "inception.png", resp.Data["poster"])
		assert.Equal(t, []interface{}{"Tom Hardy"}, resp.Data["movieCast"])
	})

	t.Run("success - new poster replaces the old file", func(t *testing.T) {
		req := fixtures.NewMovie().Request()

		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPut, path, adminToken,
			testserver.MovieForm(t, req), testserver.PosterFile("inception-v2.png"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "inception-v2.png", resp.Data["poster"])

		ctx := context.Background()
		assert.True(t, testServer.MinIO.ObjectExists(ctx, "inception-v2.png"))
		assert.False(t, testServer.MinIO.ObjectExists(ctx, "inception.png"))
	})

	t.Run("error - poster name used by another movie", func(t *testing.T) {
		movieHelper.AddMovie(t, adminToken, fixtures.NewMovie().WithTitle("Tenet").Request(), "tenet.png")

		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPut, path, adminToken,
			testserver.MovieForm(t, fixtures.NewMovie().Request()), testserver.PosterFile("tenet.png"))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("error - not found", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPut, "/api/v1/movies/9999", adminToken,
			testserver.MovieForm(t, fixtures.NewMovie().Request()))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestDeleteMovie tests the DELETE /api/v1/movies/:id endpoint.
func TestDeleteMovie(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	movieHelper := testserver.NewMovieHelper(testServer)
	adminToken := authHelper.CreateAdmin(t)
	_, userToken := authHelper.CreateDefaultUser(t)

	created := movieHelper.AddMovie(t, adminToken, fixtures.NewMovie().Request(), "inception.png")
	id := testserver.MovieID(t, created)
	path := fmt.Sprintf("/api/v1/movies/%d", id)

	t.Run("error - regular user is forbidden", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, path, userToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - removes movie and poster", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, path, adminToken, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, fmt.Sprintf("Inception with ID = %d has been successfully deleted!", id), resp.Data["message"])
		assert.False(t, testServer.MinIO.ObjectExists(context.Background(), "inception.png"))

		get := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, path, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, get.Code)
	})

	t.Run("error - already deleted", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, path, adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

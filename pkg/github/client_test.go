package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the mock GitHub server received
type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Accept        string
	Body          map[string]interface{}
}

// mockGitHubServer creates a test HTTP server that answers "METHOD /path" keys
// with the given status and JSON body, recording every request it sees.
func mockGitHubServer(t *testing.T, responses map[string]mockResponse) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Accept:        r.Header.Get("Accept"),
		}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		requests = append(requests, rec)

		w.Header().Set("Content-Type", "application/json")

		key := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		resp, ok := responses[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
			return
		}
		w.WriteHeader(resp.Status)
		_ = json.NewEncoder(w).Encode(resp.Body)
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

type mockResponse struct {
	Status int
	Body   interface{}
}

// createTestClient creates a GitHub client configured to use the test server
func createTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient("test-token", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		client, err := NewClient("test-token")
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, "https://api.github.com/", client.client.BaseURL.String())
	})

	t.Run("empty token", func(t *testing.T) {
		client, err := NewClient("")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "GitHub token cannot be empty")
	})

	t.Run("base url gets trailing slash", func(t *testing.T) {
		client, err := NewClient("test-token", WithBaseURL("https://ghe.example.com/api/v3"))
		require.NoError(t, err)
		assert.Equal(t, "https://ghe.example.com/api/v3/", client.client.BaseURL.String())
	})

	t.Run("invalid base url", func(t *testing.T) {
		_, err := NewClient("test-token", WithBaseURL("://bad"))
		assert.Error(t, err)
	})
}

func TestClient_CreateOrgRepository(t *testing.T) {
	t.Run("sends the create request", func(t *testing.T) {
		server, requests := mockGitHubServer(t, map[string]mockResponse{
			"POST /orgs/ts-source/repos": {
				Status: http.StatusCreated,
				Body: map[string]interface{}{
					"id":             42,
					"name":           "alpha_beta",
					"full_name":      "ts-source/alpha_beta",
					"default_branch": "main",
					"html_url":       "https://github.com/ts-source/alpha_beta",
					"created_at":     "2024-01-01T00:00:00Z",
				},
			},
		})
		client := createTestClient(t, server)

		repo, err := client.CreateOrgRepository(context.Background(), "ts-source", "alpha_beta")
		require.NoError(t, err)

		assert.Equal(t, int64(42), repo.ID)
		assert.Equal(t, "alpha_beta", repo.Name)
		assert.Equal(t, "ts-source/alpha_beta", repo.FullName)
		assert.Equal(t, "main", repo.DefaultBranch)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), repo.CreatedAt.UTC())

		require.Len(t, *requests, 1)
		req := (*requests)[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/orgs/ts-source/repos", req.Path)
		assert.Equal(t, "token test-token", req.Authorization)
		assert.Equal(t, "application/vnd.github.v3+json", req.Accept)
		assert.Equal(t, "alpha_beta", req.Body["name"])
		assert.Equal(t, true, req.Body["auto_init"])
	})

	t.Run("name already exists", func(t *testing.T) {
		server, requests := mockGitHubServer(t, map[string]mockResponse{
			"POST /orgs/ts-source/repos": {
				Status: http.StatusUnprocessableEntity,
				Body: map[string]interface{}{
					"message": "Repository creation failed.",
					"errors": []map[string]string{
						{"resource": "Repository", "code": "custom", "field": "name", "message": "name already exists on this account"},
					},
				},
			},
		})
		client := createTestClient(t, server)

		repo, err := client.CreateOrgRepository(context.Background(), "ts-source", "alpha_beta")
		require.Error(t, err)
		assert.Nil(t, repo)

		var ghErr *Error
		require.ErrorAs(t, err, &ghErr)
		assert.Equal(t, ErrorTypeValidation, ghErr.Type)
		assert.Equal(t, http.StatusUnprocessableEntity, ghErr.StatusCode)
		assert.Contains(t, ghErr.Message, "name already exists on this account")

		// no retry on failure
		assert.Len(t, *requests, 1)
	})

	t.Run("server error is not retried", func(t *testing.T) {
		server, requests := mockGitHubServer(t, map[string]mockResponse{
			"POST /orgs/ts-source/repos": {
				Status: http.StatusBadGateway,
				Body:   map[string]string{"message": "Bad Gateway"},
			},
		})
		client := createTestClient(t, server)

		_, err := client.CreateOrgRepository(context.Background(), "ts-source", "alpha_beta")
		require.Error(t, err)

		var ghErr *Error
		require.ErrorAs(t, err, &ghErr)
		assert.Equal(t, ErrorTypeNetwork, ghErr.Type)
		assert.Len(t, *requests, 1)
	})

	t.Run("unknown organization", func(t *testing.T) {
		server, _ := mockGitHubServer(t, nil)
		client := createTestClient(t, server)

		_, err := client.CreateOrgRepository(context.Background(), "nope", "alpha_beta")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "Organization not found")
	})
}

func TestClient_RepositoryExists(t *testing.T) {
	server, _ := mockGitHubServer(t, map[string]mockResponse{
		"GET /repos/ts-source/alpha_beta": {
			Status: http.StatusOK,
			Body:   map[string]interface{}{"name": "alpha_beta", "full_name": "ts-source/alpha_beta"},
		},
		"GET /repos/ts-source/broken": {
			Status: http.StatusUnauthorized,
			Body:   map[string]string{"message": "Bad credentials"},
		},
	})
	client := createTestClient(t, server)

	tests := []struct {
		name        string
		repo        string
		expected    bool
		expectError bool
	}{
		{name: "existing repository", repo: "alpha_beta", expected: true},
		{name: "missing repository", repo: "gamma_delta", expected: false},
		{name: "other errors are returned", repo: "broken", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := client.RepositoryExists(context.Background(), "ts-source", tt.repo)
			if tt.expectError {
				require.Error(t, err)
				var ghErr *Error
				require.ErrorAs(t, err, &ghErr)
				assert.Equal(t, ErrorTypeAuth, ghErr.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestClient_GetRepository(t *testing.T) {
	server, _ := mockGitHubServer(t, map[string]mockResponse{
		"GET /repos/ts-source/alpha_beta": {
			Status: http.StatusOK,
			Body: map[string]interface{}{
				"id":        7,
				"name":      "alpha_beta",
				"full_name": "ts-source/alpha_beta",
				"private":   true,
			},
		},
	})
	client := createTestClient(t, server)

	repo, err := client.GetRepository(context.Background(), "ts-source", "alpha_beta")
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.ID)
	assert.True(t, repo.Private)

	_, err = client.GetRepository(context.Background(), "ts-source", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Repository not found")
}

func TestClient_RateLimit(t *testing.T) {
	reset := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	server, _ := mockGitHubServer(t, map[string]mockResponse{
		"GET /rate_limit": {
			Status: http.StatusOK,
			Body: map[string]interface{}{
				"resources": map[string]interface{}{
					"core": map[string]interface{}{
						"limit":     5000,
						"remaining": 4990,
						"reset":     reset.Unix(),
					},
				},
			},
		},
	})
	client := createTestClient(t, server)

	limit, err := client.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000, limit.Limit)
	assert.Equal(t, 4990, limit.Remaining)
	assert.True(t, reset.Equal(limit.ResetsAt))
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	tests := []struct {
		name   string
		option ClientOption
	}{
		{name: "timeout option", option: WithTimeout(20 * time.Millisecond)},
		{name: "http client timeout", option: WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient("test-token", WithBaseURL(server.URL), tt.option)
			require.NoError(t, err)

			_, err = client.CreateOrgRepository(context.Background(), "ts-source", "slow_repo")
			require.Error(t, err)

			var ghErr *Error
			require.ErrorAs(t, err, &ghErr)
			assert.Equal(t, ErrorTypeNetwork, ghErr.Type)
		})
	}
}

package comfy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wedgerun/pkg/ports"
)

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8188", NormalizeBaseURL("127.0.0.1:8188"))
	assert.Equal(t, "http://localhost:8188", NormalizeBaseURL("http://localhost:8188"))
	assert.Equal(t, "https://comfy.example.com", NormalizeBaseURL("https://comfy.example.com"))
}

func TestNewClient(t *testing.T) {
	a := NewClient("127.0.0.1:8188/")
	b := NewClient("127.0.0.1:8188")
	assert.Equal(t, "http://127.0.0.1:8188", a.BaseURL())
	assert.NotEmpty(t, a.ClientID())
	assert.NotEqual(t, a.ClientID(), b.ClientID(), "each client gets its own identity")
}

func TestSubmit(t *testing.T) {
	t.Run("posts the graph and returns the prompt ID", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/prompt", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(map[string]any{"prompt_id": "abc-123"})
		}))
		defer srv.Close()

		wf, err := ParseWorkflow([]byte(sampleWorkflow))
		require.NoError(t, err)
		wf.AttachMetadata("wedge_iteration", map[string]any{"index": 1})

		client := NewClient(srv.URL)
		jobID, err := client.Submit(context.Background(), wf)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", jobID)

		assert.Equal(t, client.ClientID(), got["client_id"])
		prompt, ok := got["prompt"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, prompt, "3")
		extra, ok := got["extra_data"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, extra, "wedge_iteration")
	})

	t.Run("missing prompt ID is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{})
		}))
		defer srv.Close()

		wf, err := ParseWorkflow([]byte(sampleWorkflow))
		require.NoError(t, err)
		_, err = NewClient(srv.URL).Submit(context.Background(), wf)
		require.Error(t, err)
	})

	t.Run("non-200 response surfaces the status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "invalid prompt"}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		wf, err := ParseWorkflow([]byte(sampleWorkflow))
		require.NoError(t, err)
		_, err = NewClient(srv.URL).Submit(context.Background(), wf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})
}

func TestAwait(t *testing.T) {
	t.Run("polls until the history entry completes", func(t *testing.T) {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/history/job-1", r.URL.Path)
			if calls.Add(1) < 3 {
				json.NewEncoder(w).Encode(map[string]any{})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"job-1": map[string]any{
					"outputs": map[string]any{
						"9": map[string]any{
							"images": []any{
								map[string]any{"filename": "img_00001_.png", "subfolder": "images", "type": "output"},
							},
						},
					},
					"status": map[string]any{
						"completed":  true,
						"status_str": "success",
						"messages": []any{
							[]any{"execution_start", map[string]any{"timestamp": 1700000000000}},
							[]any{"execution_success", map[string]any{"timestamp": 1700000004500}},
						},
					},
				},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, WithPollInterval(time.Millisecond))
		res, err := client.Await(context.Background(), "job-1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, calls.Load(), int64(3))

		require.Len(t, res.Artifacts, 1)
		assert.Equal(t, "images/img_00001_.png", res.LastArtifactPath())

		elapsed := client.ElapsedTime(res)
		assert.InDelta(t, 4.5, elapsed.Total, 1e-9)
		assert.Equal(t, "0h 0m 4.5s", elapsed.String())
	})

	t.Run("server-side failure is terminal", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"job-1": map[string]any{
					"status": map[string]any{"completed": false, "status_str": "error"},
				},
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, WithPollInterval(time.Millisecond))
		_, err := client.Await(context.Background(), "job-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed")
	})

	t.Run("cancellation stops the poll loop", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{})
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		client := NewClient(srv.URL, WithPollInterval(5*time.Millisecond))
		_, err := client.Await(ctx, "job-1")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestElapsedTime(t *testing.T) {
	client := NewClient("127.0.0.1:8188")

	t.Run("missing timing yields a zero breakdown", func(t *testing.T) {
		assert.Zero(t, client.ElapsedTime(nil).Total)
		assert.Zero(t, client.ElapsedTime(&ports.Result{JobID: "job-1"}).Total)
	})

	t.Run("breakdown splits hours and minutes", func(t *testing.T) {
		started := time.Unix(0, 0)
		elapsed := client.ElapsedTime(&ports.Result{
			Started:  started,
			Finished: started.Add(2*time.Hour + 3*time.Minute + 4500*time.Millisecond),
		})
		assert.Equal(t, 2, elapsed.Hours)
		assert.Equal(t, 3, elapsed.Minutes)
		assert.InDelta(t, 4.5, elapsed.Seconds, 1e-9)
	})

	t.Run("finish before start yields a zero breakdown", func(t *testing.T) {
		started := time.Unix(1000, 0)
		elapsed := client.ElapsedTime(&ports.Result{
			Started:  started,
			Finished: started.Add(-time.Second),
		})
		assert.Zero(t, elapsed.Total)
	})
}

package s3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resume-evaluator-api/config"
)

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()

	c, err := New(context.Background(), zap.NewNop(), config.S3{
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		BucketUploads:   "uploads",
		Endpoint:        endpoint,
	})
	require.NoError(t, err)
	return c
}

func TestClient_PutAndDelete(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		assert.Equal(t, "/uploads/users/ext/resume/a.pdf", r.URL.Path)
		if r.Method == http.MethodPut {
			_, _ = io.Copy(io.Discard, r.Body)
			assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Put(context.Background(), "users/ext/resume/a.pdf", "application/pdf", []byte("%PDF")))
	require.NoError(t, c.Delete(context.Background(), "users/ext/resume/a.pdf"))
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestClient_PresignGetURL(t *testing.T) {
	c := newTestClient(t, "http://localhost:9000")

	url, err := c.PresignGetURL(context.Background(), "users/ext/resume/a.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/uploads/users/ext/resume/a.pdf?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")
	assert.Equal(t, "uploads", c.GetBucket())
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), zap.NewNop(), config.S3{Region: "us-east-1"})
	require.Error(t, err)
}

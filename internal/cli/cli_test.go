package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeController fakes the three controller endpoints the CLI touches and
// records every PUT.
type fakeController struct {
	filtersJSON string

	putCount int
	putBody  []byte
}

func (s *fakeController) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "TOKEN", Value: testSessionToken()})
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(s.filtersJSON))
		case r.Method == http.MethodPut:
			s.putCount++
			body := &bytes.Buffer{}
			_, _ = body.ReadFrom(r.Body)
			s.putBody = body.Bytes()
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func testSessionToken() string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"csrfToken":"csrf-test"}`))
	return header + "." + payload + ".sig"
}

// runCLI executes the command tree against the given controller server
// and returns stdout, stderr and the execution error.
func runCLI(t *testing.T, serverURL string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd("test", "none", "today")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(append(args,
		"--host", serverURL,
		"--username", "admin",
		"--password", "secret",
		"--site", "default",
	))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestFetch_PrintsSortedDomainsToStdout(t *testing.T) {
	ctrl := &fakeController{
		filtersJSON: `[{"_id":"f1","name":"Samsung Adblock","block_list":["b.com","a.com"]}]`,
	}
	srv := httptest.NewTLSServer(ctrl.handler())
	defer srv.Close()

	out, errOut, err := runCLI(t, srv.URL, "fetch", "Samsung Adblock")

	require.NoError(t, err)
	assert.Equal(t, "a.com\nb.com\n", out)
	assert.Contains(t, errOut, "✓ Logged in to controller (CSRF token acquired)")
	assert.Contains(t, errOut, "✓ Fetched 2 domains")
}

func TestFetch_FilterNotFound(t *testing.T) {
	ctrl := &fakeController{filtersJSON: `[]`}
	srv := httptest.NewTLSServer(ctrl.handler())
	defer srv.Close()

	out, _, err := runCLI(t, srv.URL, "fetch", "Samsung Adblock")

	require.Error(t, err)
	assert.ErrorContains(t, err, "not found")
	assert.Empty(t, out)
}

func TestFetch_WritesOutputFile(t *testing.T) {
	ctrl := &fakeController{
		filtersJSON: `[{"_id":"f1","name":"Samsung Adblock","block_list":["b.com","a.com"]}]`,
	}
	srv := httptest.NewTLSServer(ctrl.handler())
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "filters.txt")
	out, errOut, err := runCLI(t, srv.URL, "fetch", "Samsung Adblock", "-o", path)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "✓ Wrote 2 domains to "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Samsung Adblock\n")
	assert.Contains(t, string(content), "a.com\nb.com\n")
}

func TestSync_CommentsOnlyFileFailsWithoutPUT(t *testing.T) {
	ctrl := &fakeController{
		filtersJSON: `[{"_id":"f1","name":"Samsung Adblock","block_list":[]}]`,
	}
	srv := httptest.NewTLSServer(ctrl.handler())
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "filters.txt")
	require.NoError(t, os.WriteFile(path, []byte("# only comments\n\n# here\n"), 0o644))

	_, _, err := runCLI(t, srv.URL, "sync", "Samsung Adblock", path)

	require.Error(t, err)
	assert.ErrorContains(t, err, "no domains to sync")
	assert.Zero(t, ctrl.putCount)
}

func TestSync_PushesFileOrderToController(t *testing.T) {
	ctrl := &fakeController{
		filtersJSON: `[{"_id":"f1","name":"Samsung Adblock","site_id":"s1","block_list":["old.com"]}]`,
	}
	srv := httptest.NewTLSServer(ctrl.handler())
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "filters.txt")
	require.NoError(t, os.WriteFile(path, []byte("# list\nz.com\na.com\n"), 0o644))

	_, errOut, err := runCLI(t, srv.URL, "sync", "Samsung Adblock", path)

	require.NoError(t, err)
	require.Equal(t, 1, ctrl.putCount)
	assert.Contains(t, errOut, "✓ Updated 2 domains")

	var sent map[string]any
	require.NoError(t, json.Unmarshal(ctrl.putBody, &sent))
	assert.Equal(t, []any{"z.com", "a.com"}, sent["block_list"])
	assert.Equal(t, "s1", sent["site_id"])
}

func TestSync_MissingFileArgumentAndNoDefault(t *testing.T) {
	ctrl := &fakeController{filtersJSON: `[]`}
	srv := httptest.NewTLSServer(ctrl.handler())
	defer srv.Close()

	t.Setenv("FILTER_FILE", "")

	_, _, err := runCLI(t, srv.URL, "sync", "Samsung Adblock")

	require.Error(t, err)
	assert.ErrorContains(t, err, "no filter file")
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "https://unused.local", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "filtersync test")
	assert.Contains(t, out, "commit: none")
}

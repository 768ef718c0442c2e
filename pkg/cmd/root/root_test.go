package root

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/lcv/internal/constants"
	"github.com/Paintersrp/lcv/internal/state"
)

type entry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

func newRepoServer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := srv.URL
		var listing []entry
		switch r.URL.Path {
		case "/repos/owner/repo/contents/":
			listing = []entry{
				{Name: "10-regex", Type: "dir", URL: base + "/dir/10"},
				{Name: "README.md", Type: "file"},
				{Name: "2-add-two-numbers", Type: "dir", URL: base + "/dir/2"},
				{Name: "1-two-sum", Type: "dir", URL: base + "/dir/1"},
			}
		case "/dir/1":
			listing = []entry{
				{Name: "Solution.java", Type: "file", DownloadURL: base + "/raw/1/Solution.java"},
				{Name: "notes.txt", Type: "file", DownloadURL: base + "/raw/1/notes.txt"},
				{Name: "sol.py", Type: "file", DownloadURL: base + "/raw/1/sol.py"},
			}
		case "/dir/2":
			listing = []entry{{Name: "a.cpp", Type: "file", DownloadURL: base + "/raw/2/a.cpp"}}
		case "/dir/10":
			listing = []entry{{Name: "r.js", Type: "file", DownloadURL: base + "/raw/10/missing.js"}}
		case "/raw/1/Solution.java":
			w.Write([]byte("class Solution {}\n"))
			return
		case "/raw/1/sol.py":
			w.Write([]byte("print('two sum')\n"))
			return
		case "/raw/2/a.cpp":
			w.Write([]byte("int main() {}\n"))
			return
		default:
			http.NotFound(w, r)
			return
		}
		if err := json.NewEncoder(w).Encode(listing); err != nil {
			t.Errorf("failed to encode listing: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	opts := &state.Options{}
	l := state.NewLazy(opts)
	t.Cleanup(func() { l.Close() })

	cmd := NewCmdRoot(l, opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	srv := newRepoServer(t)
	return writeConfig(t, "repository: owner/repo\napi_base: "+srv.URL+"\n")
}

func TestListPrintsProblemsInOrder(t *testing.T) {
	cfg := setup(t)

	out, err := execute(t, "list", "--config", cfg)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	want := "1\ttwo sum\tjava,py\n2\tadd two numbers\tcpp\n10\tregex\tjs\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	cfg := setup(t)

	out, err := execute(t, "list", "--config", cfg, "--query", "TWO", "--sort", "desc")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "2\t") || !strings.HasPrefix(lines[1], "1\t") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestListRejectsBadSort(t *testing.T) {
	cfg := setup(t)
	if _, err := execute(t, "list", "--config", cfg, "--sort", "up"); err == nil {
		t.Fatal("expected invalid sort to fail")
	}
}

func TestListRootFailure(t *testing.T) {
	srv := newRepoServer(t)
	cfg := writeConfig(t, "repository: someone/else\napi_base: "+srv.URL+"\n")

	if _, err := execute(t, "list", "--config", cfg); err == nil {
		t.Fatal("expected a missing repository to fail")
	}
}

func TestShowPrintsRequestedSolution(t *testing.T) {
	cfg := setup(t)

	out, err := execute(t, "show", "two", "sum", "--index", "2", "--config", cfg)
	if err != nil {
		t.Fatalf("show returned error: %v", err)
	}
	if out != "print('two sum')\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestShowByNumberDefaultsToFirstFile(t *testing.T) {
	cfg := setup(t)

	out, err := execute(t, "show", "2", "--config", cfg)
	if err != nil {
		t.Fatalf("show returned error: %v", err)
	}
	if out != "int main() {}\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestShowFetchFailureUsesFixedMessage(t *testing.T) {
	cfg := setup(t)

	_, err := execute(t, "show", "10", "--config", cfg)
	if err == nil || err.Error() != constants.FileLoadFailedMessage {
		t.Fatalf("expected %q, got %v", constants.FileLoadFailedMessage, err)
	}
}

func TestShowUnknownProblem(t *testing.T) {
	cfg := setup(t)
	if _, err := execute(t, "show", "999", "--config", cfg); err == nil {
		t.Fatal("expected unknown problem to fail")
	}
}

func TestThemeToggleIsPersisted(t *testing.T) {
	cfg := setup(t)

	out, err := execute(t, "theme", "--config", cfg)
	if err != nil || strings.TrimSpace(out) != "light" {
		t.Fatalf("expected light, got %q, %v", out, err)
	}

	out, err = execute(t, "theme", "toggle", "--config", cfg)
	if err != nil || strings.TrimSpace(out) != "dark" {
		t.Fatalf("expected dark, got %q, %v", out, err)
	}

	data, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "theme: dark") {
		t.Fatalf("expected persisted theme, got:\n%s", data)
	}

	if _, err := execute(t, "theme", "sepia", "--config", cfg); err == nil {
		t.Fatal("expected unknown theme to be rejected")
	}
}

func TestRepositoryFlagIsValidated(t *testing.T) {
	cfg := setup(t)
	if _, err := execute(t, "list", "--config", cfg, "--repository", "broken"); err == nil {
		t.Fatal("expected invalid repository flag to fail")
	}
}

package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/scenewire/scenewire/pkg/mirror"
	"github.com/scenewire/scenewire/pkg/scene"
	"github.com/scenewire/scenewire/pkg/snapshot"
	"github.com/scenewire/scenewire/pkg/wire"
)

func newTestSceneServer(t *testing.T) (*httptest.Server, *sceneServer) {
	t.Helper()

	mapper := scene.NewMapper()
	mapper.SetReferenceID("mapper-1")
	mapper.SetInputData(scene.NewConePolyData(12, 0.5, 1.0))
	mapper.SetLookupTable(scene.NewLookupTable())

	actor := scene.NewActor()
	actor.SetReferenceID("actor-1")
	actor.SetMapper(mapper)

	ren := scene.NewRenderer()
	ren.SetReferenceID("ren-1")
	ren.AddViewProp(actor)

	win := scene.NewRenderWindow()
	win.SetReferenceID("win-1")
	win.AddRenderer(ren)

	srv := &sceneServer{
		runner: mirror.NewRunner(nil, snapshot.NewMemoryStore(), nil),
		root:   win,
		opts:   &serveOpts{sessionID: "test-session", sweep: mirror.DefaultSweepWindow},
	}

	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts, srv
}

func TestServeScene(t *testing.T) {
	ts, _ := newTestSceneServer(t)

	resp, err := http.Get(ts.URL + "/scene")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
	if resp.Header.Get("X-Snapshot-Key") == "" {
		t.Error("expected X-Snapshot-Key header")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var root wire.Node
	if err := json.Unmarshal(body, &root); err != nil {
		t.Fatalf("response is not a wire tree: %v", err)
	}
	if root.Type != "vtkRenderWindow" {
		t.Errorf("root type = %q, want vtkRenderWindow", root.Type)
	}
}

func TestServeData(t *testing.T) {
	ts, srv := newTestSceneServer(t)

	// A pass must run before any arrays are cached.
	if _, err := http.Get(ts.URL + "/scene"); err != nil {
		t.Fatal(err)
	}

	hashes := srv.runner.Registry.Session().Hashes()
	if len(hashes) == 0 {
		t.Fatal("no arrays cached after scene pass")
	}
	// Hashes may contain "/" from the base64 alphabet.
	hash := url.PathEscape(hashes[0])

	resp, err := http.Get(ts.URL + "/data/" + hash)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/octet-stream" {
		t.Errorf("content type = %q", got)
	}
	binary, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(binary) == 0 {
		t.Error("empty binary payload")
	}

	resp, err = http.Get(ts.URL + "/data/" + hash + "?encoding=base64")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("base64 content type = %q", got)
	}
	encoded, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(encoded) <= len(binary) {
		t.Error("base64 payload should be longer than binary")
	}
}

// validButUnknownHash returns a hash that passes format validation but
// matches no cached array.
func validButUnknownHash() string {
	return "AAAAAAAAAAAAAAAAAAAAAA_8f"
}

func TestServeDataErrors(t *testing.T) {
	ts, _ := newTestSceneServer(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "malformed hash", path: "/data/not-a-hash", want: http.StatusBadRequest},
		{name: "unknown hash", path: "/data/" + validButUnknownHash(), want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected error message in body")
			}
		})
	}
}

func TestServeSweep(t *testing.T) {
	ts, _ := newTestSceneServer(t)

	resp, err := http.Post(ts.URL+"/sweep?window=1h", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["evicted"]; !ok {
		t.Error("expected evicted count in body")
	}

	resp, err = http.Post(ts.URL+"/sweep?window=soon", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad window status = %d, want 400", resp.StatusCode)
	}
}

func TestServeHealthz(t *testing.T) {
	ts, _ := newTestSceneServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

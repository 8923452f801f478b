package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/packing-list/internal/application"
	"github.com/eugenenazirov/packing-list/internal/config"
)

func newServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()

	app, err := application.New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("application.New: %v", err)
	}
	srv := httptest.NewServer(app.Server().Handler)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig() config.Config {
	return config.Config{
		Port:                 "0",
		LogLevel:             "info",
		ShutdownGracePeriod:  time.Second,
		ReadHeaderTimeout:    time.Second,
		WriteTimeout:         time.Second,
		IdleTimeout:          time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         100,
		RateLimitBurst:       100,
	}
}

func doJSON(t *testing.T, method, url string, payload any, out any) int {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func TestIntegrationFlow(t *testing.T) {
	srv := newServer(t, testConfig())

	if code := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil, nil); code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", code)
	}

	var presets struct {
		Presets []struct {
			Name string `json:"name"`
		} `json:"presets"`
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/presets", nil, &presets); code != http.StatusOK {
		t.Fatalf("expected 200 from presets, got %d", code)
	}
	if len(presets.Presets) != 2 || presets.Presets[1].Name != "Naeem" {
		t.Fatalf("unexpected presets: %+v", presets.Presets)
	}

	var list struct {
		Clothing    map[string]int  `json:"clothing"`
		Accessories map[string]bool `json:"accessories"`
		TotalItems  int             `json:"totalItems"`
		Extras      []any           `json:"extras"`
	}
	code := doJSON(t, http.MethodPost, srv.URL+"/api/packing-list", map[string]any{
		"days":        14,
		"temperature": 3,
		"weather":     []string{"snow"},
		"preset":      "Naeem",
	}, &list)
	if code != http.StatusOK {
		t.Fatalf("expected 200 from packing-list, got %d", code)
	}

	want := map[string]int{
		"underwear":   7,
		"socks":       7,
		"trousers":    5,
		"shorts":      0,
		"tees":        7,
		"shirts":      2,
		"thinJumper":  0,
		"thickJumper": 4,
	}
	for key, n := range want {
		if list.Clothing[key] != n {
			t.Fatalf("expected %s=%d, got %d", key, n, list.Clothing[key])
		}
	}
	if list.TotalItems != 32 {
		t.Fatalf("unexpected total items %d", list.TotalItems)
	}
	for _, key := range []string{"warmJacket", "hat", "gloves", "gaitor", "thermals"} {
		if !list.Accessories[key] {
			t.Fatalf("expected %s for a snowy 3°C trip", key)
		}
	}
	if list.Accessories["lightJacket"] || list.Accessories["sunglasses"] {
		t.Fatalf("unexpected accessories: %+v", list.Accessories)
	}
	if len(list.Extras) == 0 {
		t.Fatalf("expected preset extras")
	}
}

func TestIntegrationCustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `presets:
  - name: Hiker
    clothing:
      socks:
        every_n_days: 1
      bottoms:
        every_n_days: 2
labels:
  passport: ID Card
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cfg := testConfig()
	cfg.CatalogFile = path
	srv := newServer(t, cfg)

	var list struct {
		Clothing map[string]int `json:"clothing"`
	}
	code := doJSON(t, http.MethodPost, srv.URL+"/api/packing-list", map[string]any{
		"days":              6,
		"temperature":       30,
		"laundryEveryNDays": 4,
		"preset":            "hiker",
	}, &list)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if list.Clothing["socks"] != 4 || list.Clothing["shorts"] != 1 || list.Clothing["trousers"] != 1 {
		t.Fatalf("unexpected clothing: %+v", list.Clothing)
	}

	var extras struct {
		Groups []struct {
			Items []struct {
				Key   string `json:"key"`
				Label string `json:"label"`
			} `json:"items"`
		} `json:"groups"`
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/extras", nil, &extras); code != http.StatusOK {
		t.Fatalf("expected 200 from extras, got %d", code)
	}
	if extras.Groups[0].Items[0].Key != "passport" || extras.Groups[0].Items[0].Label != "ID Card" {
		t.Fatalf("expected label override, got %+v", extras.Groups[0].Items[0])
	}

	if code := doJSON(t, http.MethodGet, srv.URL+"/api/presets/ben", nil, nil); code != http.StatusNotFound {
		t.Fatalf("expected file presets to replace defaults, got %d", code)
	}
}

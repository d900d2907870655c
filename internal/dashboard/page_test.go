package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zakhtar/go-mobility-map/internal/config"
	"github.com/zakhtar/go-mobility-map/internal/dataset"
)

const aboutHeading = "What is the purpose of this dashboard?"

func setupPageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ds := &dataset.Dataset{
		Times: dataset.NewTimeIndex([]time.Time{
			time.Date(2020, time.April, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2020, time.April, 2, 8, 0, 0, 0, time.UTC),
			time.Date(2020, time.April, 2, 16, 0, 0, 0, time.UTC),
		}),
		SourceCategories:      []string{"Home", "Work"},
		DestinationCategories: []string{"Work", "Market"},
	}
	cfg := &config.Config{
		Map: config.MapConfig{CenterLat: 20.5937, CenterLon: 78.9629, Zoom: 8},
	}

	router := gin.New()
	NewPage(ds, cfg).RegisterRoutes(router)
	return router
}

func getPage(t *testing.T, router *gin.Engine, url string) string {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", url, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("%s: expected status 200, got %d", url, w.Code)
	}
	return w.Body.String()
}

func TestIndex_RendersControls(t *testing.T) {
	router := setupPageRouter()
	body := getPage(t, router, "/")

	for _, want := range []string{
		PageTitle,
		`<option value="Home">Home</option>`,
		`<option value="Work">Work</option>`,
		`<option value="Market">Market</option>`,
		"02 Apr (1)",
		"02 Apr (2)",
		"02 Apr (3)",
		`max="2"`,
		"leaflet.js",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestIndex_BootPayload(t *testing.T) {
	router := setupPageRouter()
	body := getPage(t, router, "/")

	for _, want := range []string{
		`"center":[20.5937,78.9629]`,
		`"zoom":8`,
		`"02 Apr (1)"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("boot payload is missing %q", want)
		}
	}
}

func TestIndex_AboutClosedByDefault(t *testing.T) {
	router := setupPageRouter()
	body := getPage(t, router, "/")

	if strings.Contains(body, aboutHeading) {
		t.Error("about panel should start closed")
	}
	if !strings.Contains(body, `href="/?about=closed&amp;toggle=1"`) {
		t.Error("Learn more link should offer to toggle from the closed state")
	}
}

func TestIndex_AboutOpensOnClick(t *testing.T) {
	router := setupPageRouter()
	body := getPage(t, router, "/?about=closed&toggle=1")

	if !strings.Contains(body, aboutHeading) {
		t.Error("clicking Learn more on a closed panel should open it")
	}
	if !strings.Contains(body, `href="/?about=open&amp;toggle=1"`) {
		t.Error("Learn more link should offer to toggle from the open state")
	}
}

func TestIndex_AboutClosesOnSecondClick(t *testing.T) {
	router := setupPageRouter()
	body := getPage(t, router, "/?about=open&toggle=1")

	if strings.Contains(body, aboutHeading) {
		t.Error("clicking Learn more on an open panel should close it")
	}
}

func TestIndex_AboutKeepsStateWithoutClick(t *testing.T) {
	router := setupPageRouter()
	body := getPage(t, router, "/?about=open")

	if !strings.Contains(body, aboutHeading) {
		t.Error("reloading with about=open should keep the panel open")
	}
}

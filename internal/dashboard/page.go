// Package dashboard serves the map page. The page is a single template
// with no state of its own: the dropdowns and slider drive /api/routes,
// and the Learn More panel folds its state into the URL so the server
// stays stateless.
package dashboard

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zakhtar/go-mobility-map/internal/config"
	"github.com/zakhtar/go-mobility-map/internal/dataset"
)

// PageTitle is the dashboard heading. /api/meta reports it too so API
// consumers can label their own views consistently.
const PageTitle = "COVID-19 Point Mobility Data Visualization"

type Page struct {
	ds  *dataset.Dataset
	cfg *config.Config
}

func NewPage(ds *dataset.Dataset, cfg *config.Config) *Page {
	return &Page{
		ds:  ds,
		cfg: cfg,
	}
}

func (p *Page) RegisterRoutes(r *gin.Engine) {
	r.GET("/", p.index)
}

// Mark is one slider stop: a time index and its display label.
type Mark struct {
	Index int
	Label string
}

type pageData struct {
	Title                 string
	SourceCategories      []string
	DestinationCategories []string
	Marks                 []Mark
	MaxIndex              int
	AboutOpen             bool
	AboutState            string
	Boot                  template.JS
}

var pageTmpl = template.Must(template.New("dashboard").Parse(pageTemplate))

// index renders the dashboard. The Learn More state travels in the URL:
// about carries the state the link was rendered with, toggle=1 marks an
// actual click, and Toggle combines the two.
func (p *Page) index(c *gin.Context) {
	open := Toggle(c.Query("about") == "open", c.Query("toggle") == "1")
	state := "closed"
	if open {
		state = "open"
	}

	times := p.ds.Times.Times()
	marks := make([]Mark, 0, len(times))
	labels := make([]string, 0, len(times))
	for i, t := range times {
		label := dataset.SlotLabel(t)
		marks = append(marks, Mark{Index: i, Label: label})
		labels = append(labels, label)
	}

	boot, err := jsonJS(map[string]any{
		"labels": labels,
		"center": []float64{p.cfg.Map.CenterLat, p.cfg.Map.CenterLon},
		"zoom":   p.cfg.Map.Zoom,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	data := pageData{
		Title:                 PageTitle,
		SourceCategories:      p.ds.SourceCategories,
		DestinationCategories: p.ds.DestinationCategories,
		Marks:                 marks,
		MaxIndex:              len(marks) - 1,
		AboutOpen:             open,
		AboutState:            state,
		Boot:                  boot,
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pageTmpl.Execute(c.Writer, data); err != nil {
		slog.Error("dashboard page render failed", "error", err)
	}
}

// jsonJS encodes v for embedding inside the page script. template.JS keeps
// the contextual escaper from re-escaping the JSON.
func jsonJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

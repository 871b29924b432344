package view

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/fadilmartias/hiring-dashboard/internal/dto"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/pkg/errors"
)

const (
	TabAgent     = "agent"
	TabUpload    = "upload"
	TabRanking   = "ranking"
	TabWorkflows = "workflows"
	TabSettings  = "settings"
)

type Tab struct {
	ID    string
	Label string
}

// Tabs in display order. The first one is the default.
var Tabs = []Tab{
	{ID: TabAgent, Label: "AI Agent"},
	{ID: TabUpload, Label: "Upload Resume"},
	{ID: TabRanking, Label: "Candidate Ranking"},
	{ID: TabWorkflows, Label: "Workflows"},
	{ID: TabSettings, Label: "Settings"},
}

// ResolveTab returns tab when it names a known tab, otherwise the default.
func ResolveTab(tab string) string {
	for _, t := range Tabs {
		if t.ID == tab {
			return tab
		}
	}
	return Tabs[0].ID
}

type Page struct {
	Title            string
	ActiveTab        string
	Tabs             []Tab
	Stats            dto.DashboardStatsDTO
	Workflows        []model.WorkflowStatus
	WorkflowsLive    bool
	EditorURL        string
	Settings         dto.SettingsDTO
	ScoringFactors   []model.ScoringFactor
	FilteringOptions []string
	RankingWebhook   string
	Accept           string
	MaxUploadMB      int64
}

//go:embed templates/dashboard.html
var dashboardRaw string

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardRaw))

func RenderDashboard(w io.Writer, page Page) error {
	if page.Tabs == nil {
		page.Tabs = Tabs
	}
	page.ActiveTab = ResolveTab(page.ActiveTab)
	return errors.Wrap(dashboardTemplate.Execute(w, page), "render dashboard")
}

package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aura_server/internal/ai"
	"aura_server/internal/bundle"
	"aura_server/internal/site"
	"aura_server/internal/store"
	"aura_server/internal/types"
	"aura_server/internal/ui"
)

const serviceName = "AURA Platform"

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline  *ai.Generator   // remote generation with local fallback
	local     *site.Generator // template rendering for /generate and /download
	projects  store.Store     // memory or sqlite, chosen by STORE_DRIVER
	publicURL string          // base of downloadUrl, without trailing slash
	version   string          // reported by the health endpoints
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(pipeline *ai.Generator, local *site.Generator, projects store.Store, publicURL, version string) *APIHandler {
	return &APIHandler{
		pipeline:  pipeline,
		local:     local,
		projects:  projects,
		publicURL: strings.TrimRight(publicURL, "/"),
		version:   version,
	}
}

// --- Structs for API Requests/Responses ---

// SiteRequest is the body accepted by the generation endpoints. Both the
// form field names (siteName, siteType) and the short names (name, type)
// are understood, and the whole object may be wrapped in "specs".
type SiteRequest struct {
	SiteName    string       `json:"siteName"`
	Name        string       `json:"name"`
	SiteType    string       `json:"siteType"`
	Type        string       `json:"type"`
	Theme       string       `json:"theme"`
	Pages       []string     `json:"pages"`
	Description string       `json:"description"`
	Features    []string     `json:"features"`
	Style       string       `json:"style"`
	Tech        string       `json:"tech"`
	Specs       *SiteRequest `json:"specs"`
}

// Specification resolves aliases and the "specs" wrapper.
func (r SiteRequest) Specification() types.Specification {
	if r.Specs != nil {
		return r.Specs.Specification()
	}
	return types.Specification{
		Name:        firstNonEmpty(r.SiteName, r.Name),
		Type:        firstNonEmpty(r.SiteType, r.Type),
		Theme:       r.Theme,
		Pages:       r.Pages,
		Description: r.Description,
		Features:    r.Features,
		Style:       r.Style,
		Tech:        r.Tech,
	}
}

type GenerateResponse struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

type BuildWebsiteResponse struct {
	Success     bool                `json:"success"`
	ProjectID   string              `json:"projectId"`
	Files       types.GeneratedSite `json:"files"`
	Source      string              `json:"source"`
	DownloadURL string              `json:"downloadUrl"`
}

type ProjectResponse struct {
	Files   types.GeneratedSite `json:"files"`
	Project store.Project       `json:"project"`
}

type ListProjectsResponse struct {
	Projects []store.Project `json:"projects"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Projects int    `json:"projects"`
}

// --- API Handlers ---

// GET /
func (h *APIHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", ui.Index())
}

// POST /generate
func (h *APIHandler) Generate(c *gin.Context) {
	spec, ok := bindSpecification(c)
	if !ok {
		return
	}

	generated := h.local.Generate(spec)
	c.JSON(http.StatusOK, GenerateResponse{HTML: generated.HTML, CSS: generated.CSS, JS: generated.JS})
}

// POST /download
func (h *APIHandler) Download(c *gin.Context) {
	spec, ok := bindSpecification(c)
	if !ok {
		return
	}

	spec = site.Normalize(spec) // bundle header shows the resolved name and type
	generated := h.local.Generate(spec)
	body := bundle.Render(generated, bundle.Meta{Name: spec.Name, Type: spec.Type, GeneratedAt: h.local.Now()})
	writeAttachment(c, body) // served as website.txt
}

// POST /api/build-website
func (h *APIHandler) BuildWebsite(c *gin.Context) {
	spec, ok := bindSpecification(c)
	if !ok {
		return
	}

	spec = site.Normalize(spec)
	log.Printf("Info: building website for %q", spec.Name)

	// Remote failures are absorbed here; res.Source records which stage answered.
	res := h.pipeline.GenerateSite(c.Request.Context(), spec)
	project := store.Project{
		ID:        store.NewID(),
		Name:      spec.Name,
		Type:      spec.Type,
		Theme:     spec.Theme,
		CreatedAt: h.local.Now().UTC(),
		Status:    store.StatusGenerated,
		Source:    string(res.Source),
		Code:      res.Site,
	}
	if err := h.projects.Append(project); err != nil {
		log.Printf("ERROR: failed to store project %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store project"})
		return
	}

	c.JSON(http.StatusOK, BuildWebsiteResponse{
		Success:     true,
		ProjectID:   project.ID,
		Files:       project.Code,
		Source:      project.Source,
		DownloadURL: fmt.Sprintf("%s/api/download/%s", h.publicURL, project.ID),
	})
}

// GET /api/download/:projectId
// With ?format=txt the project is returned as a plain-text bundle.
func (h *APIHandler) GetProject(c *gin.Context) {
	project, ok := h.lookupProject(c)
	if !ok {
		return
	}

	if c.Query("format") == "txt" {
		writeAttachment(c, bundle.Render(project.Code, bundle.Meta{
			Name:        project.Name,
			Type:        project.Type,
			GeneratedAt: project.CreatedAt,
		}))
		return
	}
	c.JSON(http.StatusOK, ProjectResponse{Files: project.Code, Project: project})
}

// GET /api/projects/:projectId/instructions
func (h *APIHandler) ProjectInstructions(c *gin.Context) {
	project, ok := h.lookupProject(c)
	if !ok {
		return
	}

	instructions := project.Code.Instructions
	if instructions == "" {
		instructions = site.Instructions(project.Name)
	}
	rendered, err := bundle.InstructionsHTML(instructions)
	if err != nil {
		log.Printf("ERROR: rendering instructions for project %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render instructions"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(rendered))
}

// GET /api/projects
func (h *APIHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		log.Printf("ERROR: listing projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	if projects == nil {
		projects = []store.Project{}
	}
	c.JSON(http.StatusOK, ListProjectsResponse{Projects: projects})
}

// Health returns a handler reporting status with the given literal.
func (h *APIHandler) Health(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := h.projects.Count()
		if err != nil {
			log.Printf("WARN: health check could not count projects: %v", err)
		}
		c.JSON(http.StatusOK, HealthResponse{
			Status:   status,
			Service:  serviceName,
			Version:  h.version,
			Projects: count,
		})
	}
}

// NotFound answers every unmatched route or method.
func (h *APIHandler) NotFound(c *gin.Context) {
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404 Not Found</h1><p>AURA Website Builder</p>"))
}

// --- helpers ---

func bindSpecification(c *gin.Context) (types.Specification, bool) {
	var req SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return types.Specification{}, false
	}
	return req.Specification(), true
}

func (h *APIHandler) lookupProject(c *gin.Context) (store.Project, bool) {
	projectID := c.Param("projectId")
	project, err := h.projects.Get(projectID)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return store.Project{}, false
		}
		log.Printf("ERROR: fetching project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return store.Project{}, false
	}
	return project, true
}

func writeAttachment(c *gin.Context, body string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bundle.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

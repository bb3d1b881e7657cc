package contributions

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contribgraph/internal/graph"
	"contribgraph/internal/providers"
	"contribgraph/pkg/models"
)

type Handler struct {
	GitHub    providers.Source
	GitLab    providers.Source
	Generator *graph.Generator

	// deployID tags ETags so a new deployment invalidates cached graphs.
	deployID string
}

func NewHandler(github, gitlab providers.Source, gen *graph.Generator, deployID string) *Handler {
	if deployID == "" {
		deployID = uuid.NewString()
	}
	return &Handler{
		GitHub:    github,
		GitLab:    gitlab,
		Generator: gen,
		deployID:  deployID,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.get) // GET /api/contributions
}

// get renders the merged contribution graph for the requested usernames.
// Query parameters: github, gitlab (at least one required), theme (optional;
// unknown values fall back to the default palette inside the engine).
func (h *Handler) get(c *gin.Context) {
	githubUser := c.Query("github")
	gitlabUser := c.Query("gitlab")
	if githubUser == "" && gitlabUser == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of github or gitlab username is required"})
		return
	}

	ctx := c.Request.Context()

	var wg sync.WaitGroup
	var githubRecords, gitlabRecords []models.DayRecord

	if githubUser != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			githubRecords = h.fetch(ctx, h.GitHub, githubUser)
		}()
	}
	if gitlabUser != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gitlabRecords = h.fetch(ctx, h.GitLab, gitlabUser)
		}()
	}
	wg.Wait()

	img, err := h.Generator.Generate(githubRecords, gitlabRecords, c.Query("theme"))
	if err != nil {
		log.Printf("[contributions] render error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate contribution graph"})
		return
	}

	etag := fmt.Sprintf(`"%s-%d"`, h.deployID, len(img))
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600, must-revalidate")
	c.Header("ETag", etag)
	c.Data(http.StatusOK, "image/png", img)
}

// fetch absorbs a failed provider call as an empty record list so one broken
// or rate-limited upstream degrades to a flat graph instead of a failed
// request.
func (h *Handler) fetch(ctx context.Context, src providers.Source, username string) []models.DayRecord {
	records, err := src.Fetch(ctx, username)
	if err != nil {
		log.Printf("[contributions] source %s error: %v", src.Name(), err)
		return nil
	}
	return records
}

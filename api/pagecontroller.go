package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"adcopy/form"
	"adcopy/preview"
	"adcopy/workflow"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the HTML page and its form actions.
// Every action redirects back to the page, which shows the outcome.
func RegisterPageRoutes(r *gin.Engine, s *Server) {
	g := r.Group("/", s.sessionMiddleware())
	g.GET("/", s.handleIndex)
	g.POST("/form", s.handleForm)
	g.POST("/form/select/:field", s.handleSelect)
	g.POST("/form/reset/:field", s.handleReset)
	g.POST("/generate", s.handleGenerate)
	g.POST("/scrape", s.handleScrape)
	g.POST("/examples/:index", s.handleLoadExample)
	g.POST("/error/dismiss", s.handleDismissError)
	g.GET("/export", s.handleExport)
}

func (s *Server) handleIndex(c *gin.Context) {
	renderPage(c, http.StatusOK)
}

// handleForm applies the posted fields; a changed shop URL scrapes
func (s *Server) handleForm(c *gin.Context) {
	_ = s.runner(c).ApplyForm(c.Request.Context(), postedFields(c))
	backToPage(c)
}

// handleSelect applies a dropdown choice. Other posted fields are kept so
// unsaved edits survive the round trip. The choice comes from "option" or,
// when the dropdown itself posted the form, from the field's own value.
func (s *Server) handleSelect(c *gin.Context) {
	field := c.Param("field")
	option, ok := c.GetPostForm("option")
	if !ok {
		option = c.PostForm(field)
	}
	r := s.runner(c)
	_ = r.ApplyForm(c.Request.Context(), postedFieldsExcept(c, field))
	_ = r.Select(field, option)
	backToPage(c)
}

func (s *Server) handleReset(c *gin.Context) {
	field := c.Param("field")
	r := s.runner(c)
	_ = r.ApplyForm(c.Request.Context(), postedFieldsExcept(c, field))
	_ = r.Reset(field)
	backToPage(c)
}

func (s *Server) handleGenerate(c *gin.Context) {
	ctx := c.Request.Context()
	r := s.runner(c)

	// A bad field or a failed auto-scrape leaves its banner up instead of generating
	if err := r.ApplyForm(ctx, postedFields(c)); err != nil {
		log.Printf("⚠️ Form not submitted: %v", err)
		backToPage(c)
		return
	}
	err := r.Submit(ctx)
	if errors.Is(err, workflow.ErrBusy) {
		renderPage(c, http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("⚠️ Generate failed: %v", err)
	}
	backToPage(c)
}

// handleScrape applies the posted fields and scrapes the posted URL
// whether or not it changed
func (s *Server) handleScrape(c *gin.Context) {
	ctx := c.Request.Context()
	r := s.runner(c)

	fields := postedFields(c)
	url, hasURL := fields[form.FieldURL]
	delete(fields, form.FieldURL)
	_ = r.ApplyForm(ctx, fields)
	if hasURL {
		_ = session(c).UpdateForm(func(f *form.Form) error {
			return f.SetField(form.FieldURL, url)
		})
	}

	if err := r.Scrape(ctx); err != nil {
		log.Printf("⚠️ Scrape failed: %v", err)
	}
	backToPage(c)
}

func (s *Server) handleLoadExample(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err == nil {
		_ = s.runner(c).LoadExample(c.Request.Context(), i)
	}
	backToPage(c)
}

func (s *Server) handleDismissError(c *gin.Context) {
	s.runner(c).DismissError()
	backToPage(c)
}

func (s *Server) handleExport(c *gin.Context) {
	text, err := s.runner(c).Export(c.Request.Context(), sessionID(c))
	if errors.Is(err, workflow.ErrNothingToExport) {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", preview.ExportFilename))
	c.Data(http.StatusOK, preview.ExportContentType, []byte(text))
}

// postedFields collects the known form fields present in the request body
func postedFields(c *gin.Context) map[string]string {
	values := make(map[string]string)
	for _, field := range form.Fields {
		if v, ok := c.GetPostForm(field); ok {
			values[field] = v
		}
	}
	return values
}

func postedFieldsExcept(c *gin.Context, field string) map[string]string {
	values := postedFields(c)
	delete(values, field)
	return values
}

func renderPage(c *gin.Context, status int) {
	html, err := RenderIndexHTML(buildPageData(session(c).Snapshot()))
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render page: %v", err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", html)
}

func backToPage(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

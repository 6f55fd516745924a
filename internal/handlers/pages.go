// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"nanamelab/internal/gate"
	"nanamelab/internal/htmltext"
	"nanamelab/internal/middleware"
	"nanamelab/internal/models"
	"nanamelab/internal/render"
	"nanamelab/internal/wordpress"
)

const descriptionLen = 120

// Home renders the home page. Categories and the about page are fetched
// concurrently; a failure of either leaves its part of the page empty.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		g          errgroup.Group
		categories []models.Category
		about      *models.Page
		catErr     error
		aboutErr   error
	)
	g.Go(func() error {
		categories, catErr = s.content.ListAllCategories(ctx)
		return nil
	})
	g.Go(func() error {
		about, aboutErr = s.content.GetStaticPageBySlug(ctx, aboutPageSlug)
		return nil
	})
	g.Wait()

	if catErr != nil {
		slog.Error("list categories failed", "error", catErr)
	}
	if aboutErr != nil {
		slog.Error("get about page failed", "error", aboutErr)
	}

	s.renderer.Page(w, r, http.StatusOK, "home", &render.PageData{
		Section: "home",
		Data:    buildHome(categories, about, s.featured),
	})
}

// Works renders the category index.
func (s *Site) Works(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		g          errgroup.Group
		categories []models.Category
		page       *models.Page
		catErr     error
		pageErr    error
	)
	g.Go(func() error {
		categories, catErr = s.content.ListAllCategories(ctx)
		return nil
	})
	g.Go(func() error {
		page, pageErr = s.content.GetStaticPageBySlug(ctx, worksPageSlug)
		return nil
	})
	g.Wait()

	if catErr != nil {
		slog.Error("list categories failed", "error", catErr)
	}
	if pageErr != nil {
		slog.Warn("get works page failed", "error", pageErr)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	view := WorksView{Hero: worksHero(page), Categories: categories}
	s.renderer.Page(w, r, http.StatusOK, "works", &render.PageData{
		Title:       "Works",
		Description: view.Hero.Desc,
		Section:     "works",
		Data:        view,
	})
}

// Category renders one category and its works. An unknown category is a
// 404. A failed listing renders the same empty grid as a category with no
// works.
func (s *Site) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categorySlug := slugParam(r, "category")
	if categorySlug == "" {
		s.NotFound(w, r)
		return
	}

	cat, err := s.content.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		s.serverError(w, r, http.StatusBadGateway, "get category failed", err)
		return
	}
	if cat == nil {
		s.NotFound(w, r)
		return
	}

	view := CategoryView{Category: cat, Hero: categoryHero(cat), Works: []models.Work{}}
	works, err := s.content.ListItemsByCategory(ctx, categorySlug)
	if err != nil {
		slog.Error("list works failed", "error", err, "category", categorySlug)
		view.LoadFailed = true
	} else {
		view.Works = works
	}

	s.renderer.Page(w, r, http.StatusOK, "category", &render.PageData{
		Title:       cat.DisplayTitle(),
		Description: htmltext.Truncate(htmltext.PlainText(cat.DisplayDesc()), descriptionLen),
		Section:     "works",
		Data:        view,
	})
}

// Work renders a work detail page. Protected works render the credential
// form until unlocked by a POST to the unlock route.
func (s *Site) Work(w http.ResponseWriter, r *http.Request) {
	view, status, err := s.loadWork(r)
	if err != nil {
		s.serverError(w, r, status, "load work failed", err)
		return
	}
	if view == nil {
		s.NotFound(w, r)
		return
	}

	ctl := gate.New(view.Work, s.content, gate.WithLogger(requestLogger(r)))
	s.renderWork(w, r, http.StatusOK, view, ctl, false)
}

// loadWork fetches the work and its category concurrently. A nil view
// with a nil error means one of them does not exist. On error the
// returned status is the one to render. The breadcrumb follows the
// work's primary term; the URL category fills in when it has none.
func (s *Site) loadWork(r *http.Request) (*WorkView, int, error) {
	categorySlug := slugParam(r, "category")
	workSlug := slugParam(r, "slug")
	if categorySlug == "" || workSlug == "" {
		return nil, http.StatusNotFound, nil
	}

	var (
		work *models.Work
		cat  *models.Category
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		work, err = s.content.GetItemBySlug(gctx, workSlug)
		return err
	})
	g.Go(func() error {
		var err error
		cat, err = s.content.GetCategoryBySlug(gctx, categorySlug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, statusFor(err), err
	}
	if work == nil || cat == nil {
		return nil, http.StatusNotFound, nil
	}

	view := &WorkView{
		PathCategory: cat.Slug,
		CategorySlug: cat.Slug,
		CategoryName: cat.DisplayTitle(),
		Work:         work,
	}
	if term := work.PrimaryTerm(); term != nil && term.Slug != "" && term.Slug != cat.Slug {
		view.CategorySlug = term.Slug
		view.CategoryName = orDefault(term.Name, term.Slug)
	}
	return view, http.StatusOK, nil
}

// renderWork renders a work page in the controller's current state. When
// fragment is set only the "gate" block is rendered, for HTMX swaps.
func (s *Site) renderWork(w http.ResponseWriter, r *http.Request, status int, view *WorkView, ctl *gate.Controller, fragment bool) {
	view.Work = ctl.Work()
	if work, ok := ctl.Content(); ok {
		view.Unlocked = true
		view.Work = work
		buildWork(view)
	}

	data := &render.PageData{
		Title:       view.Work.Title,
		Description: htmltext.Truncate(htmltext.PlainText(view.Work.Excerpt), descriptionLen),
		Section:     "works",
		Data:        view,
	}
	if fragment {
		s.renderer.Fragment(w, r, status, "work", "gate", data)
		return
	}
	s.renderer.Page(w, r, status, "work", data)
}

// About renders the about page. A missing page is a 404.
func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	page, err := s.content.GetStaticPageBySlug(r.Context(), aboutPageSlug)
	if err != nil {
		s.serverError(w, r, http.StatusBadGateway, "get about page failed", err)
		return
	}
	if page == nil {
		s.NotFound(w, r)
		return
	}

	view := buildAbout(page)
	s.renderer.Page(w, r, http.StatusOK, "about", &render.PageData{
		Title:       "About",
		Description: htmltext.Truncate(htmltext.PlainText(view.Hero.Desc), descriptionLen),
		Section:     "about",
		Data:        view,
	})
}

// statusFor maps a content API error to the status shown to the visitor.
func statusFor(err error) int {
	switch {
	case wordpress.IsNotFound(err):
		return http.StatusNotFound
	case wordpress.IsTransport(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// requestLogger returns the default logger tagged with the request id.
func requestLogger(r *http.Request) *slog.Logger {
	return slog.Default().With("request_id", requestID(r))
}

func requestID(r *http.Request) string {
	return middleware.RequestID(r.Context())
}

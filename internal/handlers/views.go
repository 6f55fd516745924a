// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"

	"nanamelab/internal/contact"
	"nanamelab/internal/models"
)

// View models handed to the templates. Handlers build them from the
// normalized content models; templates never reach into raw backend data.

// Hero is the full-width page header shared by the works, category and
// about pages.
type Hero struct {
	Main     string
	Sub      string
	Title    string
	Subtitle string
	Desc     string
	Alt      string
}

// Slide is one image of the home page main visual.
type Slide struct {
	Src      string
	SubSrc   string
	Alt      string
	Title    string
	Subtitle string
}

// Capsule is one about-section teaser on the home page.
type Capsule struct {
	ID          string
	EnTitle     string
	NativeTitle string
	Image       string
}

// Feature is a numbered image-and-text block. Link is empty for blocks
// that do not navigate.
type Feature struct {
	Num         string
	EnTitle     string
	NativeTitle string
	Desc        string
	Image       string
	Link        string
	CTA         string
}

// SpecRow is one line of a work's specification table.
type SpecRow struct {
	Label string
	Value string
	URL   string
}

// Story is one narrative section of a work.
type Story struct {
	Label   string
	Heading string
	Body    string
}

// HomeView is the home page.
type HomeView struct {
	Slides   []Slide
	Capsules []Capsule
	Features []Feature
}

// WorksView is the category index.
type WorksView struct {
	Hero       Hero
	Categories []models.Category
}

// CategoryView is one category with its works. LoadFailed separates an
// empty grid caused by a backend failure from a legitimately empty
// category; the page renders both the same way.
type CategoryView struct {
	Category   *models.Category
	Hero       Hero
	Works      []models.Work
	LoadFailed bool
}

// WorkView is a work detail page in either gate state.
type WorkView struct {
	// PathCategory is the category segment of the request path. The
	// breadcrumb fields may differ when the work's primary term does.
	PathCategory string
	CategorySlug string
	CategoryName string
	Work         *models.Work
	Unlocked     bool
	Denied       bool
	Message      string
	Specs        []SpecRow
	Stories      []Story
}

// AboutView is the about page.
type AboutView struct {
	Hero     Hero
	Sections []Feature
}

// ContactView is the contact page and form.
type ContactView struct {
	Form    contact.Message
	Error   string
	Sent    bool
	Enabled bool
}

// Fallback labels for the home page capsules when the about page leaves
// a section title empty.
var capsuleFallbacks = map[string][2]string{
	models.SectionIdentity:     {"IDENTITY", "アイデンティティ"},
	models.SectionCapabilities: {"CAPABILITIES", "ケイパビリティ"},
	models.SectionExpertise:    {"EXPERTISE", "エキスパート"},
}

// buildHome assembles the home page from the category list and the about
// page. about may be nil, in which case no capsules are shown.
func buildHome(categories []models.Category, about *models.Page, featured []string) HomeView {
	v := HomeView{Slides: []Slide{}, Capsules: []Capsule{}, Features: []Feature{}}

	for _, c := range categories {
		if !c.InMainVisual() {
			continue
		}
		v.Slides = append(v.Slides, Slide{
			Src:      c.Meta.ImageAPI,
			SubSrc:   c.Meta.ImageURL,
			Alt:      c.Name,
			Title:    c.Meta.MVTitle,
			Subtitle: c.Meta.MVSubtitle,
		})
	}

	if about != nil {
		for _, ns := range about.Sections.Ordered() {
			fb := capsuleFallbacks[ns.ID]
			c := Capsule{ID: ns.ID, EnTitle: fb[0], NativeTitle: fb[1]}
			if ns.Section != nil {
				c.EnTitle = orDefault(ns.Section.EnTitle, fb[0])
				c.NativeTitle = orDefault(ns.Section.NativeTitle, fb[1])
				c.Image = ns.Section.Image
			}
			v.Capsules = append(v.Capsules, c)
		}
	}

	// Featured categories follow the configured order, not the backend's.
	bySlug := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		bySlug[c.Slug] = c
	}
	for _, s := range featured {
		c, ok := bySlug[s]
		if !ok {
			continue
		}
		v.Features = append(v.Features, Feature{
			Num:         number(len(v.Features)),
			EnTitle:     orDefault(c.Meta.NextTitle, c.Slug),
			NativeTitle: c.Name,
			Desc:        c.Meta.NextDesc,
			Image:       orDefault(c.Meta.NextImage, c.Meta.ImageURL),
			Link:        "/works/" + c.Slug,
			CTA:         orDefault(c.Meta.NextCTA, "View More"),
		})
	}
	return v
}

// worksHero builds the category index hero from the "achievement_cat"
// page. page may be nil.
func worksHero(page *models.Page) Hero {
	if page == nil {
		return Hero{Title: "Works", Subtitle: "Works", Alt: "Works"}
	}
	return Hero{
		Main:     page.Hero.Main,
		Sub:      page.Hero.Sub,
		Title:    page.HeroTitle(),
		Subtitle: orDefault(page.Hero.Subtitle, "Works"),
		Desc:     page.Hero.Desc,
		Alt:      page.Title,
	}
}

// categoryHero builds a category page hero from the term metadata.
func categoryHero(c *models.Category) Hero {
	return Hero{
		Main:     orDefault(c.Meta.HeroImage, c.Meta.ImageURL),
		Sub:      c.Meta.NextImageSub,
		Title:    c.DisplayTitle(),
		Subtitle: orDefault(c.Meta.MVTitle, strings.ToUpper(c.Slug)),
		Desc:     c.DisplayDesc(),
		Alt:      orDefault(c.Meta.HeroImageAlt, c.Name),
	}
}

// buildAbout assembles the about page. Sections the page leaves out are
// skipped.
func buildAbout(page *models.Page) AboutView {
	v := AboutView{
		Hero: Hero{
			Main:     page.Hero.Main,
			Sub:      page.Hero.Sub,
			Title:    page.HeroTitle(),
			Subtitle: orDefault(page.Hero.Subtitle, "ABOUT US"),
			Desc:     page.Hero.Desc,
			Alt:      page.Title,
		},
		Sections: []Feature{},
	}
	for i, ns := range page.Sections.Ordered() {
		if ns.Section == nil {
			continue
		}
		v.Sections = append(v.Sections, Feature{
			Num:         number(i),
			EnTitle:     ns.Section.EnTitle,
			NativeTitle: ns.Section.NativeTitle,
			Desc:        ns.Section.Desc,
			Image:       ns.Section.Image,
		})
	}
	return v
}

// buildWork fills the detail table and story sections of an
// unlocked work.
func buildWork(v *WorkView) {
	d := v.Work.Detail
	v.Specs, v.Stories = nil, nil
	if d.IsEmpty() {
		return
	}
	v.Specs = []SpecRow{
		{Label: "制作期間", Value: d.Period},
		{Label: "担当分野", Value: d.Role},
		{Label: "Design Tools", Value: d.ToolsDesign},
		{Label: "Coding Tools", Value: d.ToolsCoding},
		{Label: "URL", Value: siteLabel(d.SiteURL), URL: d.SiteURL},
	}

	stories := []Story{
		{Label: "Background", Heading: "なぜ、この制作が必要だったのか。", Body: d.Background},
		{Label: "Design", Heading: "誰に、何を届けるためのデザインか。", Body: d.DesignIntent},
		{Label: "Intent", Heading: "デザインと実装を繋ぐ、論理の構築", Body: d.CreativeLogic},
		{Label: "Result", Heading: "完成後に見えてきた新しい課題と手応え。", Body: d.Results},
	}
	for _, s := range stories {
		if strings.TrimSpace(s.Body) != "" {
			v.Stories = append(v.Stories, s)
		}
	}
}

func siteLabel(url string) string {
	if url == "" {
		return "非公開"
	}
	return "サイトを閲覧する"
}

// number formats a zero-based index as a two-digit ordinal ("01").
func number(i int) string {
	return fmt.Sprintf("%02d", i+1)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"encoding/json"
	"fmt"
	"time"

	"nanamelab/internal/htmltext"
	"nanamelab/internal/models"
	"nanamelab/internal/slug"
)

// dateLayouts are the timestamp formats the REST API emits. "date" carries
// no zone (site local time); "date_gmt" and some proxies use RFC 3339.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// normalizeWork converts one raw work record into the view model.
// ok is false when the record is not an object or has no positive id.
func normalizeWork(raw json.RawMessage, taxonomy string) (models.Work, bool) {
	o, ok := parseObject(raw)
	if !ok || o.num("id") <= 0 {
		return models.Work{}, false
	}

	titleHTML := o.rendered("title")
	content := o.obj("content")
	acf := o.obj("acf")
	detail := acf.obj("work_detail")
	embedded := o.obj("_embedded")

	w := models.Work{
		ID:        o.num("id"),
		Slug:      slug.Decode(o.str("slug")),
		Date:      parseDate(o.str("date")),
		Title:     htmltext.Decode(titleHTML),
		TitleHTML: titleHTML,
		Excerpt:   o.rendered("excerpt"),
		Body:      content.str("rendered"),
		Protected: content.flag("protected"),
		Detail:    normalizeDetail(detail, acf),
		Terms:     primaryTerms(embedded, taxonomy),
		Media:     featuredMedia(embedded),
	}
	return w, true
}

func normalizeDetail(detail, acf object) models.WorkDetail {
	d := models.WorkDetail{
		APIImage:      detail.str("next_api_image"),
		Period:        detail.str("period"),
		Role:          detail.str("role"),
		ToolsDesign:   detail.str("tools_design"),
		ToolsCoding:   detail.str("tools_coding"),
		Background:    detail.str("background"),
		DesignIntent:  detail.str("design_intent"),
		CreativeLogic: detail.str("creative_logic"),
		Results:       detail.str("results"),
		SiteURL:       detail.str("site_url"),
		SubImages:     []string{},
	}
	if d.APIImage == "" {
		d.APIImage = acf.str("next_api_image")
	}
	for i := 1; i <= models.MaxSubImages; i++ {
		if img := detail.str(fmt.Sprintf("sub_image_%02d", i)); img != "" {
			d.SubImages = append(d.SubImages, img)
		}
	}
	return d
}

// primaryTerms extracts the category terms from _embedded["wp:term"], an
// array of term groups (one group per taxonomy). The group whose terms
// belong to taxonomy wins; without taxonomy markers the first group is
// used. Absent or malformed data yields an empty list.
func primaryTerms(embedded object, taxonomy string) []models.Term {
	groups := embedded.arr("wp:term")
	if len(groups) == 0 {
		return []models.Term{}
	}

	chosen := parseArray(groups[0])
	for _, g := range groups {
		items := parseArray(g)
		if len(items) == 0 {
			continue
		}
		if first, ok := parseObject(items[0]); ok && first.str("taxonomy") == taxonomy {
			chosen = items
			break
		}
	}

	terms := make([]models.Term, 0, len(chosen))
	for _, raw := range chosen {
		t, ok := parseObject(raw)
		if !ok {
			continue
		}
		s := slug.Decode(t.str("slug"))
		if s == "" {
			continue
		}
		terms = append(terms, models.Term{
			Name: htmltext.Decode(t.str("name")),
			Slug: s,
		})
	}
	return terms
}

// featuredMedia returns the first embedded featured image. Embedded error
// objects (e.g. rest_forbidden for private attachments) carry no
// source_url and yield nil.
func featuredMedia(embedded object) *models.Media {
	items := embedded.arr("wp:featuredmedia")
	if len(items) == 0 {
		return nil
	}
	m, ok := parseObject(items[0])
	if !ok || m.str("source_url") == "" {
		return nil
	}
	return &models.Media{
		URL: m.str("source_url"),
		Alt: m.str("alt_text"),
	}
}

// normalizeCategory converts one raw taxonomy term into the view model.
func normalizeCategory(raw json.RawMessage) (models.Category, bool) {
	o, ok := parseObject(raw)
	if !ok || o.num("id") <= 0 {
		return models.Category{}, false
	}
	acf := o.obj("acf")
	return models.Category{
		ID:          o.num("id"),
		Slug:        slug.Decode(o.str("slug")),
		Name:        htmltext.Decode(o.str("name")),
		Description: o.str("description"),
		Meta: models.CategoryMeta{
			TermImageID:  acf.num("term_image"),
			HeroImage:    acf.str("term_hero_image"),
			HeroImageAlt: acf.str("term_hero_image_alt"),
			ImageURL:     acf.str("term_image_url"),
			ImageAPI:     acf.str("term_image_api"),
			MVTitle:      acf.str("mv_title"),
			MVSubtitle:   acf.str("mv_subtitle"),
			MVDesc:       acf.str("mv_desc"),
			TermTitle:    acf.str("term_title"),
			TermDesc:     acf.str("term_desc"),
			NextImage:    acf.str("next_image"),
			NextImageSub: acf.str("next_image_sub"),
			NextTitle:    acf.str("next_title"),
			NextDesc:     acf.str("next_desc"),
			NextCTA:      acf.str("next_cta"),
		},
	}, true
}

// normalizePage converts one raw page record into the view model. Hero
// fields are named "<prefix>_hero_<field>" and sections
// "<prefix>_<section>", where the prefix depends on the page ("about",
// "works"); the first non-empty match in key order wins.
func normalizePage(raw json.RawMessage) (models.Page, bool) {
	o, ok := parseObject(raw)
	if !ok || o.num("id") <= 0 {
		return models.Page{}, false
	}
	acf := o.obj("acf")
	return models.Page{
		ID:    o.num("id"),
		Slug:  slug.Decode(o.str("slug")),
		Title: htmltext.Decode(o.rendered("title")),
		Hero: models.PageHero{
			Main:     suffixStr(acf, "_hero_main"),
			Sub:      suffixStr(acf, "_hero_sub"),
			Title:    suffixStr(acf, "_hero_title"),
			Subtitle: suffixStr(acf, "_hero_subtitle"),
			Desc:     suffixStr(acf, "_hero_desc"),
		},
		Sections: models.PageSections{
			Identity:     section(acf, "_"+models.SectionIdentity),
			Capabilities: section(acf, "_"+models.SectionCapabilities),
			Expertise:    section(acf, "_"+models.SectionExpertise),
		},
	}, true
}

func suffixStr(acf object, suffix string) string {
	for _, k := range acf.keysWithSuffix(suffix) {
		if s := acf.str(k); s != "" {
			return s
		}
	}
	return ""
}

func section(acf object, suffix string) *models.PageSection {
	for _, k := range acf.keysWithSuffix(suffix) {
		s, ok := parseObject(acf[k])
		if !ok {
			continue
		}
		return &models.PageSection{
			EnTitle:     s.str("next_title"),
			NativeTitle: s.str("next_ja_title"),
			Desc:        s.str("next_desc"),
			Image:       s.str("next_image"),
		}
	}
	return nil
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

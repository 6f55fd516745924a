// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// MaxSubImages is the number of supplementary image slots a work carries.
const MaxSubImages = 4

// Work is a portfolio entry. Title is the entity-decoded display title;
// TitleHTML keeps the string exactly as the backend rendered it.
//
// When Protected is true the Body field is unreliable until a successful
// credential check replaces the whole Work.
type Work struct {
	ID        int        `json:"id"`
	Slug      string     `json:"slug"`
	Date      time.Time  `json:"date"`
	Title     string     `json:"title"`
	TitleHTML string     `json:"title_html"`
	Excerpt   string     `json:"excerpt"`
	Body      string     `json:"body"`
	Protected bool       `json:"protected"`
	Detail    WorkDetail `json:"detail"`
	Terms     []Term     `json:"terms"`
	Media     *Media     `json:"media,omitempty"`
}

// WorkDetail is the structured case-study payload of a work.
type WorkDetail struct {
	APIImage      string   `json:"api_image,omitempty"`
	Period        string   `json:"period"`
	Role          string   `json:"role"`
	ToolsDesign   string   `json:"tools_design"`
	ToolsCoding   string   `json:"tools_coding"`
	Background    string   `json:"background"`
	DesignIntent  string   `json:"design_intent"`
	CreativeLogic string   `json:"creative_logic"`
	Results       string   `json:"results"`
	SiteURL       string   `json:"site_url,omitempty"`
	SubImages     []string `json:"sub_images"`
}

// IsEmpty reports whether no detail field carries a value.
func (d WorkDetail) IsEmpty() bool {
	return d.Period == "" && d.Role == "" && d.ToolsDesign == "" && d.ToolsCoding == "" &&
		d.Background == "" && d.DesignIntent == "" && d.CreativeLogic == "" &&
		d.Results == "" && d.SiteURL == "" && len(d.SubImages) == 0
}

// Term is a taxonomy term embedded in a work.
type Term struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Media is the featured image of a work.
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// PrimaryTerm returns the first embedded taxonomy term, or nil when the
// work carries none.
func (w *Work) PrimaryTerm() *Term {
	if w == nil || len(w.Terms) == 0 {
		return nil
	}
	t := w.Terms[0]
	return &t
}

// DisplayImage returns the detail image override, falling back to the
// featured media URL. Empty when neither is set.
func (w *Work) DisplayImage() string {
	if w.Detail.APIImage != "" {
		return w.Detail.APIImage
	}
	if w.Media != nil {
		return w.Media.URL
	}
	return ""
}

// ImageAlt returns the media alt text, falling back to the decoded title.
func (w *Work) ImageAlt() string {
	if w.Media != nil && w.Media.Alt != "" {
		return w.Media.Alt
	}
	return w.Title
}

// Locked reports whether the body must not be rendered.
func (w *Work) Locked() bool {
	return w.Protected && w.Body == ""
}

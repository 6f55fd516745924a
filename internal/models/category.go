// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a portfolio category (the "achievement_cat" taxonomy term in
// WordPress). Categories are read-only snapshots fetched per request.
type Category struct {
	ID          int          `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Meta        CategoryMeta `json:"meta"`
}

// CategoryMeta holds the optional custom fields attached to a category.
// Absent fields are empty strings (or zero for TermImageID).
type CategoryMeta struct {
	TermImageID  int    `json:"term_image_id,omitempty"`
	HeroImage    string `json:"hero_image,omitempty"`
	HeroImageAlt string `json:"hero_image_alt,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ImageAPI     string `json:"image_api,omitempty"`

	// Main visual (home slider) copy.
	MVTitle    string `json:"mv_title,omitempty"`
	MVSubtitle string `json:"mv_subtitle,omitempty"`
	MVDesc     string `json:"mv_desc,omitempty"`

	// Overrides for the category card and hero.
	TermTitle string `json:"term_title,omitempty"`
	TermDesc  string `json:"term_desc,omitempty"`

	NextImage    string `json:"next_image,omitempty"`
	NextImageSub string `json:"next_image_sub,omitempty"`
	NextTitle    string `json:"next_title,omitempty"`
	NextDesc     string `json:"next_desc,omitempty"`
	NextCTA      string `json:"next_cta,omitempty"`
}

// DisplayTitle returns the title override when set, else the term name.
func (c *Category) DisplayTitle() string {
	if c.Meta.TermTitle != "" {
		return c.Meta.TermTitle
	}
	return c.Name
}

// DisplayDesc returns the description override when set, else the term
// description.
func (c *Category) DisplayDesc() string {
	if c.Meta.TermDesc != "" {
		return c.Meta.TermDesc
	}
	return c.Description
}

// InMainVisual reports whether the category takes part in the home page
// slider. Only categories with an API image are shown there.
func (c *Category) InMainVisual() bool {
	return c.Meta.ImageAPI != ""
}

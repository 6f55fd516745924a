// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Section identifiers of a fixed page, in display order.
const (
	SectionIdentity     = "identity"
	SectionCapabilities = "capabilities"
	SectionExpertise    = "expertise"
)

// Page is a fixed WordPress page (about, works index). Its custom fields
// form a closed set: one hero block and up to three named sections.
type Page struct {
	ID       int          `json:"id"`
	Slug     string       `json:"slug"`
	Title    string       `json:"title"`
	Hero     PageHero     `json:"hero"`
	Sections PageSections `json:"sections"`
}

// PageHero is the hero block at the top of a fixed page.
type PageHero struct {
	Main     string `json:"main,omitempty"`
	Sub      string `json:"sub,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Desc     string `json:"desc,omitempty"`
}

// PageSection is one named section with paired English and native titles.
type PageSection struct {
	EnTitle     string `json:"en_title"`
	NativeTitle string `json:"native_title"`
	Desc        string `json:"desc"`
	Image       string `json:"image"`
}

// PageSections is the closed set of sections a fixed page may carry.
// A nil pointer means the section is absent.
type PageSections struct {
	Identity     *PageSection `json:"identity,omitempty"`
	Capabilities *PageSection `json:"capabilities,omitempty"`
	Expertise    *PageSection `json:"expertise,omitempty"`
}

// NamedSection pairs a section with its identifier.
type NamedSection struct {
	ID      string
	Section *PageSection
}

// Ordered returns all three sections in display order. Absent sections
// are included with a nil Section so callers can apply fallbacks.
func (s PageSections) Ordered() []NamedSection {
	return []NamedSection{
		{ID: SectionIdentity, Section: s.Identity},
		{ID: SectionCapabilities, Section: s.Capabilities},
		{ID: SectionExpertise, Section: s.Expertise},
	}
}

// HeroTitle returns the hero title, falling back to the page title.
func (p *Page) HeroTitle() string {
	if p.Hero.Title != "" {
		return p.Hero.Title
	}
	return p.Title
}

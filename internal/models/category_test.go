// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestCategoryDisplayFallbacks(t *testing.T) {
	c := &Category{Name: "Design", Description: "Visual work"}
	if got := c.DisplayTitle(); got != "Design" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Design")
	}
	if got := c.DisplayDesc(); got != "Visual work" {
		t.Errorf("DisplayDesc() = %q, want %q", got, "Visual work")
	}

	c.Meta.TermTitle = "Graphic Design"
	c.Meta.TermDesc = "Logos and identities"
	if got := c.DisplayTitle(); got != "Graphic Design" {
		t.Errorf("DisplayTitle() = %q, want override", got)
	}
	if got := c.DisplayDesc(); got != "Logos and identities" {
		t.Errorf("DisplayDesc() = %q, want override", got)
	}
}

func TestCategoryInMainVisual(t *testing.T) {
	c := &Category{}
	if c.InMainVisual() {
		t.Error("category without API image should not be in the main visual")
	}
	c.Meta.ImageAPI = "https://example.com/mv.jpg"
	if !c.InMainVisual() {
		t.Error("category with API image should be in the main visual")
	}
}

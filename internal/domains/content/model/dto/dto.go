package dto

import (
	"encoding/json"
)

type HeroContent struct {
	Title           string `json:"title"            validate:"required,max=200"`
	Subtitle        string `json:"subtitle"         validate:"omitempty,max=500"`
	BackgroundImage string `json:"background_image" validate:"omitempty,max=500"`
	CtaText         string `json:"cta_text"         validate:"omitempty,max=100"`
	CtaLink         string `json:"cta_link"         validate:"omitempty,max=500"`
}

type Room struct {
	ID          string  `json:"id"          validate:"required,max=100"`
	Title       string  `json:"title"       validate:"required,max=200"`
	Description string  `json:"description" validate:"omitempty"`
	Price       float64 `json:"price"       validate:"omitempty,gte=0"`
	Image       string  `json:"image"       validate:"omitempty,max=500"`
}

// HomeContent is the singleton home-page document. Sections the backend never
// inspects are kept as raw JSON so the admin panel can evolve them freely.
type HomeContent struct {
	Rooms       []Room          `json:"rooms"        validate:"omitempty,dive"`
	TrustBadges json.RawMessage `json:"trust_badges" validate:"omitempty"`
	Experiences json.RawMessage `json:"experiences"  validate:"omitempty"`
	Culinary    json.RawMessage `json:"culinary"     validate:"omitempty"`
	Faq         json.RawMessage `json:"faq"          validate:"omitempty"`
	Footer      json.RawMessage `json:"footer"       validate:"omitempty"`
	Map         json.RawMessage `json:"map"          validate:"omitempty"`
}

type Branding struct {
	SiteName string `json:"site_name" validate:"required,max=100"`
	Logo     string `json:"logo"      validate:"omitempty,max=500"`
	Tagline  string `json:"tagline"   validate:"omitempty,max=200"`
}

type NavItem struct {
	ID     string `json:"id"     validate:"required,max=50"`
	Label  string `json:"label"  validate:"required,max=100"`
	Path   string `json:"path"   validate:"required,max=200"`
	Active bool   `json:"active"`
}

type SiteConfig struct {
	Branding   Branding  `json:"branding"`
	Navigation []NavItem `json:"navigation" validate:"required,min=1,dive"`
}

// HasActiveHome reports whether the navigation still carries an active home
// entry. Saving a config without one would strand visitors, so it is rejected.
func (c SiteConfig) HasActiveHome() bool {
	for _, item := range c.Navigation {
		if item.ID == "home" && item.Active {
			return true
		}
	}

	return false
}

func DefaultHero() HeroContent {
	return HeroContent{
		Title:           "Welcome to Larkspur Inn",
		Subtitle:        "Quiet rooms, mountain views and a table worth travelling for",
		BackgroundImage: "/images/hero.jpg",
		CtaText:         "Book your stay",
		CtaLink:         "/booking",
	}
}

func DefaultHome() HomeContent {
	return HomeContent{
		Rooms: []Room{
			{ID: "standard-city", Title: "Standard City View", Price: 100, Image: "/images/rooms/standard.jpg"},
			{ID: "deluxe-mountain", Title: "Deluxe Mountain Retreat", Price: 150, Image: "/images/rooms/deluxe.jpg"},
			{ID: "suite-executive", Title: "Executive Suite", Price: 250, Image: "/images/rooms/suite.jpg"},
			{ID: "presidential-penthouse", Title: "Presidential Penthouse", Price: 500, Image: "/images/rooms/presidential.jpg"},
		},
	}
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Branding: Branding{SiteName: "Larkspur Inn"},
		Navigation: []NavItem{
			{ID: "home", Label: "Home", Path: "/", Active: true},
			{ID: "rooms", Label: "Rooms", Path: "/rooms", Active: true},
			{ID: "gallery", Label: "Gallery", Path: "/gallery", Active: true},
			{ID: "contact", Label: "Contact", Path: "/contact", Active: true},
		},
	}
}

// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package technologies holds the content of the Technologies page: the
document metadata, the headings and the ordered list of technologies the
Foodgram project is built with.

All values are fixed at build time.
*/
package technologies

// Document metadata.
const (
	PageTitle       = "О проекте"
	MetaDescription = "Фудграм - Технологии"
	SocialTitle     = "О проекте"
)

// Visible headings.
const (
	Heading    = "Технологии"
	Subheading = "Технологии, которые применены в этом проекте:"
)

// Path is the route the page is served on.
const Path = "/technologies"

var technologies = [...]string{
	"Python 3.9",
	"Django 3.2",
	"Django REST Framework 3.12",
	"Djoser 2.1",
	"requests 2.26",
	"CI/CD: Docker, GitHub Actions",
	"Nginx",
}

// List returns the technologies in display order.
//
// The returned slice is a fresh copy on every call.
func List() []string {
	return append([]string(nil), technologies[:]...)
}

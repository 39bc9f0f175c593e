package models

// ServiceCategory is a group of services offered by the company.
type ServiceCategory struct {
	Slug        string
	Title       string
	Description string
	SubServices []string
}

// FAQ is a frequently asked question.
type FAQ struct {
	Question string
	Answer   string
}

// Currency is a budget currency offered on the contact form.
type Currency struct {
	Code   string
	Symbol string
}

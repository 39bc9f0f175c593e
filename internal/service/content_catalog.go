package service

import "github.com/craviont/craviont-site-api/internal/models"

var serviceCatalog = []models.ServiceCategory{
	{
		Slug:        "ui-ux-frontend-engineering",
		Title:       "UI / UX & Frontend Engineering",
		Description: "We design and build clean, fast, and user-friendly interfaces that are easy to use and easy to maintain.",
		SubServices: []string{
			"UI / UX Design (Web & App)",
			"Design Systems & Component Libraries",
			"Frontend Development (React, Next.js, Vue, etc.)",
			"Responsive & Mobile-first Design",
			"Performance Optimization",
			"Accessibility & Usability Improvements",
		},
	},
	{
		Slug:        "backend-api-development",
		Title:       "Backend & API Development",
		Description: "We build reliable backend systems and APIs that power secure, scalable digital products.",
		SubServices: []string{
			"Backend Development (Node.js, Django, FastAPI, etc.)",
			"REST & GraphQL API Development",
			"Database Design & Optimization",
			"Authentication & Authorization",
			"Third-party API Integrations",
			"System Architecture & Scalability Planning",
		},
	},
	{
		Slug:        "full-stack-development",
		Title:       "Full-Stack Development",
		Description: "From idea to production, we handle the entire development lifecycle with clean architecture and long-term reliability.",
		SubServices: []string{
			"End-to-End Application Development",
			"Web Application Development",
			"Mobile-ready Web Apps",
			"SaaS Product Development",
			"MVP Development",
			"Legacy System Modernization",
		},
	},
	{
		Slug:        "platform-integration-support",
		Title:       "Platform, Integration & Support",
		Description: "We help teams integrate, improve, and maintain their systems so they continue working as the business grows.",
		SubServices: []string{
			"API & System Integrations",
			"Application Maintenance & Support",
			"Performance & Code Audits",
			"Deployment & Environment Setup",
			"Monitoring & Stability Improvements",
			"Technical Consulting & Code Reviews",
		},
	},
	{
		Slug:        "cyber-security-services",
		Title:       "Cyber Security Services",
		Description: "We identify risks, harden your systems, and help you ship with confidence using practical security testing and remediation support.",
		SubServices: []string{
			"Web app security testing",
			"Mobile/iOS security testing",
			"Vulnerability assessment",
			"Penetration testing",
			"Network security",
		},
	},
}

var faqCatalog = []models.FAQ{
	{Question: "Is there a free consultation?", Answer: "Yes. We start every engagement with a free discovery call to understand your goals and recommend the right approach."},
	{Question: "How quickly can we get started?", Answer: "Most projects kick off within 3-5 business days after we align on scope, timelines, and expectations."},
	{Question: "What industries do you work with?", Answer: "We partner with startups and growing businesses across SaaS, e-commerce, fintech, healthcare, and more."},
	{Question: "Do you offer ongoing support?", Answer: "Yes. We provide flexible support and maintenance options after launch to keep your product running smoothly."},
	{Question: "What is your pricing model?", Answer: "We offer both fixed-price project quotes and dedicated team monthly retainers depending on your project's needs."},
	{Question: "Can you help with UI/UX only?", Answer: "Absolutely. We have a dedicated design team that can handle everything from user research to high-fidelity prototyping."},
	{Question: "Do you sign NDAs?", Answer: "Yes, we prioritize client confidentiality and are happy to sign standard non-disclosure agreements before project discussions."},
	{Question: "Which technologies do you specialize in?", Answer: "Our core stack includes React, Node.js, Python, and specialized cloud infrastructure on AWS and Google Cloud."},
}

var currencyCatalog = []models.Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "INR", Symbol: "₹"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "JPY", Symbol: "¥"},
	{Code: "AUD", Symbol: "A$"},
	{Code: "CAD", Symbol: "C$"},
	{Code: "SGD", Symbol: "S$"},
	{Code: "AED", Symbol: "AED"},
}

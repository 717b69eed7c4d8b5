package suggest

// knowledge is the static per-industry table the generator draws from.
// Skill lists are in proposal order; achievement templates are complete
// bullet texts ready to drop into an experience entry.
type knowledge struct {
	TechnicalSkills []string
	SoftSkills      []string
	Achievements    []string
	SummaryTemplate string
}

var industryKnowledge = map[Industry]knowledge{
	IndustrySoftware: {
		TechnicalSkills: []string{
			"Git", "Docker", "TypeScript", "SQL", "REST APIs",
			"CI/CD", "Kubernetes", "Unit Testing",
		},
		SoftSkills: []string{
			"Problem Solving", "Code Review", "Agile Collaboration",
		},
		Achievements: []string{
			"Reduced application load time by 40% through performance profiling and caching",
			"Led migration to automated CI/CD pipeline, cutting release cycle from weeks to days",
			"Designed and shipped REST APIs serving over 1M requests per day",
		},
		SummaryTemplate: "Results-driven software professional with expertise in building scalable, maintainable systems and delivering high-quality solutions through collaborative development and continuous improvement.",
	},
	IndustryMarketing: {
		TechnicalSkills: []string{
			"Google Analytics", "SEO", "Content Strategy", "A/B Testing",
			"Email Marketing", "Social Media Management",
		},
		SoftSkills: []string{
			"Creative Thinking", "Storytelling", "Stakeholder Communication",
		},
		Achievements: []string{
			"Grew organic traffic by 65% in six months through targeted SEO strategy",
			"Launched multi-channel campaign that generated 2,000+ qualified leads",
			"Increased email open rates by 30% through segmentation and A/B testing",
		},
		SummaryTemplate: "Creative marketing professional with a data-driven approach to brand growth, campaign management and audience engagement across digital channels.",
	},
	IndustryFinance: {
		TechnicalSkills: []string{
			"Financial Modeling", "Excel", "Forecasting", "Variance Analysis",
			"GAAP", "SQL",
		},
		SoftSkills: []string{
			"Attention to Detail", "Analytical Thinking", "Risk Assessment",
		},
		Achievements: []string{
			"Identified $250K in annual cost savings through budget variance analysis",
			"Automated monthly reporting workflows, reducing close time by 3 days",
			"Managed investment portfolio analysis supporting $10M in asset decisions",
		},
		SummaryTemplate: "Detail-oriented finance professional experienced in financial analysis, forecasting and reporting, with a track record of improving accuracy and efficiency.",
	},
	IndustryHealthcare: {
		TechnicalSkills: []string{
			"Electronic Health Records", "HIPAA Compliance", "Patient Assessment",
			"Care Coordination", "Clinical Documentation",
		},
		SoftSkills: []string{
			"Empathy", "Crisis Management", "Interdisciplinary Teamwork",
		},
		Achievements: []string{
			"Improved patient satisfaction scores by 20% through streamlined intake process",
			"Coordinated care plans across a 12-member interdisciplinary team",
			"Maintained 100% compliance rating across three consecutive audits",
		},
		SummaryTemplate: "Compassionate healthcare professional dedicated to quality patient care, clinical excellence and effective coordination across care teams.",
	},
	IndustrySales: {
		TechnicalSkills: []string{
			"CRM (Salesforce)", "Pipeline Management", "Lead Qualification",
			"Forecasting", "Contract Negotiation",
		},
		SoftSkills: []string{
			"Relationship Building", "Active Listening", "Resilience",
		},
		Achievements: []string{
			"Exceeded annual quota by 120% while growing territory revenue 35% year over year",
			"Closed 15 enterprise accounts worth $1.2M in combined annual contract value",
			"Shortened average sales cycle by 25% through improved lead qualification",
		},
		SummaryTemplate: "High-performing sales professional with a consistent record of exceeding targets, building lasting client relationships and growing revenue in competitive markets.",
	},
}

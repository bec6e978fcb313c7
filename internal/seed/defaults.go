package seed

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/klarsen/folio/internal/models"
)

func str(s string) *string { return &s }

func defaultProfile() models.Profile {
	links, _ := json.Marshal(models.SocialLinks{
		GitHub:   "https://github.com",
		LinkedIn: "https://linkedin.com",
		Email:    "mailto:hello@example.com",
	})
	return models.Profile{
		Name:        "Jane Doe",
		Title:       "Senior Full-Stack Developer",
		Bio:         "I build accessible, pixel-perfect, and performant web experiences. Award-winning UI/UX designer with a passion for clean code.",
		Summary:     "I'm a software engineer specializing in building (and occasionally designing) exceptional digital experiences. Currently, I'm focused on building accessible, human-centered products.",
		AvatarURL:   str("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?fit=crop&w=300&h=300"),
		ResumeURL:   str("/resume.pdf"),
		SocialLinks: datatypes.JSON(links),
	}
}

func defaultSkills() []models.Skill {
	return []models.Skill{
		{Name: "JavaScript (ES6+)", Category: "Languages"},
		{Name: "TypeScript", Category: "Languages"},
		{Name: "Python", Category: "Languages"},
		{Name: "React", Category: "Frameworks"},
		{Name: "Node.js", Category: "Frameworks"},
		{Name: "Next.js", Category: "Frameworks"},
		{Name: "Tailwind CSS", Category: "Frameworks"},
		{Name: "PostgreSQL", Category: "Tools"},
		{Name: "Docker", Category: "DevOps"},
		{Name: "AWS", Category: "DevOps"},
	}
}

func defaultProjects() []models.Project {
	return []models.Project{
		{
			Title:       "E-Commerce Platform",
			Description: "A full-featured online store with real-time inventory and payments.",
			TechStack:   []string{"React", "Node.js", "Stripe", "PostgreSQL"},
			Outcome:     "Increased sales by 25% through improved UX.",
			GitHubURL:   str("https://github.com"),
			DemoURL:     str("https://example.com"),
			ImageURL:    str("https://images.unsplash.com/photo-1557821552-17105176677c?w=800&q=80"),
		},
		{
			Title:       "Task Management App",
			Description: "Collaborative project management tool for remote teams.",
			TechStack:   []string{"Vue.js", "Firebase", "Tailwind"},
			Outcome:     "Adopted by 500+ teams in first month.",
			GitHubURL:   str("https://github.com"),
			DemoURL:     str("https://example.com"),
			ImageURL:    str("https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&q=80"),
		},
		{
			Title:       "AI Content Generator",
			Description: "Generates blog posts and marketing copy using OpenAI API.",
			TechStack:   []string{"Next.js", "OpenAI", "Vercel"},
			Outcome:     "Featured on Product Hunt #1 Product of the Day.",
			GitHubURL:   str("https://github.com"),
			DemoURL:     str("https://example.com"),
			ImageURL:    str("https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&q=80"),
		},
	}
}

func defaultExperience() []models.Experience {
	return []models.Experience{
		{
			Company:   "Tech Solutions Inc.",
			Role:      "Senior Frontend Engineer",
			StartDate: "2021",
			EndDate:   str("Present"),
			Description: []string{
				"Led migration from legacy codebase to React, improving load times by 40%.",
				"Mentored junior developers and established code review best practices.",
				"Architected reusable component library used across 5 products.",
			},
		},
		{
			Company:   "Creative Digital Agency",
			Role:      "Full Stack Developer",
			StartDate: "2018",
			EndDate:   str("2021"),
			Description: []string{
				"Developed and launched 15+ client websites using JAMstack architecture.",
				"Collaborated with designers to implement pixel-perfect UIs.",
				"Optimized backend APIs for high-traffic campaigns.",
			},
		},
	}
}

package catalog

import "time"

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mockUser() *User {
	return &User{ID: "1", Name: "John Developer", Email: "john@example.com", Verified: true}
}

func mockApps() []App {
	return []App{
		{
			ID:          "1",
			Title:       "AI Assistant",
			Description: "Advanced AI-powered assistant for productivity",
			Category:    "AI Tools",
			Platform:    "web",
			ImageURL:    "https://plus.unsplash.com/premium_photo-1725985758331-e1b46919d8cf?q=80&w=1170&auto=format&fit=crop",
		},
		{
			ID:          "2",
			Title:       "Task Manager",
			Description: "Organize your tasks efficiently",
			Category:    "Productivity",
			Platform:    "mobile",
			ImageURL:    "https://images.unsplash.com/photo-1579869847557-1f67382cc158?q=80&w=1334&auto=format&fit=crop",
		},
		{
			ID:          "3",
			Title:       "Social Hub",
			Description: "Connect with friends and family",
			Category:    "Social",
			Platform:    "web",
			ImageURL:    "https://images.unsplash.com/photo-1515377905703-c4788e51af15?q=80&w=1170&auto=format&fit=crop",
		},
		{
			ID:          "4",
			Title:       "Learning Platform",
			Description: "Interactive educational content",
			Category:    "Education",
			Platform:    "mobile",
			ImageURL:    "https://images.unsplash.com/photo-1524178232363-1fb2b075b655?q=80&w=1170&auto=format&fit=crop",
		},
	}
}

func mockItems() []MarketplaceItem {
	return []MarketplaceItem{
		{
			ID:             "1",
			Title:          "Premium Dashboard Template",
			Description:    "Beautiful admin dashboard template with charts and analytics",
			Price:          49,
			Category:       "Templates",
			Verified:       true,
			Thumbnail:      "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=300&h=300",
			ImageURL:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=1200",
			WhatsappNumber: "1234567890",
			ContactEmail:   "devstudio@example.com",
			Seller:         Seller{Name: "DevStudio", Rating: 4.8},
		},
		{
			ID:             "2",
			Title:          "Mobile App Source Code",
			Description:    "Complete React Native app with authentication and real-time features",
			Price:          299,
			Category:       "Source Code",
			Verified:       true,
			Thumbnail:      "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?auto=format&fit=crop&q=80&w=300&h=300",
			ImageURL:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?auto=format&fit=crop&q=80&w=1200",
			WhatsappNumber: "9876543210",
			ContactEmail:   "codemaster@example.com",
			Seller:         Seller{Name: "CodeMaster", Rating: 4.9},
		},
		{
			ID:             "3",
			Title:          "E-commerce Platform",
			Description:    "Full-stack e-commerce solution with payment integration",
			Price:          199,
			Category:       "Web Apps",
			Verified:       false,
			Thumbnail:      "https://images.unsplash.com/photo-1557821552-17105176677c?auto=format&fit=crop&q=80&w=300&h=300",
			ImageURL:       "https://images.unsplash.com/photo-1557821552-17105176677c?auto=format&fit=crop&q=80&w=1200",
			WhatsappNumber: "5555555555",
			ContactEmail:   "webdev@example.com",
			Seller:         Seller{Name: "WebDev Pro", Rating: 4.5},
		},
		{
			ID:             "4",
			Title:          "UI Component Library",
			Description:    "50+ premium React components with TypeScript support",
			Price:          89,
			Category:       "Mobile Apps",
			Verified:       true,
			Thumbnail:      "https://images.unsplash.com/photo-1607705703571-c5a8695f18f6?q=80&w=1170&auto=format&fit=crop",
			ImageURL:       "https://images.unsplash.com/photo-1607705703571-c5a8695f18f6?q=80&w=1170&auto=format&fit=crop",
			WhatsappNumber: "1111111111",
			ContactEmail:   "uiexpert@example.com",
			Seller:         Seller{Name: "UI Expert", Rating: 4.7},
		},
	}
}

func mockProjects() []UserProject {
	return []UserProject{
		{
			ID:           "1",
			Title:        "AI Task Manager",
			Description:  "Smart task management with AI-powered prioritization and automation",
			Status:       "Approved",
			Thumbnail:    "https://via.placeholder.com/150x150/10b981/ffffff?text=TaskAI",
			Category:     "Productivity",
			PlatformType: "web",
			SubmittedAt:  day("2024-01-15"),
		},
		{
			ID:           "2",
			Title:        "Social Media Dashboard",
			Description:  "Comprehensive dashboard for managing multiple social media accounts",
			Status:       "Pending",
			Thumbnail:    "https://via.placeholder.com/150x150/3b82f6/ffffff?text=Social",
			Category:     "Social",
			PlatformType: "web",
			SubmittedAt:  day("2024-01-18"),
		},
		{
			ID:           "3",
			Title:        "Mobile Game Engine",
			Description:  "Lightweight game engine for 2D mobile games with physics simulation",
			Status:       "Marketplace",
			Thumbnail:    "https://via.placeholder.com/150x150/f59e0b/ffffff?text=Game",
			Category:     "Developer Tools",
			PlatformType: "mobile",
			SubmittedAt:  day("2024-01-10"),
		},
		{
			ID:           "4",
			Title:        "E-commerce Template",
			Description:  "Modern e-commerce template with payment integration and inventory management",
			Status:       "Draft",
			Thumbnail:    "https://via.placeholder.com/150x150/8b5cf6/ffffff?text=Ecom",
			Category:     "Templates",
			PlatformType: "web",
			SubmittedAt:  day("2024-01-20"),
		},
	}
}

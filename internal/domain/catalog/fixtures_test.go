package catalog_test

import "github.com/cannondawg34/portfolio/internal/domain/catalog"

func seedCatalog() []catalog.Record {
	return []catalog.Record{
		{
			Title:       "Cinema E-Booking Website",
			Slug:        "cinema-ebooking",
			Description: "Spring Boot + MySQL ticketing app with seat selection, showtimes, and admin management.",
			Stack:       []string{"Java", "Spring Boot", "SQL", "HTML", "CSS", "React"},
			Category:    "web",
		},
		{
			Title:       "Video Game Query Website",
			Slug:        "vg-query",
			Description: "Flask web app to browse and filter video games with search, sorting, and charts.",
			Stack:       []string{"Python", "Flask", "SQL"},
			Category:    "web",
		},
		{
			Title:       "NBA Predicting Stats",
			Slug:        "nba-stats-predictor",
			Description: "Python/ML project that ingests JSON -> CSV and predicts per-game player stats.",
			Stack:       []string{"Python", "Pandas", "Sklearn"},
			Category:    "data",
		},
		{
			Title:       "Old Portfolio Website",
			Slug:        "school-portfolio",
			Description: "Responsive personal site showcasing coursework and projects, built with React + Vite.",
			Stack:       []string{"React", "Vite", "HTML", "CSS"},
			Category:    "web",
		},
		{
			Title:       "Image Post Gallery (MERN)",
			Slug:        "image-post-gallery",
			Description: "React + Node/Express image gallery backed by MongoDB.",
			Stack:       []string{"React", "Node", "Express", "MongoDB", "Axios", "HTML", "CSS"},
			Category:    "web",
		},
		{
			Title:       "DB Project: Linear Hashing Index",
			Slug:        "db-proj3",
			Description: "Database systems project: a linear-hashing map for indexing, a Table abstraction, and a Tuple Generator.",
			Stack:       []string{"Java", "Indexing", "Linear Hashing"},
			Category:    "data",
		},
		{
			Title:       "TCP Client/Server (Java Sockets)",
			Slug:        "java-tcp-sockets",
			Description: "Networking mini-project: TCP server on port 6789 and a client using sockets and a tiny text protocol.",
			Stack:       []string{"Java", "TCP"},
			Category:    "systems",
		},
	}
}

func slugs(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Slug
	}
	return out
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package fixtures

import "blogadmin/internal/models"

// Default returns the built-in demo data: three categories and nine posts,
// one post per day from 2023-10-01, cycling through the categories.
func Default() *Set {
	cats := []models.Category{
		{ID: 1, Name: "Technology"},
		{ID: 2, Name: "Health"},
		{ID: 3, Name: "Lifestyle"},
	}

	posts := []struct {
		title, body string
	}{
		{"Introduction to TypeScript", "TypeScript is a superset of JavaScript that adds static types."},
		{"Benefits of meditation", "Meditation can reduce stress and improve concentration."},
		{"How to lead a healthy lifestyle", "A balanced diet and regular exercise are key to a healthy life."},
		{"What's new in React 18", "React 18 introduces new features such as concurrent rendering."},
		{"The importance of mental health", "Mental health is as important as physical health."},
		{"Tips for a balanced life", "Find a balance between work, family and personal time."},
		{"Introduction to artificial intelligence", "Artificial intelligence is transforming many industries."},
		{"Strategies for managing stress", "Breathing techniques and mindfulness can help reduce stress."},
		{"How to build healthy habits", "Setting realistic goals is key to forming new habits."},
	}

	first, _ := models.ParseDate("2023-10-01")
	set := &Set{Categories: cats}
	for i, p := range posts {
		set.Posts = append(set.Posts, models.Post{
			ID:          i + 1,
			Title:       p.title,
			Body:        p.body,
			CreatedDate: models.Date{Time: first.AddDate(0, 0, i)},
			Category:    cats[i%len(cats)],
		})
	}
	return set
}

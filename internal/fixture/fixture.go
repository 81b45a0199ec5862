// Package fixture supplies the board the application starts from: either the
// built-in "Product Launch Q3" board or a board read from a YAML file.
package fixture

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2023, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(month time.Month, d int) *time.Time {
	t := day(month, d)
	return &t
}

// Users returns the built-in team
func Users() []*models.User {
	return []*models.User{
		{
			ID:     "user-1",
			Name:   "Alex Morgan",
			Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=256&q=80",
			Role:   "Product Manager",
		},
		{
			ID:     "user-2",
			Name:   "Taylor Chen",
			Avatar: "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&w=256&q=80",
			Role:   "Frontend Developer",
		},
		{
			ID:     "user-3",
			Name:   "Jordan Lee",
			Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=256&q=80",
			Role:   "UX Designer",
		},
		{
			ID:     "user-4",
			Name:   "Sam Kim",
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=256&q=80",
			Role:   "Backend Developer",
		},
	}
}

// Tags returns the built-in tags
func Tags() []*models.Tag {
	return []*models.Tag{
		{ID: "tag-1", Name: "Feature", Color: "#5A67D8"},
		{ID: "tag-2", Name: "Bug", Color: "#E53E3E"},
		{ID: "tag-3", Name: "Enhancement", Color: "#38B2AC"},
		{ID: "tag-4", Name: "Design", Color: "#ED8936"},
		{ID: "tag-5", Name: "Documentation", Color: "#805AD5"},
	}
}

// Default returns a fresh copy of the built-in board.
// Every call builds new values so callers may mutate the result freely.
func Default() *models.Board {
	return &models.Board{
		ID:          "board-1",
		Title:       "Product Launch Q3",
		Description: "Tasks for our Q3 product launch",
		Users:       Users(),
		Tags:        Tags(),
		Columns: []*models.Column{
			{
				ID:    "column-1",
				Title: "Backlog",
				Tasks: []*models.Task{
					{
						ID:          "task-1",
						Title:       "Redesign landing page hero section",
						Description: "Update the hero section to match the new brand guidelines",
						Status:      "Backlog",
						Priority:    models.PriorityMedium,
						DueDate:     dayPtr(time.July, 30),
						CreatedAt:   day(time.July, 15),
						Assignees:   []string{"user-3"},
						Tags:        []string{"tag-4"},
						Comments: []models.Comment{
							{ID: "comment-1", UserID: "user-1", Content: "Make sure to include the new tagline", CreatedAt: day(time.July, 16)},
						},
						Attachments: []string{},
					},
					{
						ID:          "task-2",
						Title:       "Fix mobile navigation menu",
						Description: "Menu doesn't close properly on iOS devices",
						Status:      "Backlog",
						Priority:    models.PriorityHigh,
						DueDate:     dayPtr(time.July, 25),
						CreatedAt:   day(time.July, 18),
						Assignees:   []string{"user-2"},
						Tags:        []string{"tag-2"},
						Comments:    []models.Comment{},
						Attachments: []string{},
					},
					{
						ID:          "task-3",
						Title:       "Update privacy policy",
						Description: "Ensure compliance with latest regulations",
						Status:      "Backlog",
						Priority:    models.PriorityLow,
						DueDate:     dayPtr(time.August, 10),
						CreatedAt:   day(time.July, 20),
						Assignees:   []string{"user-1", "user-4"},
						Tags:        []string{"tag-5"},
						Comments:    []models.Comment{},
						Attachments: []string{},
					},
				},
			},
			{
				ID:    "column-2",
				Title: "In Progress",
				Tasks: []*models.Task{
					{
						ID:          "task-4",
						Title:       "Implement user authentication",
						Description: "Add JWT authentication and user session management",
						Status:      "In Progress",
						Priority:    models.PriorityHigh,
						DueDate:     dayPtr(time.July, 28),
						CreatedAt:   day(time.July, 14),
						Assignees:   []string{"user-4"},
						Tags:        []string{"tag-1"},
						Comments: []models.Comment{
							{ID: "comment-2", UserID: "user-1", Content: "Let's use Auth0 for this", CreatedAt: day(time.July, 15)},
							{ID: "comment-3", UserID: "user-4", Content: "I've started integrating Auth0, should be done by Friday", CreatedAt: day(time.July, 17)},
						},
						Attachments: []string{},
					},
					{
						ID:          "task-5",
						Title:       "Create onboarding flow wireframes",
						Description: "Design user onboarding experience for new users",
						Status:      "In Progress",
						Priority:    models.PriorityMedium,
						DueDate:     dayPtr(time.July, 27),
						CreatedAt:   day(time.July, 16),
						Assignees:   []string{"user-3"},
						Tags:        []string{"tag-4"},
						Comments:    []models.Comment{},
						Attachments: []string{},
					},
				},
			},
			{
				ID:    "column-3",
				Title: "Review",
				Tasks: []*models.Task{
					{
						ID:          "task-6",
						Title:       "Optimize image loading performance",
						Description: "Implement lazy loading and optimize image formats",
						Status:      "Review",
						Priority:    models.PriorityMedium,
						DueDate:     dayPtr(time.July, 25),
						CreatedAt:   day(time.July, 10),
						Assignees:   []string{"user-2"},
						Tags:        []string{"tag-3"},
						Comments: []models.Comment{
							{ID: "comment-4", UserID: "user-2", Content: "Ready for review, improved load time by 40%", CreatedAt: day(time.July, 22)},
						},
						Attachments: []string{},
					},
				},
			},
			{
				ID:    "column-4",
				Title: "Done",
				Tasks: []*models.Task{
					{
						ID:          "task-7",
						Title:       "Setup CI/CD pipeline",
						Description: "Configure GitHub Actions for automated testing and deployment",
						Status:      "Done",
						Priority:    models.PriorityHigh,
						DueDate:     dayPtr(time.July, 20),
						CreatedAt:   day(time.July, 5),
						Assignees:   []string{"user-4"},
						Tags:        []string{"tag-1"},
						Comments: []models.Comment{
							{ID: "comment-5", UserID: "user-1", Content: "This is working great!", CreatedAt: day(time.July, 21)},
						},
						Attachments: []string{},
					},
					{
						ID:          "task-8",
						Title:       "Create component library documentation",
						Description: "Document all UI components with usage examples",
						Status:      "Done",
						Priority:    models.PriorityMedium,
						DueDate:     dayPtr(time.July, 15),
						CreatedAt:   day(time.July, 1),
						Assignees:   []string{"user-2", "user-3"},
						Tags:        []string{"tag-5"},
						Comments:    []models.Comment{},
						Attachments: []string{},
					},
				},
			},
		},
	}
}

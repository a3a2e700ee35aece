package catalog

import "github.com/planwise/planwise/internal/domain"

// FallbackCalendars returns the built-in calendar integrations that are
// appended to every registry build, whether or not the catalog-keyed path
// produced them. Single source of truth for all consumers; returns fresh
// copies so callers cannot mutate the table.
func FallbackCalendars() []domain.App {
	out := make([]domain.App, len(fallbackCalendars))
	copy(out, fallbackCalendars)
	for i := range out {
		out[i].Categories = append([]string(nil), fallbackCalendars[i].Categories...)
	}
	return out
}

var fallbackCalendars = []domain.App{
	{
		Rating:      5,
		Reviews:     69,
		Trending:    true,
		Verified:    true,
		Name:        "Outlook Calendar",
		Description: "Microsoft Office 365 is a suite of apps that helps you stay connected with others and get things done. It includes but is not limited to Microsoft Word, PowerPoint, Excel, Teams, OneNote and OneDrive. Office 365 allows you to work remotely with others on a team and collaborate in an online environment.",
		Type:        "office365_calendar",
		Title:       "Outlook Calendar",
		ImageSrc:    "/api/app-store/office365calendar/icon.svg",
		Variant:     "calendar",
		Category:    "calendar",
		Categories:  []string{"calendar"},
		Logo:        "/api/app-store/office365calendar/icon.svg",
		Publisher:   "Planwise",
		Slug:        "office365-calendar",
		URL:         "https://planwise.dev/",
		Email:       "help@planwise.dev",
		DirName:     "office365calendar",
		Installed:   true,
	},
	{
		Rating:      5,
		Reviews:     69,
		Trending:    true,
		Verified:    true,
		Name:        "Lark Calendar",
		Description: "Lark Calendar is a time management and scheduling service developed by Lark. Allows users to create and edit events, with options available for type and time. Available to anyone that has a Lark account on both mobile and web versions.",
		Type:        "lark_calendar",
		Title:       "Lark Calendar",
		ImageSrc:    "/api/app-store/larkcalendar/icon.svg",
		Variant:     "calendar",
		Category:    "other",
		Categories:  []string{"calendar"},
		Logo:        "/api/app-store/larkcalendar/icon.svg",
		Publisher:   "Lark",
		Slug:        "lark-calendar",
		URL:         "https://larksuite.com/",
		Email:       "alan@larksuite.com",
		DirName:     "larkcalendar",
		Installed:   true,
	},
	{
		Rating:      5,
		Reviews:     69,
		Trending:    true,
		Verified:    true,
		Name:        "Google Calendar",
		Description: "Google Calendar is a time management and scheduling service developed by Google. Allows users to create and edit events, with options available for type and time. Available to anyone that has a Gmail account on both mobile and web versions.",
		Type:        "google_calendar",
		Title:       "Google Calendar",
		ImageSrc:    "/api/app-store/googlecalendar/icon.svg",
		Variant:     "calendar",
		Category:    "calendar",
		Categories:  []string{"calendar"},
		Logo:        "/api/app-store/googlecalendar/icon.svg",
		Publisher:   "Planwise",
		Slug:        "google-calendar",
		URL:         "https://planwise.dev/",
		Email:       "help@planwise.dev",
		DirName:     "googlecalendar",
		Installed:   true,
	},
}

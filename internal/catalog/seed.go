package catalog

import "github.com/planwise/planwise/internal/domain"

// seed is the build-time metadata for every app shipped in the store
// directory. Keyed into the catalog map by DirName at startup.
var seed = []domain.AppMetadata{
	{
		Name:        "Google Calendar",
		Description: "Google Calendar is a time management and scheduling service developed by Google. Allows users to create and edit events, with options available for type and time. Available to anyone that has a Gmail account on both mobile and web versions.",
		Type:        "google_calendar",
		Title:       "Google Calendar",
		Variant:     "calendar",
		Category:    "calendar",
		Categories:  []string{"calendar"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "google-calendar",
		URL:         "https://planwise.dev/",
		Email:       "help@planwise.dev",
		DirName:     "googlecalendar",
		Key:         map[string]string{"client_id": "", "client_secret": ""},
	},
	{
		Name:        "Outlook Calendar",
		Description: "Microsoft Office 365 is a suite of apps that helps you stay connected with others and get things done. It includes but is not limited to Microsoft Word, PowerPoint, Excel, Teams, OneNote and OneDrive. Office 365 allows you to work remotely with others on a team and collaborate in an online environment.",
		Type:        "office365_calendar",
		Title:       "Outlook Calendar",
		Variant:     "calendar",
		Category:    "calendar",
		Categories:  []string{"calendar"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "office365-calendar",
		URL:         "https://planwise.dev/",
		Email:       "help@planwise.dev",
		DirName:     "office365calendar",
		Key:         map[string]string{"client_id": "", "client_secret": ""},
	},
	{
		Name:        "Lark Calendar",
		Description: "Lark Calendar is a time management and scheduling service developed by Lark. Allows users to create and edit events, with options available for type and time. Available to anyone that has a Lark account on both mobile and web versions.",
		Type:        "lark_calendar",
		Title:       "Lark Calendar",
		Variant:     "calendar",
		Category:    "other",
		Categories:  []string{"calendar"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Lark",
		Slug:        "lark-calendar",
		URL:         "https://larksuite.com/",
		Email:       "alan@larksuite.com",
		DirName:     "larkcalendar",
		Key:         map[string]string{"app_id": "", "app_secret": ""},
	},
	{
		Name:        "Zoom Video",
		Description: "Zoom is a web conferencing platform offering video meetings, voice, webinars and chat across desktop, phone, mobile and conference room systems.",
		Type:        "zoom_video",
		Title:       "Zoom Video",
		Variant:     "conferencing",
		Category:    "video",
		Categories:  []string{"video"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "zoom",
		URL:         "https://zoom.us/",
		Email:       "help@planwise.dev",
		DirName:     "zoomvideo",
		Key:         map[string]string{"client_id": "", "client_secret": ""},
		Rating:      4,
		Reviews:     521,
		Trending:    true,
		Verified:    true,
	},
	{
		Name:        "Daily.co Video",
		Description: "Daily.co is a video platform that supports instant video call links for product demos, customer calls and team stand-ups.",
		Type:        "daily_video",
		Title:       "Daily.co Video",
		Variant:     "conferencing",
		Category:    "video",
		Categories:  []string{"video"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "dailyvideo",
		URL:         "https://daily.co/",
		Email:       "help@planwise.dev",
		DirName:     "dailyvideo",
		Key:         map[string]string{"api_key": ""},
	},
	{
		Name:        "Stripe",
		Description: "Stripe is a payment processing platform that lets you collect payments for bookings with support for one-time and recurring charges.",
		Type:        "stripe_payment",
		Title:       "Stripe",
		Variant:     "payment",
		Category:    "payment",
		Categories:  []string{"payment"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "stripe",
		URL:         "https://stripe.com/",
		Email:       "help@planwise.dev",
		DirName:     "stripepayment",
		Key:         map[string]string{"client_id": "", "client_secret": "", "webhook_secret": ""},
		Rating:      5,
		Reviews:     128,
	},
	{
		Name:        "Apple Calendar",
		Description: "Apple Calendar syncs your bookings with iCloud so events show up on every Apple device, with CalDAV under the hood.",
		Type:        "apple_calendar",
		Title:       "Apple Calendar",
		Variant:     "calendar",
		Category:    "calendar",
		Categories:  []string{"calendar"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "apple-calendar",
		URL:         "https://apple.com/calendar",
		Email:       "help@planwise.dev",
		DirName:     "applecalendar",
	},
	{
		Name:        "CalDav",
		Description: "CalDav is an open calendaring protocol. Connect any CalDav-compatible server such as Nextcloud, Fastmail or Baikal.",
		Type:        "caldav_calendar",
		Title:       "CalDav",
		Variant:     "calendar",
		Category:    "calendar",
		Categories:  []string{"calendar"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "caldav-calendar",
		URL:         "https://planwise.dev/",
		Email:       "help@planwise.dev",
		DirName:     "caldavcalendar",
	},
	{
		Name:        "Slack",
		Description: "Slack is a channel-based messaging platform. Get booking notifications and manage your schedule without leaving your workspace.",
		Type:        "slack_messaging",
		Title:       "Slack",
		Variant:     "messaging",
		Category:    "messaging",
		Categories:  []string{"messaging"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "slack",
		URL:         "https://slack.com/",
		Email:       "help@planwise.dev",
		DirName:     "slackmessaging",
		Key:         map[string]string{"client_id": "", "client_secret": "", "signing_secret": ""},
	},
	{
		Name:        "Jitsi Video",
		Description: "Jitsi is a free, open-source video conferencing platform. Meetings run in the browser with no account required.",
		Type:        "jitsi_video",
		Title:       "Jitsi Video",
		Variant:     "conferencing",
		Category:    "video",
		Categories:  []string{"video"},
		Logo:        "icon.svg",
		ImageSrc:    "icon.svg",
		Publisher:   "Planwise",
		Slug:        "jitsi",
		URL:         "https://jitsi.org/",
		Email:       "help@planwise.dev",
		DirName:     "jitsivideo",
	},
}

package catalog

// App category taxonomy. Fixed at build time; used to precompute the set of
// valid category listing pages.
const (
	CategoryCalendar   = "calendar"
	CategoryMessaging  = "messaging"
	CategoryOther      = "other"
	CategoryPayment    = "payment"
	CategoryVideo      = "video"
	CategoryWeb3       = "web3"
	CategoryAutomation = "automation"
	CategoryAnalytics  = "analytics"
)

var categories = []string{
	CategoryCalendar,
	CategoryMessaging,
	CategoryOther,
	CategoryPayment,
	CategoryVideo,
	CategoryWeb3,
	CategoryAutomation,
	CategoryAnalytics,
}

// Categories returns the full taxonomy in a fresh slice.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether s is part of the taxonomy. Unknown
// categories fail closed: no listing page exists for them.
func ValidCategory(s string) bool {
	for _, c := range categories {
		if c == s {
			return true
		}
	}
	return false
}

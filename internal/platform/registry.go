package platform

// Spec is the static description of a platform.
type Spec struct {
	// ID is the platform identifier.
	ID ID
	// DisplayName is the human-readable platform name.
	DisplayName string
	// Kind tells how the platform is checked.
	Kind Kind
	// BaseURL is the well-known scheme and host of the platform.
	BaseURL string
	// ProfilePath is a format string with one %s verb for the handle.
	ProfilePath string
	// Rules describes the accepted handle syntax for display.
	Rules string
}

var specs = map[ID]Spec{
	GitHub: {
		ID:          GitHub,
		DisplayName: "GitHub",
		Kind:        KindProbe,
		BaseURL:     "https://github.com",
		ProfilePath: "/%s",
		Rules:       "1-39 letters, digits or single inner hyphens",
	},
	YouTube: {
		ID:          YouTube,
		DisplayName: "YouTube",
		Kind:        KindProbe,
		BaseURL:     "https://www.youtube.com",
		ProfilePath: "/@%s",
		Rules:       "3-30 of [a-zA-Z0-9._], no consecutive periods",
	},
	Telegram: {
		ID:          Telegram,
		DisplayName: "Telegram",
		Kind:        KindProbe,
		BaseURL:     "https://t.me",
		ProfilePath: "/%s",
		Rules:       "4-32 of [a-zA-Z0-9_], starting with a letter",
	},
	Snapchat: {
		ID:          Snapchat,
		DisplayName: "Snapchat",
		Kind:        KindProbe,
		BaseURL:     "https://www.snapchat.com",
		ProfilePath: "/add/%s",
		Rules:       "3-15 of [a-zA-Z0-9._-], alphanumeric at both ends, no __ -- ._ _.",
	},
	Twitter: {
		ID:          Twitter,
		DisplayName: "Twitter",
		Kind:        KindDelegated,
		BaseURL:     "https://twitter.com",
		ProfilePath: "/%s",
		Rules:       "checked by the lookup service",
	},
	Instagram: {
		ID:          Instagram,
		DisplayName: "Instagram",
		Kind:        KindDelegated,
		BaseURL:     "https://www.instagram.com",
		ProfilePath: "/%s/",
		Rules:       "checked by the lookup service",
	},
	Reddit: {
		ID:          Reddit,
		DisplayName: "Reddit",
		Kind:        KindDelegated,
		BaseURL:     "https://www.reddit.com",
		ProfilePath: "/user/%s",
		Rules:       "checked by the lookup service",
	},
}

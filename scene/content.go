package scene

// page is one scrollable content block below the hero
type page struct {
	id    string
	title string
	lines []string
}

// pages is the portfolio body revealed as it scrolls into view
var pages = []page{
	{
		id:    "about",
		title: "About",
		lines: []string{
			"Frontend developer drawn to motion and light.",
			"I build interfaces that respond to every pointer move.",
		},
	},
	{
		id:    "skills",
		title: "Skills",
		lines: []string{
			"Canvas & WebGL effects",
			"Interaction design",
			"Accessible, responsive layouts",
		},
	},
	{
		id:    "projects",
		title: "Projects",
		lines: []string{
			"Particle field with pointer attraction",
			"Cursor trail with tapering glow",
			"Typewriter hero and scroll reveals",
		},
	},
	{
		id:    "contact",
		title: "Contact",
		lines: []string{
			"POST /send-email on the contact server",
			"Click anywhere for sparkles.",
		},
	},
}

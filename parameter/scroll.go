package parameter

import "time"

// Scroll Reveal
const (
	// RevealThreshold is the intersection ratio that triggers a reveal
	RevealThreshold = 0.1

	// RevealOffset is the initial downward offset of hidden elements
	RevealOffset = 30.0

	// RevealDuration is the fade/slide transition length
	RevealDuration = 600 * time.Millisecond

	// RevealStagger is the delay between consecutive children
	RevealStagger = 100 * time.Millisecond
)

// Parallax
const (
	// ParallaxRate is scroll multiplier per layer index (rate * (index+1))
	ParallaxRate = -0.5
)

// Navbar
const (
	// NavbarSolidAfter is scrollY past which the navbar turns opaque
	NavbarSolidAfter = 100.0

	// NavbarHideAfter is scrollY past which scrolling down hides the navbar
	NavbarHideAfter = 200.0
)

// Navigation
const (
	// ActiveSectionLead shifts section tops up when picking the highlighted nav entry
	ActiveSectionLead = 100.0
)

// Smooth Scrolling
const (
	// SmoothScrollDuration is the length of an eased jump to an anchor
	SmoothScrollDuration = 500 * time.Millisecond

	// ScrollTopAfter is scrollY past which the back-to-top control shows
	ScrollTopAfter = 500.0

	// SectionGlowDuration is how long a jumped-to section stays highlighted
	SectionGlowDuration = 1000 * time.Millisecond

	// SectionGlowAlpha is the highlight strength of that section's backdrop
	SectionGlowAlpha = 0.3
)

// Floating Elements
const (
	// FloatParallaxSpeed is pointer parallax travel per element index ((index+1) * speed)
	FloatParallaxSpeed = 50.0
)

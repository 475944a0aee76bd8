package deck

// Page chrome shown around every slide.
const (
	Brand   = "LLMs in Production"
	Tagline = "30-minute mini seminar · Technical · Cultural · Strategic"
	Author  = "Lukas Benneberg - 2026"
)

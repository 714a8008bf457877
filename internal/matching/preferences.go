package matching

// Preferences holds the user's matching preferences. The record is a
// singleton: it is created or overwritten wholesale by the settings workflow,
// and its absence is a valid state that disables scoring everywhere.
type Preferences struct {
	RoleKeywords       []string `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredModes     []string `json:"preferredModes"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             []string `json:"skills"`
	MinMatchScore      int      `json:"minMatchScore"`
}

// DefaultThreshold is the match threshold assumed when preferences carry no
// explicit minimum score.
const DefaultThreshold = 40

// Threshold returns the minimum match score below which jobs are excluded
// when threshold filtering is active. Nil preferences fall back to
// DefaultThreshold.
func (p *Preferences) Threshold() int {
	if p == nil {
		return DefaultThreshold
	}
	return p.MinMatchScore
}

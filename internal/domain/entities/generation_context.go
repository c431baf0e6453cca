package entities

// GenerationContext is the caller-supplied business brief for one run.
// All fields are always present; an empty string is a valid, meaningful value.
type GenerationContext struct {
	Audience  string `json:"audience"`
	Goal      string `json:"goal"`
	TimeLimit int    `json:"time_limit"` // minutes; 0 means unset
	Industry  string `json:"industry"`
	Decision  string `json:"decision"`
}

package storage

// Candidate is one tracked outreach target. The seven stage flags are stored
// as 0/1 integers, matching the persisted schema; 1 means the stage happened.
type Candidate struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ContactDate     string `json:"contact_date"` // "DD MM YY" or empty
	Notes           string `json:"notes"`
	Invited         int    `json:"invited"`
	AppointmentMade int    `json:"appointment_made"`
	PlanExplained   int    `json:"plan_explained"`
	Registered      int    `json:"registered"`
	FollowedUp      int    `json:"followed_up"`
	Declined        int    `json:"declined"`
	JobSeeking      int    `json:"job_seeking"`
}

// FlagColumns lists the stage flag columns in schema order.
var FlagColumns = []string{
	"invited",
	"appointment_made",
	"plan_explained",
	"registered",
	"followed_up",
	"declined",
	"job_seeking",
}

// Flag returns the value of the named stage flag, or 0 for an unknown name.
func (c *Candidate) Flag(name string) int {
	switch name {
	case "invited":
		return c.Invited
	case "appointment_made":
		return c.AppointmentMade
	case "plan_explained":
		return c.PlanExplained
	case "registered":
		return c.Registered
	case "followed_up":
		return c.FollowedUp
	case "declined":
		return c.Declined
	case "job_seeking":
		return c.JobSeeking
	}
	return 0
}

// SetFlag sets the named stage flag. Unknown names are ignored.
func (c *Candidate) SetFlag(name string, v int) {
	switch name {
	case "invited":
		c.Invited = v
	case "appointment_made":
		c.AppointmentMade = v
	case "plan_explained":
		c.PlanExplained = v
	case "registered":
		c.Registered = v
	case "followed_up":
		c.FollowedUp = v
	case "declined":
		c.Declined = v
	case "job_seeking":
		c.JobSeeking = v
	}
}

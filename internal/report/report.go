// Package report computes the dashboard's funnel metrics over a candidate
// snapshot.
package report

import "adaytakip/internal/storage"

// Summary aggregates the pipeline: per-stage totals plus the two conversion
// rates the dashboard tracks, as percentages.
type Summary struct {
	Total                   int     `json:"total"`
	Invited                 int     `json:"invited"`
	Appointments            int     `json:"appointments"`
	PlansExplained          int     `json:"plans_explained"`
	Registered              int     `json:"registered"`
	FollowedUp              int     `json:"followed_up"`
	Declined                int     `json:"declined"`
	JobSeeking              int     `json:"job_seeking"`
	InviteToAppointmentRate float64 `json:"invite_to_appointment_rate"`
	PlanToRegistrationRate  float64 `json:"plan_to_registration_rate"`
}

// Build sums the stage flags of a snapshot. Conversion rates are 0 when the
// denominator stage has no candidates.
func Build(candidates []storage.Candidate) Summary {
	s := Summary{Total: len(candidates)}
	for _, c := range candidates {
		s.Invited += c.Invited
		s.Appointments += c.AppointmentMade
		s.PlansExplained += c.PlanExplained
		s.Registered += c.Registered
		s.FollowedUp += c.FollowedUp
		s.Declined += c.Declined
		s.JobSeeking += c.JobSeeking
	}
	if s.Invited > 0 {
		s.InviteToAppointmentRate = float64(s.Appointments) / float64(s.Invited) * 100
	}
	if s.PlansExplained > 0 {
		s.PlanToRegistrationRate = float64(s.Registered) / float64(s.PlansExplained) * 100
	}
	return s
}

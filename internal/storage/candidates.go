package storage

import "fmt"

const candidateColumns = `id, name, contact_date, notes,
	invited, appointment_made, plan_explained, registered, followed_up, declined, job_seeking`

// clampFlag coerces any truthy integer to 1 so the stored flag is always
// exactly 0 or 1.
func clampFlag(v int) int {
	if v != 0 {
		return 1
	}
	return 0
}

// InsertCandidate inserts one row and returns the assigned id. Stage flags
// are clamped to 0/1 regardless of the input values.
func (s *Store) InsertCandidate(c Candidate) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO candidates (name, contact_date, notes, invited, appointment_made, plan_explained, registered, followed_up, declined, job_seeking)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.ContactDate, c.Notes,
		clampFlag(c.Invited), clampFlag(c.AppointmentMade), clampFlag(c.PlanExplained),
		clampFlag(c.Registered), clampFlag(c.FollowedUp), clampFlag(c.Declined), clampFlag(c.JobSeeking),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting candidate: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// ListCandidates returns a snapshot of every row in insertion (id) order.
// An empty table yields an empty slice, not an error.
func (s *Store) ListCandidates() ([]Candidate, error) {
	rows, err := s.db.Query(`SELECT ` + candidateColumns + ` FROM candidates ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	results := []Candidate{}
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ContactDate, &c.Notes,
			&c.Invited, &c.AppointmentMade, &c.PlanExplained,
			&c.Registered, &c.FollowedUp, &c.Declined, &c.JobSeeking,
		); err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// DeleteAllCandidates removes every row irrevocably and returns the number
// of rows removed.
func (s *Store) DeleteAllCandidates() (int64, error) {
	res, err := s.db.Exec("DELETE FROM candidates")
	if err != nil {
		return 0, fmt.Errorf("deleting candidates: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// CountCandidates returns the number of stored candidates.
func (s *Store) CountCandidates() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM candidates").Scan(&count)
	return count, err
}

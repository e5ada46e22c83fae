package model

import "time"

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

const (
	StatusScheduled  InterviewStatus = "scheduled"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
)

// Interview is a scheduled conversation between an interviewer and a candidate.
type Interview struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	InterviewerID   string          `json:"interviewer_id"`
	CandidateID     string          `json:"candidate_id"`
	ScheduledAt     time.Time       `json:"scheduled_at"`
	DurationMinutes int             `json:"duration_minutes"`
	InterviewType   string          `json:"interview_type"`
	DifficultyLevel string          `json:"difficulty_level"`
	Status          InterviewStatus `json:"status"`
	Rating          *int            `json:"rating"`
	PositionTitle   string          `json:"position_title,omitempty"`
	MeetingURL      string          `json:"meeting_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Interviewer *Profile `json:"interviewer,omitempty"`
	Candidate   *Profile `json:"candidate,omitempty"`
}

// InterviewDetail is an interview with everything the live room needs.
type InterviewDetail struct {
	Interview
	CodingSessions []CodingSession `json:"coding_sessions"`
	Messages       []Message       `json:"interview_messages"`
}

// InterviewSummary is the slim interview projection joined onto messages
// and coding sessions.
type InterviewSummary struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Status        InterviewStatus `json:"status"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	PositionTitle string          `json:"position_title,omitempty"`
	Interviewer   *Profile        `json:"interviewer,omitempty"`
	Candidate     *Profile        `json:"candidate,omitempty"`
}

// InterviewPatch lists the fields an update may change. Nil fields are left untouched.
type InterviewPatch struct {
	Title           *string          `json:"title,omitempty"`
	Description     *string          `json:"description,omitempty"`
	ScheduledAt     *time.Time       `json:"scheduled_at,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty"`
	InterviewType   *string          `json:"interview_type,omitempty"`
	DifficultyLevel *string          `json:"difficulty_level,omitempty"`
	Status          *InterviewStatus `json:"status,omitempty"`
	Rating          *int             `json:"rating,omitempty"`
	PositionTitle   *string          `json:"position_title,omitempty"`
	MeetingURL      *string          `json:"meeting_url,omitempty"`
}

// Empty reports whether the patch carries no field at all.
func (p InterviewPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.ScheduledAt == nil &&
		p.DurationMinutes == nil && p.InterviewType == nil && p.DifficultyLevel == nil &&
		p.Status == nil && p.Rating == nil && p.PositionTitle == nil && p.MeetingURL == nil
}

// InterviewMetrics is the dashboard summary for one user.
type InterviewMetrics struct {
	UpcomingCount  int     `json:"upcomingCount"`
	CompletedCount int     `json:"completedCount"`
	RecentCount    int     `json:"recentCount"`
	AverageRating  float64 `json:"averageRating"`
	SuccessRate    int     `json:"successRate"`
}

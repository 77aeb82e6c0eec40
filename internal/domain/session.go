package domain

// SessionSize is the number of exercise slots in a workout session. The
// checks array always has exactly this many entries; the videos array holds
// at most this many URLs (fewer when a difficulty tier has no videos).
const SessionSize = 3

// WorkoutSession tracks the current set of assigned videos and per-exercise
// completion state for one user. One document per user, keyed by userName.
//
// A session with finished=true is re-initialized on its next open: new
// videos are sampled, checks are reset and openedsessions is incremented.
// Sessions are created finished so the first open assigns videos.
type WorkoutSession struct {
	UserName         string   `bson:"userName" json:"userName"`
	Videos           []string `bson:"videos" json:"videos"`
	Checks           []bool   `bson:"checks" json:"checks"`
	CompleteSessions int      `bson:"completesessions" json:"completesessions"`
	OpenedSessions   int      `bson:"openedsessions" json:"openedsessions"`
	Finished         bool     `bson:"finished" json:"finished"`
}

// CheckedCount returns how many exercises have been marked done.
func (s *WorkoutSession) CheckedCount() int {
	count := 0
	for _, checked := range s.Checks {
		if checked {
			count++
		}
	}
	return count
}

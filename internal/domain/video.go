package domain

// Difficulty is the workout tier of a video.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// DifficultyTiers lists the tiers in ascending order. Session sampling picks
// one video per tier, and difficulty sorting follows this ordering.
var DifficultyTiers = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Video is a catalog entry in the Videos collection, keyed by url.
// The catalog is static apart from likeCount, which is incremented and
// decremented by like/unlike actions across all users.
type Video struct {
	URL        string     `bson:"url" json:"url"`
	Title      string     `bson:"title" json:"title"`
	Difficulty Difficulty `bson:"difficulty" json:"difficulty"`
	BodyPart   string     `bson:"bodyPart" json:"bodyPart"`
	LikeCount  int        `bson:"likeCount" json:"likeCount"`
}

package domain

// Quote is a motivational quote shown on the homepage, sampled at random.
type Quote struct {
	Name string `bson:"name" json:"name"`
	Text string `bson:"quote" json:"quote"`
}

package domain

// LikeList holds the set of video URLs a user has liked. One document per
// user, keyed by userName. The url array is maintained with set semantics
// ($addToSet / $pull), so membership is unique and unordered.
type LikeList struct {
	UserName string   `bson:"userName" json:"userName"`
	URLs     []string `bson:"url" json:"url"`
}

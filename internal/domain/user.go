package domain

import "math"

// Yes/No flags stored as strings in the Users collection.
// The front-end sends and compares the literal "Y"/"N" values.
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// User represents an account in the Users collection, keyed by userName.
// The password is stored verbatim; login compares it for equality and the
// admin user list returns it as stored.
type User struct {
	UserName     string `bson:"userName" json:"userName"`
	Age          int    `bson:"age" json:"age"`
	Gender       string `bson:"gender" json:"gender"`
	Height       int    `bson:"height" json:"height"` // centimeters
	Weight       int    `bson:"weight" json:"weight"` // kilograms
	Password     string `bson:"password" json:"password"`
	IsAdmin      string `bson:"isAdmin" json:"isAdmin"`
	IsRegistered string `bson:"isRegistered" json:"isRegistered"`
}

func (u *User) Admin() bool {
	return u.IsAdmin == FlagYes
}

func (u *User) Registered() bool {
	return u.IsRegistered == FlagYes
}

// BMI returns the body mass index (weight / (height/100)^2) rounded to one
// decimal place. Returns 0 for a non-positive height.
func (u *User) BMI() float64 {
	if u.Height <= 0 {
		return 0
	}
	meters := float64(u.Height) / 100
	bmi := float64(u.Weight) / (meters * meters)
	return math.Round(bmi*10) / 10
}

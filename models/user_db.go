package models

// UserResourceDB is the subset of user details this service reads when
// assembling a receipt. Users are owned by another service; this collection
// is read-only here.
type UserResourceDB struct {
	ID       string `bson:"_id"`
	Email    string `bson:"email"`
	Forename string `bson:"forename,omitempty"`
	Surname  string `bson:"surname,omitempty"`
}

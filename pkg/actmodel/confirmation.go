package actmodel

// Confirmation is returned by a successful signup or unregister. It carries
// just enough for the caller to build a message.
type Confirmation struct {
	ActivityName string `json:"activity"`
	Email        string `json:"email"`
}

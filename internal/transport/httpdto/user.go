package httpdto

// UserRequest is the body for POST /signup, POST /login and
// PATCH /resetPassword. Fields are pointers so a missing key can be told
// apart from an empty string: presence is required, emptiness is allowed.
type UserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Valid reports whether both keys were present in the body.
func (r UserRequest) Valid() bool {
	return r.Username != nil && r.Password != nil
}

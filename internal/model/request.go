package model

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

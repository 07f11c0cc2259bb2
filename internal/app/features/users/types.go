// internal/app/features/users/types.go
package users

import "github.com/dalemusser/weatherhub/internal/app/system/inputval"

var createRules = inputval.Rules{
	"username": {Required: true, Type: inputval.String},
	"email":    {Required: true, Type: inputval.String, Format: "email"},
	"password": {Required: true, Type: inputval.String},
}

// Only email and password can change after creation.
var updateRules = inputval.Rules{
	"email":    {NotBlank: true, Type: inputval.String, Format: "email"},
	"password": {NotBlank: true, Type: inputval.String},
}

var listRules = inputval.Rules{
	"page":  {Type: inputval.Integer},
	"limit": {Type: inputval.Integer},
}

type createRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type listRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

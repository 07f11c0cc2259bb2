// Package jsonreq runs the common front half of every JSON write handler:
// decode the body, strip markup from free-text fields, check the
// constraint table and bind the result into a typed request.
package jsonreq

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/weatherhub/internal/app/system/inputval"
)

// Read decodes r's body into dst after sanitizing plainText fields and
// validating against rules. Errors are *inputval.ValidationError or wrap
// inputval.ErrMalformedJSON.
func Read(r *http.Request, rules inputval.Rules, dst any, plainText ...string) error {
	payload, err := inputval.Decode(r.Body)
	if err != nil {
		return err
	}
	htmlsanitize.StripFields(payload, plainText...)
	if err := inputval.Check(payload, rules); err != nil {
		return err
	}
	return inputval.Bind(payload, dst)
}

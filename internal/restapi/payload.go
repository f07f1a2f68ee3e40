package restapi

import (
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

// productPayload carries the client-supplied fields. Pointers distinguish
// an omitted field from one set to its zero value.
type productPayload struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	Usages      *string
	ImageURL    *string
}

// bindError identifies which field failed to bind so each handler can
// phrase its own message.
type bindError struct {
	Field string // "name", "price" or "body"
}

func (e *bindError) Error() string {
	return "invalid " + e.Field
}

// bindProductPayload reads the request body, accepting JSON, multipart
// form data and url-encoded forms. Fields absent from the body stay nil.
func bindProductPayload(c echo.Context) (*productPayload, *bindError) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) || strings.HasPrefix(ctype, echo.MIMEApplicationForm) {
		return bindFormPayload(c)
	}
	return bindJSONPayload(c)
}

func bindJSONPayload(c echo.Context) (*productPayload, *bindError) {
	var raw map[string]interface{}
	err := json.NewDecoder(c.Request().Body).Decode(&raw)
	if err == io.EOF {
		return &productPayload{}, nil
	}
	if err != nil {
		return nil, &bindError{Field: "body"}
	}

	p := &productPayload{}
	if v, ok := raw["name"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &bindError{Field: "name"}
		}
		p.Name = &s
	}
	if v, ok := raw["price"]; ok && v != nil {
		f, ok := v.(float64)
		if !ok {
			return nil, &bindError{Field: "price"}
		}
		p.Price = &f
	}
	// category, description, usages and image_url pass through unvalidated
	if v, ok := raw["category"]; ok && v != nil {
		s := cast.ToString(v)
		p.Category = &s
	}
	if v, ok := raw["description"]; ok && v != nil {
		s := cast.ToString(v)
		p.Description = &s
	}
	if v, ok := raw["usages"]; ok && v != nil {
		s := cast.ToString(v)
		p.Usages = &s
	}
	if v, ok := raw["image_url"]; ok && v != nil {
		s := cast.ToString(v)
		p.ImageURL = &s
	}
	return p, nil
}

func bindFormPayload(c echo.Context) (*productPayload, *bindError) {
	values, err := formValues(c)
	if err != nil {
		return nil, &bindError{Field: "body"}
	}

	p := &productPayload{}
	if v, ok := formValue(values, "name"); ok {
		p.Name = &v
	}
	if v, ok := formValue(values, "price"); ok {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, &bindError{Field: "price"}
		}
		p.Price = &f
	}
	if v, ok := formValue(values, "category"); ok {
		p.Category = &v
	}
	if v, ok := formValue(values, "description"); ok {
		p.Description = &v
	}
	if v, ok := formValue(values, "usages"); ok {
		p.Usages = &v
	}
	if v, ok := formValue(values, "image_url"); ok {
		p.ImageURL = &v
	}
	return p, nil
}

func formValues(c echo.Context) (url.Values, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return url.Values(form.Value), nil
	}
	if err := c.Request().ParseForm(); err != nil {
		return nil, err
	}
	return c.Request().PostForm, nil
}

func formValue(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

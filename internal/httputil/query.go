package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns a []string with the names of all filter struct
// fields that are set in the query parameters.
//
// Checking the query string instead of the bound values allows filters
// to distinguish an explicit zero value, e.g. "?percentage=0", from a
// parameter that was not sent at all.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if url.Query().Has(param) {
			setFields = append(setFields, field)
		}
	}

	return setFields
}

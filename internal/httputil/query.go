package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters are set and can be used
// directly in a gorm query.
//
// queryFields contains all field names that can be used directly in a gorm
// Where statement as argument to specify the fields filtered on. As gorm
// uses interface{} as type for the Where statement, we cannot use a
// []string type here.
//
// setFields returns a []string with all field names set in the query
// parameters. This can be useful to filter for zero values without defining
// them as pointer fields in gorm.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField allows to specify that a field is processed by
		// explicit logic in the controller instead of being passed to gorm
		// directly
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}

	return queryFields, setFields
}

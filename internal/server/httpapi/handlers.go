package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Form field names are preserved from the original page templates.
var userFormFields = map[string]string{
	"input_first_name": "first_name",
	"input_last_name":  "last_name",
	"input_city":       "city",
	"input_state":      "state",
	"input_country":    "country",
	"input_birthday":   "birthday",
	"input_discipline": "discipline",
	"input_about":      "about",
	"input_award":      "award",
}

// The horse update form posts input_name; input_horse_name is only used by
// the add form.
var horseFormFields = map[string]string{
	"input_name":       "name",
	"input_city":       "city",
	"input_state":      "state",
	"input_country":    "country",
	"input_birthday":   "birthday",
	"input_discipline": "discipline",
	"input_about":      "about",
	"input_award":      "award",
}

// collectFields maps submitted form values onto database columns, skipping
// fields the client left empty.
func collectFields(r *http.Request, mapping map[string]string) map[string]string {
	fields := make(map[string]string)
	for formName, column := range mapping {
		if v := r.PostFormValue(formName); v != "" {
			fields[column] = v
		}
	}
	return fields
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

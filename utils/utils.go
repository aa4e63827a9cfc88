package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// JSONList marshals a string slice for a JSON column, defaulting nil to an
// empty list so created rows never carry NULL where a list is expected.
func JSONList(v []string) datatypes.JSON {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// JSONMap marshals a metadata map for a JSON column, defaulting nil to an
// empty object.
func JSONMap(m map[string]interface{}) datatypes.JSON {
	if m == nil {
		m = map[string]interface{}{}
	}
	b, _ := json.Marshal(m)
	return datatypes.JSON(b)
}

// JSONListOrNil keeps full-replace semantics on update: an absent list
// becomes NULL rather than being preserved.
func JSONListOrNil(v []string) interface{} {
	if v == nil {
		return nil
	}
	return JSONList(v)
}

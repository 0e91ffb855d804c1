package api

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// recognizedKeys is the parameter allow-list shared by every task
// endpoint. Anything else in the request is dropped, not an error.
var recognizedKeys = []string{"id", "project", "name", "description", "status", "username"}

// requestParams collects the recognized parameters from the JSON body
// when one is present, falling back to the query string otherwise.
// Values are stringified; absent keys are absent from the map.
func requestParams(c *gin.Context) map[string]string {
	raw := bodyParams(c)
	if raw == nil {
		raw = queryParams(c)
	}

	params := make(map[string]string)
	for _, key := range recognizedKeys {
		if value, ok := raw[key]; ok {
			params[key] = value
		}
	}
	return params
}

func bodyParams(c *gin.Context) map[string]string {
	if c.Request.Body == nil {
		return nil
	}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()

	var body map[string]interface{}
	if err := decoder.Decode(&body); err != nil {
		return nil
	}

	params := make(map[string]string, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case string:
			params[key] = v
		case json.Number:
			params[key] = v.String()
		case nil:
			// Explicit null means not provided.
		}
	}
	return params
}

func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

// taskID parses the id parameter. The bool reports whether the parameter
// was present at all; a present but unparseable id yields (nil, true).
func taskID(params map[string]string) (*int64, bool) {
	value, ok := params["id"]
	if !ok || value == "" {
		return nil, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, true
	}
	return &id, true
}

// optional returns a pointer to the parameter value when the key was
// provided, nil otherwise.
func optional(params map[string]string, key string) *string {
	if value, ok := params[key]; ok {
		return &value
	}
	return nil
}

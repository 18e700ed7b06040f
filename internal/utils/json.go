package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DecodeJSONRequest разбирает тело запроса в dst; неизвестные поля
// считаются ошибкой клиента.
func DecodeJSONRequest(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

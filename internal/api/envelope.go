package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Veraticus/wardrobe/internal/model"
)

// envelope is the backend's response wrapper.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	// Recommendations is set at the top level by GET /api/recommendations.
	Recommendations json.RawMessage `json:"recommendations"`
}

// decodeEnvelope turns a response into an envelope or an *APIError.
// A body that is not JSON is an empty success on 2xx and an APIError otherwise.
func decodeEnvelope(status int, body []byte) (*envelope, error) {
	ok := status >= http.StatusOK && status < http.StatusMultipleChoices

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if !ok {
			return nil, newAPIError(status, "", "")
		}
		return &envelope{}, nil
	}

	if !ok || (env.Success != nil && !*env.Success) {
		return nil, newAPIError(status, env.Code, env.Message)
	}

	return &env, nil
}

// decodeData unmarshals the envelope's data field into out.
// A missing or null data field leaves out untouched.
func (e *envelope) decodeData(out any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

type userData struct {
	User *model.UserProfile `json:"user"`
}

type itemsData[T any] struct {
	Items []T `json:"items"`
}

type resultsData[T any] struct {
	Results []T `json:"results"`
}

type outfitsData[T any] struct {
	Recommendations []T `json:"recommendations"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

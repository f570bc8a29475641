package raindrop

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// apiEnvelope is the failure-relevant slice of every structured Raindrop.io
// response. The API signals application errors with result:false even at
// HTTP 200, so transport success must not be mistaken for semantic success.
type apiEnvelope struct {
	Result       *bool  `json:"result"`
	ErrorMessage string `json:"errorMessage"`
	Error        string `json:"error"`
}

// classify turns a received response into nil (success) or an *APIError.
// A status outside [200,300) is a failure regardless of body shape; a 2xx
// JSON body carrying result:false is a semantic failure. The error message
// is taken from errorMessage, then error, then synthesized from the status.
func classify(status int, contentType string, body []byte) error {
	var env apiEnvelope
	if isJSONContentType(contentType) {
		// A body that fails to parse is treated as opaque; the status
		// alone decides the outcome then.
		_ = json.Unmarshal(body, &env)
	}

	httpFailure := status < 200 || status >= 300
	semanticFailure := env.Result != nil && !*env.Result
	if !httpFailure && !semanticFailure {
		return nil
	}

	msg := env.ErrorMessage
	if msg == "" {
		msg = env.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}

	return &APIError{
		Message: msg,
		Status:  status,
		Body:    body,
	}
}

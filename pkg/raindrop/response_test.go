package raindrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("result false at HTTP 200 is a failure", func(t *testing.T) {
		err := classify(200, "application/json",
			[]byte(`{"result":false,"errorMessage":"no permission"}`))
		require.Error(t, err)

		apiErr := err.(*APIError)
		assert.Equal(t, "no permission", apiErr.Message)
		assert.Equal(t, 200, apiErr.Status)
	})

	t.Run("result false with extra fields is still a failure", func(t *testing.T) {
		err := classify(200, "application/json",
			[]byte(`{"result":false,"item":{"_id":1},"link":"https://x"}`))
		require.Error(t, err)
	})

	t.Run("message priority is errorMessage then error then status text", func(t *testing.T) {
		err := classify(400, "application/json",
			[]byte(`{"result":false,"errorMessage":"first","error":"second"}`))
		assert.Equal(t, "first", err.Error())

		err = classify(400, "application/json",
			[]byte(`{"result":false,"error":"second"}`))
		assert.Equal(t, "second", err.Error())

		err = classify(400, "application/json", []byte(`{"result":false}`))
		assert.Equal(t, "HTTP 400: Bad Request", err.Error())
	})

	t.Run("non-2xx is a failure regardless of body", func(t *testing.T) {
		err := classify(500, "text/plain", []byte("boom"))
		require.Error(t, err)
		assert.Equal(t, "HTTP 500: Internal Server Error", err.Error())
		assert.Equal(t, 500, err.(*APIError).Status)

		err = classify(404, "application/json", []byte(`{"result":true}`))
		require.Error(t, err)
	})

	t.Run("2xx with result true passes", func(t *testing.T) {
		assert.NoError(t, classify(200, "application/json",
			[]byte(`{"result":true,"item":{}}`)))
	})

	t.Run("2xx without an envelope passes", func(t *testing.T) {
		assert.NoError(t, classify(200, "text/html", []byte("<html></html>")))
		assert.NoError(t, classify(204, "application/json", nil))
	})

	t.Run("unparseable JSON body falls back to status", func(t *testing.T) {
		assert.NoError(t, classify(200, "application/json", []byte("not json")))
		require.Error(t, classify(502, "application/json", []byte("not json")))
	})
}

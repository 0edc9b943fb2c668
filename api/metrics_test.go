package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "POST parse", endpointLabel(http.MethodPost, "parse"))
	assert.Equal(t, "GET history", endpointLabel(http.MethodGet, "history/conv-1"))
	assert.Equal(t, "DELETE history", endpointLabel(http.MethodDelete, "/history/conv-1"))
	assert.Equal(t, "GET conversations", endpointLabel(http.MethodGet, "conversations"))
}

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "template:order-created", TemplateKey("order-created"))
	assert.Equal(t, "preference:12:OrderCreated", PreferenceKey(12, "OrderCreated"))
}

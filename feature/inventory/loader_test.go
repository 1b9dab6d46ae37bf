package inventory_test

import (
	"testing"

	"inventory-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc := inventory.NewService(setupStore(t, "loader_test"), zap.NewNop())
	feature := inventory.NewFeatureFromService(svc)

	assert.Equal(t, "inventory", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

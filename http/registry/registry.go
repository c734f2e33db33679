package registry

import (
	"sort"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/pkg/logger"
)

type SetupFunc func(g *echo.Group)

var versionRegistry = make(map[string][]SetupFunc)

// Register router setup function for specific API version
func Register(version string, setup SetupFunc) {
	versionRegistry[version] = append(versionRegistry[version], setup)
}

// SetupAllRoutes applies all registered routes
func SetupAllRoutes(e *echo.Echo) {
	setupValidator(e)

	log := logger.WithScope("SetupAllRoutes")
	if len(versionRegistry) == 0 {
		log.Warn().Msg("No routes registered in versionRegistry")
		return
	}

	versions := make([]string, 0, len(versionRegistry))
	for version := range versionRegistry {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	for _, version := range versions {
		setups := versionRegistry[version]
		log.Debug().Str("version", version).Int("routes", len(setups)).Msg("Setting up version group")
		g := e.Group("/" + version)
		for _, setup := range setups {
			setup(g)
		}
	}
}

// setupValidator configures request validation using go-playground/validator
func setupValidator(e *echo.Echo) {
	e.Validator = &CustomValidator{validator: validator.New()}
}

type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates struct fields using validator tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errs []ValidationError

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"})
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"jwt_secret", "is required"})
	}
	if cfg.JWTTTL <= 0 {
		errs = append(errs, ValidationError{"JWT_TTL", "must be positive"})
	}

	switch cfg.DBDriver {
	case "postgres":
		required := []struct{ field, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_PORT", cfg.DBPort},
			{"DB_NAME", cfg.DBName},
			{"db_user", cfg.DBUser},
			{"db_password", cfg.DBPassword},
		}
		for _, r := range required {
			if r.value == "" {
				errs = append(errs, ValidationError{r.field, "is required"})
			}
		}
	case "sqlite":
		if env == Production {
			errs = append(errs, ValidationError{"DB_DRIVER", "sqlite is not allowed in production"})
		}
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{"DB_PATH", "is required for sqlite"})
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if env == Production && len(cfg.JWTSecret) < 32 {
		errs = append(errs, ValidationError{"jwt_secret", "must be at least 32 characters in production"})
	}
	if env == Production && len(cfg.CORSAllowedOrigins) == 0 {
		errs = append(errs, ValidationError{"CORS_ALLOWED_ORIGINS", "is required in production"})
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("%s", strings.Join(msgs, "\n"))
	}

	return nil
}

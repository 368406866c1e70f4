package utils

import (
	"strconv"
)

func IsTracingEnabled() bool {
	v := GetEnvTrimmed("OTEL_TRACES_ENABLED")

	if v == "" {
		return false
	}

	b, err := strconv.ParseBool(v)

	if err != nil {
		return false
	}

	return b
}

func OTelServiceName() string {
	return GetEnvTrimmedOrDefault("OTEL_SERVICE_NAME", "psychsphere-backend")
}
